package repository

import "gorm.io/gorm"

// applyPagination 应用分页参数，统一处理非法页码与偏移量。
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}

// likePattern 构造包含匹配的 LIKE 参数
func likePattern(keyword string) string {
	return "%" + keyword + "%"
}
