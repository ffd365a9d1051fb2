package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	Search       string
	InStockOnly  bool
	WithCategory bool
}

// BannerListFilter 查询 Banner 列表的过滤条件
type BannerListFilter struct {
	Page     int
	PageSize int
	Search   string
	IsActive *bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// CouponListFilter 优惠券列表筛选
type CouponListFilter struct {
	Code     string
	Search   string
	IsActive *bool
	Page     int
	PageSize int
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	Role     string
}
