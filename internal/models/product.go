package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                          // 主键
	CategoryID    uint           `gorm:"not null;index" json:"categoryId"`                              // 分类ID
	Name          string         `gorm:"type:varchar(200);not null;index" json:"name"`                  // 商品名称
	Description   string         `gorm:"type:text" json:"description"`                                  // 描述
	MRP           Money          `gorm:"column:mrp;type:decimal(20,2);not null;default:0" json:"mrp"`   // 标价
	Discount      Money          `gorm:"type:decimal(5,2);not null;default:0" json:"discount"`          // 折扣百分比
	SellingPrice  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"sellingPrice"`     // 售价（由标价与折扣推导）
	StockQuantity int            `gorm:"not null;default:0" json:"stockQuantity"`                       // 库存
	ImageURL      string         `gorm:"type:varchar(500)" json:"imageUrl"`                             // 商品图片
	IsReturn      bool           `gorm:"not null;default:false" json:"isReturn"`                        // 是否支持退货
	IsExchange    bool           `gorm:"not null;default:false" json:"isExchange"`                      // 是否支持换货
	CreatedAt     time.Time      `gorm:"index" json:"createdAt"`                                        // 创建时间
	UpdatedAt     time.Time      `json:"updatedAt"`                                                     // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                                // 软删除时间（保留订单快照引用）

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// BeforeSave 每次写入前重新计算售价
func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.SellingPrice = ComputeSellingPrice(p.MRP, p.Discount)
	return nil
}

// ComputeSellingPrice 售价 = 标价 - 标价 * 折扣 / 100
func ComputeSellingPrice(mrp, discount Money) Money {
	off := mrp.Decimal.Mul(discount.Decimal).Div(decimal.NewFromInt(100))
	return NewMoneyFromDecimal(mrp.Decimal.Sub(off))
}
