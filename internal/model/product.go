package model

import "time"

type Product struct {
	ID            uint64    `gorm:"column:product_id;primaryKey;autoIncrement" json:"productId"`
	VendorID      uint64    `gorm:"column:vendor_id;not null;index" json:"vendorId"`
	CategoryID    uint64    `gorm:"column:category_id;index" json:"categoryId"`
	ProductName   string    `gorm:"column:product_name;size:255;not null" json:"productName"`
	Description   string    `gorm:"type:text" json:"description"`
	Price         float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Unit          string    `gorm:"size:32" json:"unit"`
	StockQuantity int       `gorm:"column:stock_quantity;not null;default:0" json:"stockQuantity"`
	IsAvailable   bool      `gorm:"column:is_available;not null;default:true" json:"isAvailable"`
	ImageURL      *string   `gorm:"column:image_url;size:512" json:"imageUrl,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}
