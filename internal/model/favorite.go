package model

import "time"

type Favorite struct {
	ID         uint64    `gorm:"column:favorite_id;primaryKey;autoIncrement" json:"favoriteId"`
	CustomerID uint64    `gorm:"column:customer_id;not null;uniqueIndex:uk_fav_customer_vendor" json:"customerId"`
	VendorID   uint64    `gorm:"column:vendor_id;not null;uniqueIndex:uk_fav_customer_vendor" json:"vendorId"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Favorite) TableName() string {
	return "favorites"
}
