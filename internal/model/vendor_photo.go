package model

import "time"

type VendorPhoto struct {
	ID        uint64    `gorm:"column:photo_id;primaryKey;autoIncrement" json:"photoId"`
	VendorID  uint64    `gorm:"column:vendor_id;not null;index" json:"vendorId"`
	PhotoURL  string    `gorm:"column:photo_url;size:512;not null" json:"photoUrl"`
	Caption   *string   `gorm:"size:255" json:"caption,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (VendorPhoto) TableName() string {
	return "vendor_photos"
}
