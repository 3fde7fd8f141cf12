package model

import "time"

type Subscription struct {
	ID        uint64     `gorm:"column:subscription_id;primaryKey;autoIncrement" json:"subscriptionId"`
	VendorID  uint64     `gorm:"column:vendor_id;not null;index" json:"vendorId"`
	Plan      string     `gorm:"size:32;not null" json:"plan"`
	Status    string     `gorm:"size:16;not null;default:active;index" json:"status"`
	StartedAt time.Time  `gorm:"column:started_at" json:"startedAt"`
	ExpiresAt *time.Time `gorm:"column:expires_at" json:"expiresAt,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
