package model

import "time"

type CustomerProfile struct {
	ID        uint64    `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customerId"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_customer_profiles_user" json:"userId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (CustomerProfile) TableName() string {
	return "customer_profiles"
}
