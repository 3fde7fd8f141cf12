package model

import "time"

type Conversation struct {
	ID         uint64    `gorm:"column:conversation_id;primaryKey;autoIncrement" json:"conversationId"`
	VendorID   uint64    `gorm:"column:vendor_id;not null;uniqueIndex:uk_conv_vendor_customer" json:"vendorId"`
	CustomerID uint64    `gorm:"column:customer_id;not null;uniqueIndex:uk_conv_vendor_customer" json:"customerId"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Conversation) TableName() string {
	return "conversations"
}
