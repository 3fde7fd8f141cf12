package model

import "time"

type VendorProfile struct {
	ID                    uint64     `gorm:"column:vendor_id;primaryKey;autoIncrement" json:"vendorId"`
	UserID                uint64     `gorm:"column:user_id;not null;uniqueIndex:uk_vendor_profiles_user" json:"userId"`
	BusinessName          string     `gorm:"column:business_name;size:255;not null" json:"businessName"`
	MarketName            string     `gorm:"column:market_name;size:255;not null" json:"marketName"`
	StallNumber           string     `gorm:"column:stall_number;size:32" json:"stallNumber"`
	Category              string     `gorm:"size:120;not null" json:"category"`
	Description           string     `gorm:"type:text" json:"description"`
	RatingAverage         float64    `gorm:"column:rating_average;type:decimal(3,2);not null;default:0" json:"ratingAverage"`
	TotalReviews          int        `gorm:"column:total_reviews;not null;default:0" json:"totalReviews"`
	LocationLat           *float64   `gorm:"column:location_lat;type:decimal(10,7)" json:"locationLat"`
	LocationLng           *float64   `gorm:"column:location_lng;type:decimal(10,7)" json:"locationLng"`
	IsFeatured            bool       `gorm:"column:is_featured;not null;default:false" json:"isFeatured"`
	IsVerified            bool       `gorm:"column:is_verified;not null;default:false" json:"isVerified"`
	SubscriptionType      string     `gorm:"column:subscription_type;size:32;not null;default:free" json:"subscriptionType"`
	SubscriptionExpiresAt *time.Time `gorm:"column:subscription_expires_at" json:"subscriptionExpiresAt,omitempty"`
	IsActive              bool       `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (VendorProfile) TableName() string {
	return "vendor_profiles"
}
