package model

import "time"

type UserType string

const (
	UserTypeAdmin    UserType = "admin"
	UserTypeVendor   UserType = "vendor"
	UserTypeCustomer UserType = "customer"
)

type User struct {
	ID            uint64     `gorm:"column:user_id;primaryKey;autoIncrement" json:"userId"`
	Email         string     `gorm:"size:255;not null;uniqueIndex:uk_users_email" json:"email"`
	PasswordHash  string     `gorm:"column:password_hash;size:255;not null" json:"-"`
	UserType      UserType   `gorm:"column:user_type;size:16;not null;index" json:"userType"`
	FullName      string     `gorm:"column:full_name;size:255;not null" json:"fullName"`
	PhoneNumber   string     `gorm:"column:phone_number;size:32" json:"phoneNumber"`
	IsActive      bool       `gorm:"column:is_active;not null;default:true" json:"isActive"`
	EmailVerified bool       `gorm:"column:email_verified;not null;default:false" json:"emailVerified"`
	LastLogin     *time.Time `gorm:"column:last_login" json:"lastLogin,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
