package model

import "time"

type Category struct {
	ID           uint64    `gorm:"column:category_id;primaryKey;autoIncrement" json:"categoryId"`
	CategoryName string    `gorm:"column:category_name;size:120;not null;uniqueIndex:uk_categories_name" json:"categoryName"`
	Icon         string    `gorm:"size:64" json:"icon"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Category) TableName() string {
	return "categories"
}
