package model

import "time"

type ActivityLog struct {
	ID        uint64    `gorm:"column:log_id;primaryKey;autoIncrement" json:"logId"`
	UserID    uint64    `gorm:"column:user_id;not null;index" json:"userId"`
	Action    string    `gorm:"size:64;not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
