package model

import "time"

type Message struct {
	ID             uint64    `gorm:"column:message_id;primaryKey;autoIncrement" json:"messageId"`
	ConversationID uint64    `gorm:"column:conversation_id;not null;index" json:"conversationId"`
	SenderID       uint64    `gorm:"column:sender_id;not null;index" json:"senderId"`
	MessageText    string    `gorm:"column:message_text;type:text;not null" json:"messageText"`
	IsRead         bool      `gorm:"column:is_read;not null;default:false" json:"isRead"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Message) TableName() string {
	return "messages"
}
