package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/marketconnect/backend/internal/model"
	"gorm.io/gorm"
)

type ConversationSummary struct {
	model.Conversation
	CustomerName    string     `gorm:"column:customer_name"`
	CustomerPhone   string     `gorm:"column:customer_phone"`
	LastMessage     *string    `gorm:"column:last_message"`
	LastMessageTime *time.Time `gorm:"column:last_message_time"`
	UnreadCount     int64      `gorm:"column:unread_count"`
}

type MessageWithSender struct {
	model.Message
	SenderName string `gorm:"column:sender_name"`
}

type ConversationRepository interface {
	FindOrCreate(ctx context.Context, vendorID, customerID uint64) (*model.Conversation, error)
	FindByID(ctx context.Context, id uint64) (*model.Conversation, error)
	ListByVendor(ctx context.Context, vendorID, viewerUserID uint64) ([]ConversationSummary, error)
	ListMessages(ctx context.Context, convID uint64) ([]MessageWithSender, error)
	// MarkRead flips is_read on every message in the conversation that the
	// viewer did not send.
	MarkRead(ctx context.Context, convID, viewerUserID uint64) error
	// CreateMessage appends the message and bumps the conversation's
	// updated_at in one transaction.
	CreateMessage(ctx context.Context, msg *model.Message) error
}

type conversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) FindOrCreate(ctx context.Context, vendorID, customerID uint64) (*model.Conversation, error) {
	cv := model.Conversation{VendorID: vendorID, CustomerID: customerID}
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND customer_id = ?", vendorID, customerID).
		FirstOrCreate(&cv).Error; err != nil {
		return nil, err
	}
	return &cv, nil
}

func (r *conversationRepository) FindByID(ctx context.Context, id uint64) (*model.Conversation, error) {
	var cv model.Conversation
	if err := r.db.WithContext(ctx).First(&cv, "conversation_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cv, nil
}

func (r *conversationRepository) ListByVendor(ctx context.Context, vendorID, viewerUserID uint64) ([]ConversationSummary, error) {
	query, args, err := qb.Select(
		"c.*",
		"u.full_name AS customer_name",
		"u.phone_number AS customer_phone",
	).
		Column(sq.Alias(sq.Expr("(SELECT m.message_text FROM messages m WHERE m.conversation_id = c.conversation_id ORDER BY m.created_at DESC LIMIT 1)"), "last_message")).
		Column(sq.Alias(sq.Expr("(SELECT m.created_at FROM messages m WHERE m.conversation_id = c.conversation_id ORDER BY m.created_at DESC LIMIT 1)"), "last_message_time")).
		Column(sq.Alias(sq.Expr("(SELECT COUNT(*) FROM messages m WHERE m.conversation_id = c.conversation_id AND m.sender_id <> ? AND m.is_read = FALSE)", viewerUserID), "unread_count")).
		From("conversations c").
		Join("customer_profiles cp ON c.customer_id = cp.customer_id").
		Join("users u ON cp.user_id = u.user_id").
		Where(sq.Eq{"c.vendor_id": vendorID}).
		OrderBy("c.updated_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []ConversationSummary
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *conversationRepository) ListMessages(ctx context.Context, convID uint64) ([]MessageWithSender, error) {
	query, args, err := qb.Select("m.*", "u.full_name AS sender_name").
		From("messages m").
		Join("users u ON m.sender_id = u.user_id").
		Where(sq.Eq{"m.conversation_id": convID}).
		OrderBy("m.created_at ASC", "m.message_id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []MessageWithSender
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *conversationRepository) MarkRead(ctx context.Context, convID, viewerUserID uint64) error {
	return r.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("conversation_id = ? AND sender_id <> ?", convID, viewerUserID).
		Update("is_read", true).Error
}

func (r *conversationRepository) CreateMessage(ctx context.Context, msg *model.Message) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return tx.Model(&model.Conversation{}).
			Where("conversation_id = ?", msg.ConversationID).
			Update("updated_at", time.Now()).Error
	})
}
