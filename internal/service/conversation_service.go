package service

import (
	"context"
	"errors"
	"strings"

	"github.com/marketconnect/backend/internal/model"
	"github.com/marketconnect/backend/internal/repository"
	"gorm.io/gorm"
)

// Participant identifies the viewer inside a conversation: the login user id
// plus whichever profile ids that user owns (zero when absent).
type Participant struct {
	UserID     uint64
	VendorID   uint64
	CustomerID uint64
}

type ConversationService interface {
	VendorInbox(ctx context.Context, vendorID, viewerUserID uint64) ([]repository.ConversationSummary, int64, error)
	// LoadMessages marks every message the viewer did not send as read, then
	// returns the thread in creation order.
	LoadMessages(ctx context.Context, convID uint64, viewer Participant) ([]repository.MessageWithSender, error)
	SendMessage(ctx context.Context, convID uint64, viewer Participant, text string) error
	StartConversation(ctx context.Context, vendorID, customerID uint64) (*model.Conversation, error)
}

type conversationService struct {
	convRepo repository.ConversationRepository
}

func NewConversationService(convRepo repository.ConversationRepository) ConversationService {
	return &conversationService{convRepo: convRepo}
}

func (s *conversationService) VendorInbox(ctx context.Context, vendorID, viewerUserID uint64) ([]repository.ConversationSummary, int64, error) {
	convs, err := s.convRepo.ListByVendor(ctx, vendorID, viewerUserID)
	if err != nil {
		return nil, 0, err
	}
	var totalUnread int64
	for _, cv := range convs {
		totalUnread += cv.UnreadCount
	}
	return convs, totalUnread, nil
}

func (s *conversationService) LoadMessages(ctx context.Context, convID uint64, viewer Participant) ([]repository.MessageWithSender, error) {
	cv, err := s.findForViewer(ctx, convID, viewer)
	if err != nil {
		return nil, err
	}
	if err := s.convRepo.MarkRead(ctx, cv.ID, viewer.UserID); err != nil {
		return nil, err
	}
	return s.convRepo.ListMessages(ctx, cv.ID)
}

func (s *conversationService) SendMessage(ctx context.Context, convID uint64, viewer Participant, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return validationf("Message text is required")
	}
	cv, err := s.findForViewer(ctx, convID, viewer)
	if err != nil {
		return err
	}
	return s.convRepo.CreateMessage(ctx, &model.Message{
		ConversationID: cv.ID,
		SenderID:       viewer.UserID,
		MessageText:    text,
	})
}

func (s *conversationService) StartConversation(ctx context.Context, vendorID, customerID uint64) (*model.Conversation, error) {
	return s.convRepo.FindOrCreate(ctx, vendorID, customerID)
}

func (s *conversationService) findForViewer(ctx context.Context, convID uint64, viewer Participant) (*model.Conversation, error) {
	cv, err := s.convRepo.FindByID(ctx, convID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	isVendor := viewer.VendorID != 0 && cv.VendorID == viewer.VendorID
	isCustomer := viewer.CustomerID != 0 && cv.CustomerID == viewer.CustomerID
	if !isVendor && !isCustomer {
		return nil, ErrForbidden
	}
	return cv, nil
}
