package service

import (
	"context"
	"errors"
	"testing"

	"github.com/marketconnect/backend/internal/model"
	"github.com/marketconnect/backend/internal/repository"
	"gorm.io/gorm"
)

type fakeConvRepo struct {
	convs    map[uint64]*model.Conversation
	messages map[uint64][]repository.MessageWithSender
	inbox    []repository.ConversationSummary

	calls   []string
	created []*model.Message
}

func newFakeConvRepo(convs ...*model.Conversation) *fakeConvRepo {
	f := &fakeConvRepo{
		convs:    map[uint64]*model.Conversation{},
		messages: map[uint64][]repository.MessageWithSender{},
	}
	for _, cv := range convs {
		f.convs[cv.ID] = cv
	}
	return f
}

func (f *fakeConvRepo) FindOrCreate(ctx context.Context, vendorID, customerID uint64) (*model.Conversation, error) {
	for _, cv := range f.convs {
		if cv.VendorID == vendorID && cv.CustomerID == customerID {
			return cv, nil
		}
	}
	cv := &model.Conversation{ID: uint64(len(f.convs) + 1), VendorID: vendorID, CustomerID: customerID}
	f.convs[cv.ID] = cv
	return cv, nil
}

func (f *fakeConvRepo) FindByID(ctx context.Context, id uint64) (*model.Conversation, error) {
	cv, ok := f.convs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cv, nil
}

func (f *fakeConvRepo) ListByVendor(ctx context.Context, vendorID, viewerUserID uint64) ([]repository.ConversationSummary, error) {
	return f.inbox, nil
}

func (f *fakeConvRepo) ListMessages(ctx context.Context, convID uint64) ([]repository.MessageWithSender, error) {
	f.calls = append(f.calls, "list")
	return f.messages[convID], nil
}

func (f *fakeConvRepo) MarkRead(ctx context.Context, convID, viewerUserID uint64) error {
	f.calls = append(f.calls, "markread")
	msgs := f.messages[convID]
	for i := range msgs {
		if msgs[i].SenderID != viewerUserID {
			msgs[i].IsRead = true
		}
	}
	return nil
}

func (f *fakeConvRepo) CreateMessage(ctx context.Context, msg *model.Message) error {
	f.created = append(f.created, msg)
	return nil
}

func TestLoadMessagesMarksReadFirst(t *testing.T) {
	repo := newFakeConvRepo(&model.Conversation{ID: 1, VendorID: 7, CustomerID: 3})
	repo.messages[1] = []repository.MessageWithSender{
		{Message: model.Message{ID: 1, ConversationID: 1, SenderID: 100, MessageText: "hello po"}},
		{Message: model.Message{ID: 2, ConversationID: 1, SenderID: 200, MessageText: "hi, what do you need?"}},
	}
	svc := NewConversationService(repo)

	viewer := Participant{UserID: 200, VendorID: 7}
	msgs, err := svc.LoadMessages(context.Background(), 1, viewer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.calls) != 2 || repo.calls[0] != "markread" || repo.calls[1] != "list" {
		t.Fatalf("calls=%v want mark-read before listing", repo.calls)
	}
	if len(msgs) != 2 {
		t.Fatalf("got %d messages, want 2", len(msgs))
	}
	if !msgs[0].IsRead {
		t.Fatalf("customer message still unread in returned thread")
	}
	if msgs[1].IsRead {
		t.Fatalf("viewer's own message was marked read")
	}
	if msgs[0].ID != 1 || msgs[1].ID != 2 {
		t.Fatalf("creation order not preserved: %d, %d", msgs[0].ID, msgs[1].ID)
	}
}

func TestLoadMessagesForbidsOutsiders(t *testing.T) {
	repo := newFakeConvRepo(&model.Conversation{ID: 1, VendorID: 7, CustomerID: 3})
	svc := NewConversationService(repo)

	tests := []struct {
		name   string
		viewer Participant
	}{
		{"other vendor", Participant{UserID: 201, VendorID: 8}},
		{"other customer", Participant{UserID: 101, CustomerID: 4}},
		{"no profile", Participant{UserID: 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.LoadMessages(context.Background(), 1, tt.viewer); !errors.Is(err, ErrForbidden) {
				t.Fatalf("err=%v want ErrForbidden", err)
			}
		})
	}
}

func TestLoadMessagesNotFound(t *testing.T) {
	svc := NewConversationService(newFakeConvRepo())
	if _, err := svc.LoadMessages(context.Background(), 9, Participant{UserID: 1, VendorID: 1}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
}

func TestSendMessage(t *testing.T) {
	repo := newFakeConvRepo(&model.Conversation{ID: 1, VendorID: 7, CustomerID: 3})
	svc := NewConversationService(repo)
	viewer := Participant{UserID: 200, VendorID: 7}

	t.Run("empty text rejected", func(t *testing.T) {
		if err := svc.SendMessage(context.Background(), 1, viewer, "   "); !IsValidation(err) {
			t.Fatalf("err=%v want validation error", err)
		}
		if len(repo.created) != 0 {
			t.Fatalf("blank message was stored")
		}
	})

	t.Run("outsider rejected", func(t *testing.T) {
		outsider := Participant{UserID: 999, CustomerID: 4}
		if err := svc.SendMessage(context.Background(), 1, outsider, "hello"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("err=%v want ErrForbidden", err)
		}
	})

	t.Run("trimmed text stored", func(t *testing.T) {
		if err := svc.SendMessage(context.Background(), 1, viewer, "  fresh stock today  "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.created) != 1 {
			t.Fatalf("got %d stored messages, want 1", len(repo.created))
		}
		msg := repo.created[0]
		if msg.MessageText != "fresh stock today" || msg.SenderID != 200 || msg.ConversationID != 1 {
			t.Fatalf("stored message=%+v", msg)
		}
	})
}

func TestVendorInboxSumsUnread(t *testing.T) {
	repo := newFakeConvRepo()
	repo.inbox = []repository.ConversationSummary{
		{Conversation: model.Conversation{ID: 1}, UnreadCount: 2},
		{Conversation: model.Conversation{ID: 2}, UnreadCount: 0},
		{Conversation: model.Conversation{ID: 3}, UnreadCount: 5},
	}
	svc := NewConversationService(repo)

	convs, total, err := svc.VendorInbox(context.Background(), 7, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(convs) != 3 {
		t.Fatalf("got %d conversations, want 3", len(convs))
	}
	if total != 7 {
		t.Fatalf("total unread=%d want 7", total)
	}
}
