package service

import (
	"context"
	"errors"
	"testing"

	"github.com/marketconnect/backend/internal/model"
	"github.com/marketconnect/backend/internal/repository"
	"gorm.io/gorm"
)

type fakeOrderRepo struct {
	orders map[uint64]*model.Order

	updateCalls int
	lastStatus  model.OrderStatus
	created     []*model.Order
}

func newFakeOrderRepo(orders ...*model.Order) *fakeOrderRepo {
	f := &fakeOrderRepo{orders: map[uint64]*model.Order{}}
	for _, o := range orders {
		f.orders[o.ID] = o
	}
	return f
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *model.Order) error {
	o.ID = uint64(len(f.created) + 1)
	f.created = append(f.created, o)
	return nil
}

func (f *fakeOrderRepo) FindByIDForVendor(ctx context.Context, orderID, vendorID uint64) (*model.Order, error) {
	o, ok := f.orders[orderID]
	if !ok || o.VendorID != vendorID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID, vendorID uint64, status model.OrderStatus) (int64, error) {
	f.updateCalls++
	f.lastStatus = status
	o, ok := f.orders[orderID]
	if !ok || o.VendorID != vendorID {
		return 0, nil
	}
	o.Status = status
	return 1, nil
}

func (f *fakeOrderRepo) Search(ctx context.Context, vendorID uint64, filter repository.OrderFilter) ([]repository.OrderWithCustomer, error) {
	return nil, nil
}

func (f *fakeOrderRepo) StatusCounts(ctx context.Context, vendorID uint64) (map[model.OrderStatus]int64, error) {
	return map[model.OrderStatus]int64{}, nil
}

func (f *fakeOrderRepo) RecentByVendor(ctx context.Context, vendorID uint64, limit int) ([]repository.OrderWithCustomer, error) {
	return nil, nil
}

func (f *fakeOrderRepo) TodaySales(ctx context.Context, vendorID uint64) (float64, error) {
	return 0, nil
}

func (f *fakeOrderRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]model.Order, error) {
	return nil, nil
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := newFakeOrderRepo(&model.Order{ID: 1, VendorID: 7, Status: model.OrderStatusPending})
	svc := NewOrderService(repo, 0.05, true)

	err := svc.UpdateStatus(context.Background(), 1, "shipped", 7)
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err=%v want ErrInvalidStatus", err)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("update was called %d times, want 0", repo.updateCalls)
	}
	if repo.orders[1].Status != model.OrderStatusPending {
		t.Fatalf("order status changed to %s", repo.orders[1].Status)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		strict  bool
		from    model.OrderStatus
		to      string
		wantErr error
	}{
		{"strict legal move", true, model.OrderStatusPending, "confirmed", nil},
		{"strict illegal move", true, model.OrderStatusCompleted, "pending", ErrIllegalTransition},
		{"strict same status", true, model.OrderStatusReady, "ready", nil},
		{"permissive reopens completed", false, model.OrderStatusCompleted, "pending", nil},
		{"permissive still validates", false, model.OrderStatusPending, "bogus", ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeOrderRepo(&model.Order{ID: 1, VendorID: 7, Status: tt.from})
			svc := NewOrderService(repo, 0.05, tt.strict)

			err := svc.UpdateStatus(context.Background(), 1, tt.to, 7)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v want=%v", err, tt.wantErr)
			}
			if tt.wantErr == nil && repo.orders[1].Status != model.OrderStatus(tt.to) {
				t.Fatalf("status=%s want=%s", repo.orders[1].Status, tt.to)
			}
			if tt.wantErr != nil && repo.orders[1].Status != tt.from {
				t.Fatalf("status changed to %s on rejected update", repo.orders[1].Status)
			}
		})
	}
}

func TestUpdateStatusScopedToOwner(t *testing.T) {
	repo := newFakeOrderRepo(&model.Order{ID: 1, VendorID: 7, Status: model.OrderStatusPending})
	svc := NewOrderService(repo, 0.05, true)

	err := svc.UpdateStatus(context.Background(), 1, "confirmed", 8)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
	if repo.orders[1].Status != model.OrderStatusPending {
		t.Fatalf("another vendor changed the order to %s", repo.orders[1].Status)
	}
}

func TestPlaceComputesCommission(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, 0.05, true)

	order, err := svc.Place(context.Background(), 3, 7, 500.00, "123 Market St", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.CommissionAmount != 25.00 {
		t.Fatalf("commission=%v want 25.00", order.CommissionAmount)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("status=%s want pending", order.Status)
	}
}

func TestPlaceRejectsNonPositiveTotal(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, 0.05, true)

	if _, err := svc.Place(context.Background(), 3, 7, 0, "", ""); !IsValidation(err) {
		t.Fatalf("err=%v want validation error", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("order was created for a zero total")
	}
}

func TestSearchStatusFilter(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo, 0.05, true)

	if _, err := svc.Search(context.Background(), 7, "bogus", ""); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err=%v want ErrInvalidStatus", err)
	}
	if _, err := svc.Search(context.Background(), 7, "all", ""); err != nil {
		t.Fatalf("status=all should not filter: %v", err)
	}
}

func TestCommission(t *testing.T) {
	tests := []struct {
		total float64
		rate  float64
		want  float64
	}{
		{500.00, 0.05, 25.00},
		{99.99, 0.05, 5.00},
		{10.00, 0.10, 1.00},
		{0.01, 0.05, 0.00},
	}
	for _, tt := range tests {
		if got := Commission(tt.total, tt.rate); got != tt.want {
			t.Fatalf("Commission(%v, %v)=%v want=%v", tt.total, tt.rate, got, tt.want)
		}
	}
}
