package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/marketconnect/backend/internal/model"
	"github.com/marketconnect/backend/internal/repository"
	"gorm.io/gorm"
)

type OrderService interface {
	// UpdateStatus moves an order owned by vendorID to the named status.
	// Unknown statuses are always rejected; illegal transitions are rejected
	// only in strict mode.
	UpdateStatus(ctx context.Context, orderID uint64, status string, vendorID uint64) error
	Search(ctx context.Context, vendorID uint64, statusFilter, search string) ([]repository.OrderWithCustomer, error)
	StatusCounts(ctx context.Context, vendorID uint64) (map[model.OrderStatus]int64, error)
	Place(ctx context.Context, customerID, vendorID uint64, total float64, deliveryAddress, notes string) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerID uint64) ([]model.Order, error)
}

type orderService struct {
	orders            repository.OrderRepository
	commissionRate    float64
	strictTransitions bool
}

func NewOrderService(orders repository.OrderRepository, commissionRate float64, strictTransitions bool) OrderService {
	return &orderService{orders: orders, commissionRate: commissionRate, strictTransitions: strictTransitions}
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID uint64, status string, vendorID uint64) error {
	next, err := model.ParseOrderStatus(status)
	if err != nil {
		return ErrInvalidStatus
	}
	order, err := s.orders.FindByIDForVendor(ctx, orderID, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if s.strictTransitions && order.Status != next && !model.CanTransition(order.Status, next) {
		return ErrIllegalTransition
	}
	rows, err := s.orders.UpdateStatus(ctx, orderID, vendorID, next)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *orderService) Search(ctx context.Context, vendorID uint64, statusFilter, search string) ([]repository.OrderWithCustomer, error) {
	f := repository.OrderFilter{Search: strings.TrimSpace(search)}
	if statusFilter != "" && statusFilter != "all" {
		st, err := model.ParseOrderStatus(statusFilter)
		if err != nil {
			return nil, ErrInvalidStatus
		}
		f.Status = st
	}
	return s.orders.Search(ctx, vendorID, f)
}

func (s *orderService) StatusCounts(ctx context.Context, vendorID uint64) (map[model.OrderStatus]int64, error) {
	return s.orders.StatusCounts(ctx, vendorID)
}

func (s *orderService) Place(ctx context.Context, customerID, vendorID uint64, total float64, deliveryAddress, notes string) (*model.Order, error) {
	if total <= 0 {
		return nil, validationf("Order total must be positive")
	}
	order := &model.Order{
		CustomerID:       customerID,
		VendorID:         vendorID,
		TotalAmount:      total,
		CommissionAmount: Commission(total, s.commissionRate),
		Status:           model.OrderStatusPending,
		DeliveryAddress:  strings.TrimSpace(deliveryAddress),
		Notes:            strings.TrimSpace(notes),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListByCustomer(ctx context.Context, customerID uint64) ([]model.Order, error) {
	return s.orders.ListByCustomer(ctx, customerID)
}

// Commission is the platform's cut, rounded to cents.
func Commission(total, rate float64) float64 {
	return math.Round(total*rate*100) / 100
}
