package service

import (
	"context"
	"errors"

	"github.com/marketconnect/backend/internal/model"
	"github.com/marketconnect/backend/internal/repository"
	"gorm.io/gorm"
)

const lowStockThreshold = 10

type VendorDashboard struct {
	TotalProducts  int64
	ActiveProducts int64
	TotalOrders    int64
	PendingOrders  int64
	TodaySales     float64
	RecentOrders   []repository.OrderWithCustomer
	LowStock       []model.Product
}

type VendorService interface {
	ProfileByUser(ctx context.Context, userID uint64) (*model.VendorProfile, error)
	Dashboard(ctx context.Context, vendorID uint64) (*VendorDashboard, error)
}

type vendorService struct {
	vendors  repository.VendorRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
}

func NewVendorService(vendors repository.VendorRepository, products repository.ProductRepository, orders repository.OrderRepository) VendorService {
	return &vendorService{vendors: vendors, products: products, orders: orders}
}

func (s *vendorService) ProfileByUser(ctx context.Context, userID uint64) (*model.VendorProfile, error) {
	vp, err := s.vendors.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return vp, nil
}

func (s *vendorService) Dashboard(ctx context.Context, vendorID uint64) (*VendorDashboard, error) {
	d := &VendorDashboard{}
	var err error
	if d.TotalProducts, err = s.products.CountByVendor(ctx, vendorID, false); err != nil {
		return nil, err
	}
	if d.ActiveProducts, err = s.products.CountByVendor(ctx, vendorID, true); err != nil {
		return nil, err
	}
	counts, err := s.orders.StatusCounts(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	for _, n := range counts {
		d.TotalOrders += n
	}
	d.PendingOrders = counts[model.OrderStatusPending] + counts[model.OrderStatusConfirmed]
	if d.TodaySales, err = s.orders.TodaySales(ctx, vendorID); err != nil {
		return nil, err
	}
	if d.RecentOrders, err = s.orders.RecentByVendor(ctx, vendorID, 10); err != nil {
		return nil, err
	}
	if d.LowStock, err = s.products.LowStock(ctx, vendorID, lowStockThreshold, 5); err != nil {
		return nil, err
	}
	return d, nil
}
