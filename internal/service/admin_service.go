package service

import (
	"context"

	"github.com/marketconnect/backend/internal/model"
	"github.com/marketconnect/backend/internal/repository"
)

type AdminDashboard struct {
	CustomerCount       int64
	VendorCount         int64
	ActiveVendors       int64
	ActiveProducts      int64
	TotalOrders         int64
	MonthlyRevenue      float64
	ActiveSubscriptions int64
	PendingVendors      []repository.PendingVendor
	RecentOrders        []repository.AdminOrder
	TopVendors          []repository.TopVendor
	RecentActivity      []repository.ActivityEntry
}

type AdminService interface {
	Dashboard(ctx context.Context) (*AdminDashboard, error)
	ApproveVendor(ctx context.Context, vendorID uint64) error
}

type adminService struct {
	admin          repository.AdminRepository
	vendors        repository.VendorRepository
	commissionRate float64
}

func NewAdminService(admin repository.AdminRepository, vendors repository.VendorRepository, commissionRate float64) AdminService {
	return &adminService{admin: admin, vendors: vendors, commissionRate: commissionRate}
}

func (s *adminService) Dashboard(ctx context.Context) (*AdminDashboard, error) {
	d := &AdminDashboard{}
	userCounts, err := s.admin.CountUsersByType(ctx)
	if err != nil {
		return nil, err
	}
	d.CustomerCount = userCounts[model.UserTypeCustomer]
	d.VendorCount = userCounts[model.UserTypeVendor]

	if d.ActiveVendors, err = s.admin.CountActiveVendors(ctx); err != nil {
		return nil, err
	}
	if d.ActiveProducts, err = s.admin.CountActiveProducts(ctx); err != nil {
		return nil, err
	}
	if d.TotalOrders, err = s.admin.CountOrders(ctx); err != nil {
		return nil, err
	}
	if d.MonthlyRevenue, err = s.admin.MonthlyCommissionRevenue(ctx, s.commissionRate); err != nil {
		return nil, err
	}
	if d.ActiveSubscriptions, err = s.admin.CountActiveSubscriptions(ctx); err != nil {
		return nil, err
	}
	if d.PendingVendors, err = s.admin.ListPendingVendors(ctx, 10); err != nil {
		return nil, err
	}
	if d.RecentOrders, err = s.admin.ListRecentOrders(ctx, 10); err != nil {
		return nil, err
	}
	if d.TopVendors, err = s.admin.TopVendorsByRevenue(ctx, 10); err != nil {
		return nil, err
	}
	if d.RecentActivity, err = s.admin.ListRecentActivity(ctx, 15); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *adminService) ApproveVendor(ctx context.Context, vendorID uint64) error {
	rows, err := s.vendors.Approve(ctx, vendorID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
