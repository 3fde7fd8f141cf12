package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/marketconnect/backend/internal/model"
	"gorm.io/gorm"
)

type PendingVendor struct {
	model.VendorProfile
	FullName     string    `gorm:"column:full_name"`
	Email        string    `gorm:"column:email"`
	RegisteredAt time.Time `gorm:"column:registered_at"`
}

type AdminOrder struct {
	model.Order
	CustomerName string `gorm:"column:customer_name"`
	BusinessName string `gorm:"column:business_name"`
}

type TopVendor struct {
	VendorID     uint64  `gorm:"column:vendor_id"`
	BusinessName string  `gorm:"column:business_name"`
	OrderCount   int64   `gorm:"column:order_count"`
	TotalSales   float64 `gorm:"column:total_sales"`
}

type ActivityEntry struct {
	model.ActivityLog
	FullName string `gorm:"column:full_name"`
}

type AdminRepository interface {
	CountUsersByType(ctx context.Context) (map[model.UserType]int64, error)
	CountActiveVendors(ctx context.Context) (int64, error)
	CountActiveProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	// MonthlyCommissionRevenue sums the platform's cut of completed orders
	// created in the current calendar month.
	MonthlyCommissionRevenue(ctx context.Context, rate float64) (float64, error)
	CountActiveSubscriptions(ctx context.Context) (int64, error)
	ListPendingVendors(ctx context.Context, limit int) ([]PendingVendor, error)
	ListRecentOrders(ctx context.Context, limit int) ([]AdminOrder, error)
	TopVendorsByRevenue(ctx context.Context, limit int) ([]TopVendor, error)
	ListRecentActivity(ctx context.Context, limit int) ([]ActivityEntry, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CountUsersByType(ctx context.Context) (map[model.UserType]int64, error) {
	var rows []struct {
		UserType model.UserType
		Count    int64
	}
	if err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("user_type, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("user_type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[model.UserType]int64, len(rows))
	for _, row := range rows {
		counts[row.UserType] = row.Count
	}
	return counts, nil
}

func (r *adminRepository) CountActiveVendors(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.VendorProfile{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *adminRepository) CountActiveProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("is_available = ?", true).
		Count(&count).Error
	return count, err
}

func (r *adminRepository) CountOrders(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&count).Error
	return count, err
}

func (r *adminRepository) MonthlyCommissionRevenue(ctx context.Context, rate float64) (float64, error) {
	query, args, err := qb.Select().
		Column(sq.Expr("COALESCE(SUM(total_amount * ?), 0)", rate)).
		From("orders").
		Where(sq.Eq{"status": model.OrderStatusCompleted}).
		Where("MONTH(created_at) = MONTH(CURDATE()) AND YEAR(created_at) = YEAR(CURDATE())").
		ToSql()
	if err != nil {
		return 0, err
	}
	var revenue float64
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&revenue).Error; err != nil {
		return 0, err
	}
	return revenue, nil
}

func (r *adminRepository) CountActiveSubscriptions(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Subscription{}).
		Where("status = ?", "active").
		Count(&count).Error
	return count, err
}

func (r *adminRepository) ListPendingVendors(ctx context.Context, limit int) ([]PendingVendor, error) {
	query, args, err := qb.Select("vp.*", "u.full_name", "u.email", "u.created_at AS registered_at").
		From("vendor_profiles vp").
		Join("users u ON vp.user_id = u.user_id").
		Where(sq.Eq{"vp.is_verified": false}).
		OrderBy("u.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []PendingVendor
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *adminRepository) ListRecentOrders(ctx context.Context, limit int) ([]AdminOrder, error) {
	query, args, err := qb.Select("o.*", "u.full_name AS customer_name", "vp.business_name").
		From("orders o").
		Join("customer_profiles cp ON o.customer_id = cp.customer_id").
		Join("users u ON cp.user_id = u.user_id").
		Join("vendor_profiles vp ON o.vendor_id = vp.vendor_id").
		OrderBy("o.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []AdminOrder
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *adminRepository) TopVendorsByRevenue(ctx context.Context, limit int) ([]TopVendor, error) {
	query, args, err := qb.Select(
		"vp.vendor_id",
		"vp.business_name",
		"COUNT(o.order_id) AS order_count",
		"COALESCE(SUM(o.total_amount), 0) AS total_sales",
	).
		From("vendor_profiles vp").
		LeftJoin("orders o ON vp.vendor_id = o.vendor_id AND o.status = ?", model.OrderStatusCompleted).
		Where(sq.Eq{"vp.is_active": true}).
		GroupBy("vp.vendor_id", "vp.business_name").
		OrderBy("total_sales DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []TopVendor
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *adminRepository) ListRecentActivity(ctx context.Context, limit int) ([]ActivityEntry, error) {
	query, args, err := qb.Select("al.*", "u.full_name").
		From("activity_logs al").
		Join("users u ON al.user_id = u.user_id").
		OrderBy("al.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []ActivityEntry
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
