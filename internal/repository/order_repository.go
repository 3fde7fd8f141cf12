package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/marketconnect/backend/internal/model"
	"gorm.io/gorm"
)

type OrderWithCustomer struct {
	model.Order
	CustomerName  string `gorm:"column:customer_name"`
	CustomerPhone string `gorm:"column:customer_phone"`
	CustomerEmail string `gorm:"column:customer_email"`
}

// OrderFilter narrows a vendor's order list. Status empty or "all" means no
// status predicate; Search matches customer name, phone or the order id.
type OrderFilter struct {
	Status model.OrderStatus
	Search string
}

type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	FindByIDForVendor(ctx context.Context, orderID, vendorID uint64) (*model.Order, error)
	// UpdateStatus is scoped by owner; zero rows means the order does not
	// exist or belongs to another vendor. Last writer wins.
	UpdateStatus(ctx context.Context, orderID, vendorID uint64, status model.OrderStatus) (int64, error)
	Search(ctx context.Context, vendorID uint64, f OrderFilter) ([]OrderWithCustomer, error)
	StatusCounts(ctx context.Context, vendorID uint64) (map[model.OrderStatus]int64, error)
	RecentByVendor(ctx context.Context, vendorID uint64, limit int) ([]OrderWithCustomer, error)
	TodaySales(ctx context.Context, vendorID uint64) (float64, error)
	ListByCustomer(ctx context.Context, customerID uint64) ([]model.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepository) FindByIDForVendor(ctx context.Context, orderID, vendorID uint64) (*model.Order, error) {
	var o model.Order
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND vendor_id = ?", orderID, vendorID).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID, vendorID uint64, status model.OrderStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("order_id = ? AND vendor_id = ?", orderID, vendorID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *orderRepository) Search(ctx context.Context, vendorID uint64, f OrderFilter) ([]OrderWithCustomer, error) {
	b := qb.Select(
		"o.*",
		"u.full_name AS customer_name",
		"u.phone_number AS customer_phone",
		"u.email AS customer_email",
	).
		From("orders o").
		Join("customer_profiles cp ON o.customer_id = cp.customer_id").
		Join("users u ON cp.user_id = u.user_id").
		Where(sq.Eq{"o.vendor_id": vendorID})

	if f.Status != "" && f.Status != "all" {
		b = b.Where(sq.Eq{"o.status": f.Status})
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		b = b.Where(sq.Or{
			sq.Like{"u.full_name": like},
			sq.Like{"u.phone_number": like},
			sq.Expr("CAST(o.order_id AS CHAR) LIKE ?", like),
		})
	}
	b = b.OrderBy("o.created_at DESC")

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	var rows []OrderWithCustomer
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *orderRepository) StatusCounts(ctx context.Context, vendorID uint64) (map[model.OrderStatus]int64, error) {
	var rows []struct {
		Status model.OrderStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Select("status, COUNT(*) AS count").
		Where("vendor_id = ?", vendorID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[model.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *orderRepository) RecentByVendor(ctx context.Context, vendorID uint64, limit int) ([]OrderWithCustomer, error) {
	query, args, err := qb.Select(
		"o.*",
		"u.full_name AS customer_name",
		"u.phone_number AS customer_phone",
		"u.email AS customer_email",
	).
		From("orders o").
		Join("customer_profiles cp ON o.customer_id = cp.customer_id").
		Join("users u ON cp.user_id = u.user_id").
		Where(sq.Eq{"o.vendor_id": vendorID}).
		OrderBy("o.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []OrderWithCustomer
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *orderRepository) TodaySales(ctx context.Context, vendorID uint64) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("vendor_id = ? AND DATE(created_at) = CURDATE()", vendorID).
		Scan(&total).Error
	return total, err
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID uint64) ([]model.Order, error) {
	var list []model.Order
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
