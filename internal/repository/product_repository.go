package repository

import (
	"context"

	"github.com/marketconnect/backend/internal/model"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	ListByVendor(ctx context.Context, vendorID uint64) ([]model.Product, error)
	// Update writes the editable columns scoped by owner; the returned count
	// is zero when the product belongs to another vendor.
	Update(ctx context.Context, p *model.Product) (int64, error)
	Delete(ctx context.Context, productID, vendorID uint64) (int64, error)
	LowStock(ctx context.Context, vendorID uint64, threshold, limit int) ([]model.Product, error)
	CountByVendor(ctx context.Context, vendorID uint64, onlyAvailable bool) (int64, error)
	SetImageURL(ctx context.Context, productID, vendorID uint64, url string) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepository) ListByVendor(ctx context.Context, vendorID uint64) ([]model.Product, error) {
	var list []model.Product
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *productRepository) Update(ctx context.Context, p *model.Product) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("product_id = ? AND vendor_id = ?", p.ID, p.VendorID).
		Updates(map[string]interface{}{
			"product_name":   p.ProductName,
			"description":    p.Description,
			"price":          p.Price,
			"unit":           p.Unit,
			"stock_quantity": p.StockQuantity,
			"is_available":   p.IsAvailable,
			"category_id":    p.CategoryID,
		})
	return res.RowsAffected, res.Error
}

func (r *productRepository) Delete(ctx context.Context, productID, vendorID uint64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("product_id = ? AND vendor_id = ?", productID, vendorID).
		Delete(&model.Product{})
	return res.RowsAffected, res.Error
}

func (r *productRepository) LowStock(ctx context.Context, vendorID uint64, threshold, limit int) ([]model.Product, error) {
	var list []model.Product
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND stock_quantity < ? AND is_available = ?", vendorID, threshold, true).
		Order("stock_quantity ASC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *productRepository) CountByVendor(ctx context.Context, vendorID uint64, onlyAvailable bool) (int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{}).Where("vendor_id = ?", vendorID)
	if onlyAvailable {
		q = q.Where("is_available = ?", true)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *productRepository) SetImageURL(ctx context.Context, productID, vendorID uint64, url string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("product_id = ? AND vendor_id = ?", productID, vendorID).
		Update("image_url", url)
	return res.RowsAffected, res.Error
}
