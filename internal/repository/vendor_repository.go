package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/marketconnect/backend/internal/model"
	"gorm.io/gorm"
)

type VendorSummary struct {
	model.VendorProfile
	FullName     string `gorm:"column:full_name"`
	ProductCount int64  `gorm:"column:product_count"`
}

type VendorDetail struct {
	model.VendorProfile
	FullName    string `gorm:"column:full_name"`
	Email       string `gorm:"column:email"`
	PhoneNumber string `gorm:"column:phone_number"`
}

type VendorRepository interface {
	FindByUserID(ctx context.Context, userID uint64) (*model.VendorProfile, error)
	// ListActiveWithLocation returns active vendors that can be placed on
	// the map: both coordinates set, featured first, then rating.
	ListActiveWithLocation(ctx context.Context) ([]VendorSummary, error)
	FindDetail(ctx context.Context, vendorID uint64) (*VendorDetail, error)
	ListAvailableProducts(ctx context.Context, vendorID uint64, limit int) ([]model.Product, error)
	ListPhotos(ctx context.Context, vendorID uint64, limit int) ([]model.VendorPhoto, error)
	// ListProductImagesAsPhotos derives gallery photos from product images,
	// the fallback when a vendor has no dedicated photos.
	ListProductImagesAsPhotos(ctx context.Context, vendorID uint64, limit int) ([]model.VendorPhoto, error)
	Approve(ctx context.Context, vendorID uint64) (int64, error)
}

type vendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) FindByUserID(ctx context.Context, userID uint64) (*model.VendorProfile, error) {
	var vp model.VendorProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&vp).Error; err != nil {
		return nil, err
	}
	return &vp, nil
}

func (r *vendorRepository) ListActiveWithLocation(ctx context.Context) ([]VendorSummary, error) {
	query, args, err := qb.Select("vp.*", "u.full_name").
		Column(sq.Alias(sq.Expr("(SELECT COUNT(*) FROM products p WHERE p.vendor_id = vp.vendor_id AND p.is_available = TRUE)"), "product_count")).
		From("vendor_profiles vp").
		Join("users u ON vp.user_id = u.user_id").
		Where(sq.Eq{"vp.is_active": true}).
		Where("vp.location_lat IS NOT NULL AND vp.location_lng IS NOT NULL").
		OrderBy("vp.is_featured DESC", "vp.rating_average DESC").
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []VendorSummary
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *vendorRepository) FindDetail(ctx context.Context, vendorID uint64) (*VendorDetail, error) {
	query, args, err := qb.Select("vp.*", "u.full_name", "u.email", "u.phone_number").
		From("vendor_profiles vp").
		Join("users u ON vp.user_id = u.user_id").
		Where(sq.Eq{"vp.vendor_id": vendorID, "u.is_active": true}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []VendorDetail
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *vendorRepository) ListAvailableProducts(ctx context.Context, vendorID uint64, limit int) ([]model.Product, error) {
	var list []model.Product
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND is_available = ?", vendorID, true).
		Order("product_name ASC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *vendorRepository) ListPhotos(ctx context.Context, vendorID uint64, limit int) ([]model.VendorPhoto, error) {
	var list []model.VendorPhoto
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *vendorRepository) ListProductImagesAsPhotos(ctx context.Context, vendorID uint64, limit int) ([]model.VendorPhoto, error) {
	query, args, err := qb.Select(
		"DISTINCT p.product_id AS photo_id",
		"p.vendor_id",
		"p.image_url AS photo_url",
		"p.product_name AS caption",
		"p.created_at",
	).
		From("products p").
		Where(sq.Eq{"p.vendor_id": vendorID}).
		Where("p.image_url IS NOT NULL AND p.image_url <> ''").
		OrderBy("p.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	var rows []model.VendorPhoto
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *vendorRepository) Approve(ctx context.Context, vendorID uint64) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.VendorProfile{}).
		Where("vendor_id = ?", vendorID).
		Update("is_verified", true)
	return res.RowsAffected, res.Error
}
