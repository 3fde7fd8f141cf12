package repository

import (
	"context"

	"github.com/marketconnect/backend/internal/model"
	"gorm.io/gorm"
)

type FavoriteRepository interface {
	// Toggle removes the pair when present, inserts it otherwise, and
	// reports whether the vendor is now favorited.
	Toggle(ctx context.Context, customerID, vendorID uint64) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Toggle(ctx context.Context, customerID, vendorID uint64) (bool, error) {
	favorited := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("customer_id = ? AND vendor_id = ?", customerID, vendorID).
			Delete(&model.Favorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		favorited = true
		return tx.Create(&model.Favorite{CustomerID: customerID, VendorID: vendorID}).Error
	})
	return favorited, err
}
