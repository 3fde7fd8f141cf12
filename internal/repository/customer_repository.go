package repository

import (
	"context"

	"github.com/marketconnect/backend/internal/model"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	FindByUserID(ctx context.Context, userID uint64) (*model.CustomerProfile, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) FindByUserID(ctx context.Context, userID uint64) (*model.CustomerProfile, error) {
	var cp model.CustomerProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cp).Error; err != nil {
		return nil, err
	}
	return &cp, nil
}
