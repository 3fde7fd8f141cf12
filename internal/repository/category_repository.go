package repository

import (
	"context"

	"github.com/marketconnect/backend/internal/model"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	ListAll(ctx context.Context) ([]model.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) ListAll(ctx context.Context) ([]model.Category, error) {
	var list []model.Category
	if err := r.db.WithContext(ctx).
		Order("category_name ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
