package repository

import (
	"context"
	"errors"
	"time"

	"github.com/marketconnect/backend/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindActiveByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// CreateWithProfile inserts the user row and its role profile in one
	// transaction; both succeed or neither does.
	CreateWithProfile(ctx context.Context, user *model.User, vendor *model.VendorProfile, customer *model.CustomerProfile) error
	TouchLastLogin(ctx context.Context, userID uint64) error
	LogActivity(ctx context.Context, entry *model.ActivityLog) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindActiveByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).
		Where("email = ? AND is_active = ?", email, true).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Select("user_id").
		Where("email = ?", email).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *userRepository) CreateWithProfile(ctx context.Context, user *model.User, vendor *model.VendorProfile, customer *model.CustomerProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if vendor != nil {
			vendor.UserID = user.ID
			if err := tx.Create(vendor).Error; err != nil {
				return err
			}
		}
		if customer != nil {
			customer.UserID = user.ID
			if err := tx.Create(customer).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *userRepository) TouchLastLogin(ctx context.Context, userID uint64) error {
	return r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("user_id = ?", userID).
		Update("last_login", time.Now()).Error
}

func (r *userRepository) LogActivity(ctx context.Context, entry *model.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
