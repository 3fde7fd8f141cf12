package service

import (
	"context"
	"errors"

	"github.com/marketconnect/backend/internal/repository"
	"gorm.io/gorm"
)

type FavoriteService interface {
	// Toggle flips the viewer's favorite mark on a vendor and reports the
	// new state.
	Toggle(ctx context.Context, customerUserID, vendorID uint64) (bool, error)
}

type favoriteService struct {
	customers repository.CustomerRepository
	favorites repository.FavoriteRepository
}

func NewFavoriteService(customers repository.CustomerRepository, favorites repository.FavoriteRepository) FavoriteService {
	return &favoriteService{customers: customers, favorites: favorites}
}

func (s *favoriteService) Toggle(ctx context.Context, customerUserID, vendorID uint64) (bool, error) {
	cp, err := s.customers.FindByUserID(ctx, customerUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	return s.favorites.Toggle(ctx, cp.ID, vendorID)
}
