package service

import (
	"context"
	"errors"

	"github.com/marketconnect/backend/internal/model"
	"github.com/marketconnect/backend/internal/repository"
	"gorm.io/gorm"
)

const (
	detailProductLimit = 50
	detailPhotoLimit   = 20
)

type VendorDetails struct {
	Vendor   repository.VendorDetail
	Products []model.Product
	Photos   []model.VendorPhoto
}

type CatalogService interface {
	ListVendors(ctx context.Context) ([]repository.VendorSummary, error)
	Categories(ctx context.Context) ([]model.Category, error)
	VendorDetails(ctx context.Context, vendorID uint64) (*VendorDetails, error)
}

type catalogService struct {
	vendors    repository.VendorRepository
	categories repository.CategoryRepository
}

func NewCatalogService(vendors repository.VendorRepository, categories repository.CategoryRepository) CatalogService {
	return &catalogService{vendors: vendors, categories: categories}
}

func (s *catalogService) ListVendors(ctx context.Context) ([]repository.VendorSummary, error) {
	return s.vendors.ListActiveWithLocation(ctx)
}

func (s *catalogService) Categories(ctx context.Context) ([]model.Category, error) {
	return s.categories.ListAll(ctx)
}

func (s *catalogService) VendorDetails(ctx context.Context, vendorID uint64) (*VendorDetails, error) {
	vendor, err := s.vendors.FindDetail(ctx, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	products, err := s.vendors.ListAvailableProducts(ctx, vendorID, detailProductLimit)
	if err != nil {
		return nil, err
	}
	// Two-step photo resolution: dedicated gallery photos win, product
	// images fill in when the gallery is empty.
	photos, err := s.vendors.ListPhotos(ctx, vendorID, detailPhotoLimit)
	if err != nil {
		return nil, err
	}
	if len(photos) == 0 {
		photos, err = s.vendors.ListProductImagesAsPhotos(ctx, vendorID, detailPhotoLimit)
		if err != nil {
			return nil, err
		}
	}
	return &VendorDetails{Vendor: *vendor, Products: products, Photos: photos}, nil
}
