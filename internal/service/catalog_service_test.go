package service

import (
	"context"
	"errors"
	"testing"

	"github.com/marketconnect/backend/internal/model"
	"github.com/marketconnect/backend/internal/repository"
	"gorm.io/gorm"
)

type fakeVendorRepo struct {
	summaries     []repository.VendorSummary
	details       map[uint64]*repository.VendorDetail
	photos        map[uint64][]model.VendorPhoto
	productPhotos map[uint64][]model.VendorPhoto
	products      map[uint64][]model.Product

	productLimit int
	photoLimit   int
	fallbackUsed bool
	approveRows  int64
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{
		details:       map[uint64]*repository.VendorDetail{},
		photos:        map[uint64][]model.VendorPhoto{},
		productPhotos: map[uint64][]model.VendorPhoto{},
		products:      map[uint64][]model.Product{},
	}
}

func (f *fakeVendorRepo) FindByUserID(ctx context.Context, userID uint64) (*model.VendorProfile, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVendorRepo) ListActiveWithLocation(ctx context.Context) ([]repository.VendorSummary, error) {
	return f.summaries, nil
}

func (f *fakeVendorRepo) FindDetail(ctx context.Context, vendorID uint64) (*repository.VendorDetail, error) {
	d, ok := f.details[vendorID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (f *fakeVendorRepo) ListAvailableProducts(ctx context.Context, vendorID uint64, limit int) ([]model.Product, error) {
	f.productLimit = limit
	return f.products[vendorID], nil
}

func (f *fakeVendorRepo) ListPhotos(ctx context.Context, vendorID uint64, limit int) ([]model.VendorPhoto, error) {
	f.photoLimit = limit
	return f.photos[vendorID], nil
}

func (f *fakeVendorRepo) ListProductImagesAsPhotos(ctx context.Context, vendorID uint64, limit int) ([]model.VendorPhoto, error) {
	f.fallbackUsed = true
	return f.productPhotos[vendorID], nil
}

func (f *fakeVendorRepo) Approve(ctx context.Context, vendorID uint64) (int64, error) {
	return f.approveRows, nil
}

type fakeCategoryRepo struct {
	categories []model.Category
}

func (f *fakeCategoryRepo) ListAll(ctx context.Context) ([]model.Category, error) {
	return f.categories, nil
}

func TestVendorDetailsNotFound(t *testing.T) {
	svc := NewCatalogService(newFakeVendorRepo(), &fakeCategoryRepo{})
	if _, err := svc.VendorDetails(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
}

func TestVendorDetailsPrefersGalleryPhotos(t *testing.T) {
	repo := newFakeVendorRepo()
	repo.details[1] = &repository.VendorDetail{}
	repo.photos[1] = []model.VendorPhoto{{ID: 10, PhotoURL: "https://img/stall.jpg"}}
	repo.productPhotos[1] = []model.VendorPhoto{{ID: 20, PhotoURL: "https://img/product.jpg"}}
	svc := NewCatalogService(repo, &fakeCategoryRepo{})

	det, err := svc.VendorDetails(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.fallbackUsed {
		t.Fatalf("product-image fallback used although gallery photos exist")
	}
	if len(det.Photos) != 1 || det.Photos[0].ID != 10 {
		t.Fatalf("photos=%+v want the gallery photo", det.Photos)
	}
}

func TestVendorDetailsFallsBackToProductImages(t *testing.T) {
	repo := newFakeVendorRepo()
	repo.details[1] = &repository.VendorDetail{}
	repo.productPhotos[1] = []model.VendorPhoto{{ID: 20, PhotoURL: "https://img/product.jpg"}}
	svc := NewCatalogService(repo, &fakeCategoryRepo{})

	det, err := svc.VendorDetails(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.fallbackUsed {
		t.Fatalf("fallback not used for a vendor without gallery photos")
	}
	if len(det.Photos) != 1 || det.Photos[0].ID != 20 {
		t.Fatalf("photos=%+v want the product image", det.Photos)
	}
}

func TestVendorDetailsLimits(t *testing.T) {
	repo := newFakeVendorRepo()
	repo.details[1] = &repository.VendorDetail{}
	svc := NewCatalogService(repo, &fakeCategoryRepo{})

	if _, err := svc.VendorDetails(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.productLimit != 50 {
		t.Fatalf("product limit=%d want 50", repo.productLimit)
	}
	if repo.photoLimit != 20 {
		t.Fatalf("photo limit=%d want 20", repo.photoLimit)
	}
}
