package service

import (
	"context"
	"strings"

	"github.com/marketconnect/backend/internal/model"
	"github.com/marketconnect/backend/internal/repository"
)

type ProductInput struct {
	ProductName   string
	Description   string
	Price         float64
	Unit          string
	StockQuantity int
	CategoryID    uint64
	IsAvailable   bool
}

type ProductService interface {
	ListMine(ctx context.Context, vendorID uint64) ([]model.Product, error)
	Add(ctx context.Context, vendorID uint64, in ProductInput) (*model.Product, error)
	Update(ctx context.Context, vendorID, productID uint64, in ProductInput) error
	Delete(ctx context.Context, vendorID, productID uint64) error
	SetImage(ctx context.Context, vendorID, productID uint64, url string) error
}

type productService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) ProductService {
	return &productService{products: products}
}

func validateProduct(in *ProductInput) error {
	in.ProductName = strings.TrimSpace(in.ProductName)
	in.Description = strings.TrimSpace(in.Description)
	in.Unit = strings.TrimSpace(in.Unit)
	if in.ProductName == "" {
		return validationf("Product name is required")
	}
	if in.Price <= 0 {
		return validationf("Price must be greater than zero")
	}
	return nil
}

func (s *productService) ListMine(ctx context.Context, vendorID uint64) ([]model.Product, error) {
	return s.products.ListByVendor(ctx, vendorID)
}

func (s *productService) Add(ctx context.Context, vendorID uint64, in ProductInput) (*model.Product, error) {
	if err := validateProduct(&in); err != nil {
		return nil, err
	}
	p := &model.Product{
		VendorID:      vendorID,
		CategoryID:    in.CategoryID,
		ProductName:   in.ProductName,
		Description:   in.Description,
		Price:         in.Price,
		Unit:          in.Unit,
		StockQuantity: in.StockQuantity,
		IsAvailable:   true,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) Update(ctx context.Context, vendorID, productID uint64, in ProductInput) error {
	if err := validateProduct(&in); err != nil {
		return err
	}
	rows, err := s.products.Update(ctx, &model.Product{
		ID:            productID,
		VendorID:      vendorID,
		CategoryID:    in.CategoryID,
		ProductName:   in.ProductName,
		Description:   in.Description,
		Price:         in.Price,
		Unit:          in.Unit,
		StockQuantity: in.StockQuantity,
		IsAvailable:   in.IsAvailable,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *productService) Delete(ctx context.Context, vendorID, productID uint64) error {
	rows, err := s.products.Delete(ctx, productID, vendorID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *productService) SetImage(ctx context.Context, vendorID, productID uint64, url string) error {
	rows, err := s.products.SetImageURL(ctx, productID, vendorID, url)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
