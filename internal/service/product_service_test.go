package service

import (
	"context"
	"errors"
	"testing"

	"github.com/marketconnect/backend/internal/model"
)

type fakeProductRepo struct {
	created    []*model.Product
	updateRows int64
	deleteRows int64

	lastUpdate *model.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, p *model.Product) error {
	p.ID = uint64(len(f.created) + 1)
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProductRepo) ListByVendor(ctx context.Context, vendorID uint64) ([]model.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *model.Product) (int64, error) {
	f.lastUpdate = p
	return f.updateRows, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, productID, vendorID uint64) (int64, error) {
	return f.deleteRows, nil
}

func (f *fakeProductRepo) LowStock(ctx context.Context, vendorID uint64, threshold, limit int) ([]model.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) CountByVendor(ctx context.Context, vendorID uint64, onlyAvailable bool) (int64, error) {
	return 0, nil
}

func (f *fakeProductRepo) SetImageURL(ctx context.Context, productID, vendorID uint64, url string) (int64, error) {
	return 1, nil
}

func TestAddProductValidation(t *testing.T) {
	tests := []struct {
		name string
		in   ProductInput
	}{
		{"missing name", ProductInput{Price: 10}},
		{"blank name", ProductInput{ProductName: "   ", Price: 10}},
		{"zero price", ProductInput{ProductName: "Tomatoes"}},
		{"negative price", ProductInput{ProductName: "Tomatoes", Price: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeProductRepo{}
			svc := NewProductService(repo)
			if _, err := svc.Add(context.Background(), 7, tt.in); !IsValidation(err) {
				t.Fatalf("err=%v want validation error", err)
			}
			if len(repo.created) != 0 {
				t.Fatalf("invalid product was stored")
			}
		})
	}
}

func TestAddProductDefaults(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	p, err := svc.Add(context.Background(), 7, ProductInput{ProductName: " Tomatoes ", Price: 45.50, Unit: "kg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.VendorID != 7 {
		t.Fatalf("vendor id=%d want 7", p.VendorID)
	}
	if !p.IsAvailable {
		t.Fatalf("new product should start available")
	}
	if p.ProductName != "Tomatoes" {
		t.Fatalf("name=%q want trimmed", p.ProductName)
	}
}

func TestUpdateProductScope(t *testing.T) {
	repo := &fakeProductRepo{updateRows: 0}
	svc := NewProductService(repo)

	err := svc.Update(context.Background(), 7, 3, ProductInput{ProductName: "Tomatoes", Price: 45})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound when no rows match", err)
	}
	if repo.lastUpdate.VendorID != 7 || repo.lastUpdate.ID != 3 {
		t.Fatalf("update not scoped: %+v", repo.lastUpdate)
	}
}

func TestDeleteProductScope(t *testing.T) {
	repo := &fakeProductRepo{deleteRows: 0}
	svc := NewProductService(repo)
	if err := svc.Delete(context.Background(), 7, 3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound when no rows match", err)
	}

	repo.deleteRows = 1
	if err := svc.Delete(context.Background(), 7, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
