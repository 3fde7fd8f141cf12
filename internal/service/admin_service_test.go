package service

import (
	"context"
	"errors"
	"testing"
)

func TestApproveVendor(t *testing.T) {
	t.Run("unknown vendor", func(t *testing.T) {
		repo := newFakeVendorRepo()
		repo.approveRows = 0
		svc := NewAdminService(nil, repo, 0.05)
		if err := svc.ApproveVendor(context.Background(), 99); !errors.Is(err, ErrNotFound) {
			t.Fatalf("err=%v want ErrNotFound", err)
		}
	})

	t.Run("approved", func(t *testing.T) {
		repo := newFakeVendorRepo()
		repo.approveRows = 1
		svc := NewAdminService(nil, repo, 0.05)
		if err := svc.ApproveVendor(context.Background(), 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
