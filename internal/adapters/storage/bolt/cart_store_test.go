package bolt

import (
	"context"
	"path/filepath"
	"testing"

	"vetcare-portal/internal/domain/cart"

	"github.com/shopspring/decimal"
)

func TestCartStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "cart.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	c, err := cart.NewContainer(ctx, s, cart.StorageKey)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	_, err = c.Update(ctx, func(ct *cart.Cart) {
		ct.AddItem(cart.Item{ProductID: "bed", Name: "Dog Bed", Price: decimal.RequireFromString("40.00")}, 2)
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	c2, err := cart.NewContainer(ctx, s2, cart.StorageKey)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	snap := c2.Snapshot()
	if snap.Quantity("bed") != 2 {
		t.Fatalf("expected rehydrated quantity 2, got %d", snap.Quantity("bed"))
	}
	if !snap.Total().Equal(decimal.RequireFromString("80")) {
		t.Fatalf("expected total 80, got %s", snap.Total())
	}
}

func TestCartStore_MissingKey(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "cart.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	v, err := s.Load(context.Background(), "vetcare-cart:nobody")
	if err != nil || v != nil {
		t.Fatalf("expected nil, nil; got %v, %v", v, err)
	}
}
