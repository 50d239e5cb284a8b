package products

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func sampleCatalog() []Product {
	return []Product{
		{ID: "1", Name: "Orthopedic Dog Bed", Type: TypeAccessories, Price: decimal.RequireFromString("59.90")},
		{ID: "2", Name: "Squeaky Bone", Type: TypeToys, Price: decimal.RequireFromString("7.50")},
		{ID: "3", Name: "Plush BED toy", Type: TypeToys, Price: decimal.RequireFromString("12.00")},
		{ID: "4", Name: "Salmon Kibble", Type: TypeFood, Price: decimal.RequireFromString("24.99")},
		{ID: "5", Name: "Cat bedding", Type: "litter", Price: decimal.RequireFromString("9.00")},
	}
}

func TestApply_SearchIgnoresCaseAndType(t *testing.T) {
	got := Apply(sampleCatalog(), Filter{Search: "bed"})
	want := []string{"1", "3", "5"}
	if len(got) != len(want) {
		t.Fatalf("expected %d products, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestApply_SearchAndType(t *testing.T) {
	got := Apply(sampleCatalog(), Filter{Search: "bed", Type: TypeToys})
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected only product 3, got %v", got)
	}
}

func TestApply_EmptyFilterKeepsAll(t *testing.T) {
	if n := len(Apply(sampleCatalog(), Filter{})); n != 5 {
		t.Fatalf("expected 5 products, got %d", n)
	}
	if n := len(Apply(sampleCatalog(), Filter{Type: "litter"})); n != 1 {
		t.Fatalf("expected ad hoc type to match exactly, got %d", n)
	}
}

func TestNormalizeType(t *testing.T) {
	if NormalizeType("") != TypeOther || NormalizeType("  ") != TypeOther {
		t.Fatalf("expected empty type to normalize to other")
	}
	if NormalizeType(" Toys ") != TypeToys {
		t.Fatalf("expected toys")
	}
}

type testRepo struct {
	items []Product
	calls int
}

func (r *testRepo) List(ctx context.Context) ([]Product, error) {
	r.calls++
	return r.items, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Product, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

func TestService_ListFetchesFullCatalog(t *testing.T) {
	repo := &testRepo{items: sampleCatalog()}
	s := NewService(repo)

	got, err := s.List(context.Background(), Filter{Search: "kibble"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != "4" {
		t.Fatalf("unexpected result %v", got)
	}
	if repo.calls != 1 {
		t.Fatalf("expected one full fetch, got %d", repo.calls)
	}

	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
