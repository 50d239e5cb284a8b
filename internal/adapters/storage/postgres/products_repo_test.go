package postgres

import (
	"testing"

	"vetcare-portal/internal/domain/products"

	"github.com/shopspring/decimal"
)

func TestProductRow_ToDomainNormalizesType(t *testing.T) {
	row := productRow{ID: "p1", Name: "Bone", Price: decimal.RequireFromString("3.50")}
	p := row.toDomain()
	if p.Type != products.TypeOther {
		t.Fatalf("expected nil type to normalize to other, got %q", p.Type)
	}

	toys := "toys"
	row.Type = &toys
	if got := row.toDomain().Type; got != products.TypeToys {
		t.Fatalf("expected toys, got %q", got)
	}
}
