package products

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Type del catálogo. Se aceptan valores ad hoc además de los conocidos.
type Type string

const (
	TypeFood        Type = "food"
	TypeToys        Type = "toys"
	TypeAccessories Type = "accessories"
	TypeMedicine    Type = "medicine"
	TypeOther       Type = "other"
)

// NormalizeType: vacío => other.
func NormalizeType(s string) Type {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return TypeOther
	}
	return Type(s)
}

// Product es de solo lectura para el portal.
type Product struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Type        Type
	ImageURL    *string
	Description *string
	CreatedAt   time.Time
}
