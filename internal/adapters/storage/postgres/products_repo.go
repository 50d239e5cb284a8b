package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"vetcare-portal/internal/domain/products"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// productRow es el mapeo gorm de la tabla products.
type productRow struct {
	ID          string          `gorm:"column:id;primaryKey"`
	Name        string          `gorm:"column:name"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2)"`
	Type        *string         `gorm:"column:type"`
	ImageURL    *string         `gorm:"column:image_url"`
	Description *string         `gorm:"column:description"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
}

func (productRow) TableName() string { return "products" }

func (p productRow) toDomain() products.Product {
	t := ""
	if p.Type != nil {
		t = *p.Type
	}
	return products.Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Type:        products.NormalizeType(t),
		ImageURL:    p.ImageURL,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

// ProductsRepo lee el catálogo con gorm (solo lectura).
type ProductsRepo struct {
	db *gorm.DB
}

func NewProductsRepo(db *gorm.DB) *ProductsRepo {
	return &ProductsRepo{db: db}
}

func (r *ProductsRepo) List(ctx context.Context) ([]products.Product, error) {
	var rows []productRow
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]products.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ProductsRepo) GetByID(ctx context.Context, id string) (products.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return products.Product{}, products.ErrNotFound
	}

	var row productRow
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return products.Product{}, products.ErrNotFound
	}
	if err != nil {
		return products.Product{}, err
	}
	return row.toDomain(), nil
}
