package memory

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"vetcare-portal/internal/domain/products"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type ProductRepo struct {
	mu    sync.RWMutex
	items []products.Product
}

func NewProductRepo(items []products.Product) *ProductRepo {
	cp := make([]products.Product, len(items))
	copy(cp, items)
	return &ProductRepo{items: cp}
}

func (r *ProductRepo) List(ctx context.Context) ([]products.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]products.Product, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (products.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return products.Product{}, products.ErrNotFound
}

type catalogFile struct {
	Products []catalogEntry `yaml:"products"`
}

type catalogEntry struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Price       string `yaml:"price"`
	Type        string `yaml:"type"`
	ImageURL    string `yaml:"image_url"`
	Description string `yaml:"description"`
	CreatedAt   string `yaml:"created_at"`
}

// LoadCatalog lee el catálogo semilla (YAML). Sin archivo => catálogo vacío.
func LoadCatalog(path string) ([]products.Product, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) ([]products.Product, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}

	out := make([]products.Product, 0, len(f.Products))
	for i, e := range f.Products {
		if strings.TrimSpace(e.ID) == "" || strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("catalog: entry %d: id and name required", i)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(e.Price))
		if err != nil {
			return nil, fmt.Errorf("catalog: entry %s: invalid price %q", e.ID, e.Price)
		}

		p := products.Product{
			ID:    e.ID,
			Name:  e.Name,
			Price: price,
			Type:  products.NormalizeType(e.Type),
		}
		if v := strings.TrimSpace(e.ImageURL); v != "" {
			p.ImageURL = &v
		}
		if v := strings.TrimSpace(e.Description); v != "" {
			p.Description = &v
		}
		if v := strings.TrimSpace(e.CreatedAt); v != "" {
			t, err := dateparse.ParseIn(v, time.UTC)
			if err != nil {
				return nil, fmt.Errorf("catalog: entry %s: invalid created_at %q", e.ID, v)
			}
			p.CreatedAt = t
		}
		out = append(out, p)
	}
	return out, nil
}
