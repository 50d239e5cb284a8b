package products

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("product not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List siempre trae el catálogo completo y filtra acá.
func (s *Service) List(ctx context.Context, f Filter) ([]Product, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Apply(all, f), nil
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Product{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}
