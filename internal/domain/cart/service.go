package cart

import (
	"context"
	"errors"
	"strings"
	"sync"

	"vetcare-portal/internal/domain/products"
	"vetcare-portal/internal/platform/metrics"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrProductNotFound = errors.New("product not found")
)

// Catalog resuelve nombre/precio/imagen del producto; el precio nunca viene del cliente.
type Catalog interface {
	Get(ctx context.Context, id string) (products.Product, error)
}

// Service mantiene un Container por instalación, creado la primera vez que se usa.
type Service struct {
	store   Store
	catalog Catalog

	mu         sync.Mutex
	containers map[string]*Container
}

func NewService(store Store, catalog Catalog) *Service {
	return &Service{
		store:      store,
		catalog:    catalog,
		containers: map[string]*Container{},
	}
}

// Container devuelve (o rehidrata) el contenedor de la instalación.
func (s *Service) Container(ctx context.Context, clientID string) (*Container, error) {
	key := SlotKey(clientID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.containers[key]; ok {
		return c, nil
	}
	c, err := NewContainer(ctx, s.store, key)
	if err != nil {
		return nil, err
	}
	s.containers[key] = c
	return c, nil
}

func (s *Service) Get(ctx context.Context, clientID string) (Cart, error) {
	c, err := s.Container(ctx, clientID)
	if err != nil {
		return Cart{}, err
	}
	return c.Snapshot(), nil
}

func (s *Service) Add(ctx context.Context, clientID, productID string, qty int) (Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return Cart{}, ErrInvalidInput
	}
	p, err := s.catalog.Get(ctx, productID)
	if err != nil {
		if errors.Is(err, products.ErrNotFound) {
			return Cart{}, ErrProductNotFound
		}
		return Cart{}, err
	}

	item := Item{ProductID: p.ID, Name: p.Name, Price: p.Price, ImageURL: p.ImageURL}
	return s.mutate(ctx, clientID, "add", func(c *Cart) { c.AddItem(item, qty) })
}

func (s *Service) UpdateQuantity(ctx context.Context, clientID, productID string, qty int) (Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return Cart{}, ErrInvalidInput
	}
	return s.mutate(ctx, clientID, "update_quantity", func(c *Cart) { c.UpdateQuantity(productID, qty) })
}

func (s *Service) Remove(ctx context.Context, clientID, productID string) (Cart, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return Cart{}, ErrInvalidInput
	}
	return s.mutate(ctx, clientID, "remove", func(c *Cart) { c.RemoveItem(productID) })
}

func (s *Service) Clear(ctx context.Context, clientID string) (Cart, error) {
	return s.mutate(ctx, clientID, "clear", func(c *Cart) { c.Clear() })
}

func (s *Service) mutate(ctx context.Context, clientID, op string, fn func(*Cart)) (Cart, error) {
	c, err := s.Container(ctx, clientID)
	if err != nil {
		return Cart{}, err
	}
	out, err := c.Update(ctx, fn)
	if err != nil {
		return Cart{}, err
	}
	metrics.IncCartMutation(op)
	return out, nil
}
