package memory

import (
	"context"
	"sync"
)

// CartStore es el slot del carrito en memoria (tests/dev). No sobrevive reinicios.
type CartStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewCartStore() *CartStore {
	return &CartStore{data: make(map[string][]byte)}
}

func (s *CartStore) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (s *CartStore) Save(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append([]byte(nil), data...)
	return nil
}
