package redis

import (
	"context"
	"errors"
	"fmt"

	"vetcare-portal/internal/config"

	goredis "github.com/redis/go-redis/v9"
)

// NewClient crea el cliente Redis a partir de la config.
func NewClient(cfg config.RedisConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

// Ping verifica la conexión.
func Ping(ctx context.Context, client *goredis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

// CartStore guarda cada slot del carrito como un string sin expiración.
type CartStore struct {
	client goredis.UniversalClient
}

func NewCartStore(client goredis.UniversalClient) *CartStore {
	return &CartStore{client: client}
}

func (s *CartStore) Load(ctx context.Context, key string) ([]byte, error) {
	v, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *CartStore) Save(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, key, data, 0).Err()
}
