package redis

import (
	"context"
	"os"
	"testing"

	"vetcare-portal/internal/config"
)

// Requiere un Redis real: REDIS_TEST_ADDR=localhost:6379 go test ./...
func TestCartStore_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	ctx := context.Background()
	client := NewClient(config.RedisConfig{Address: addr, DB: 15})
	defer client.Close()
	if err := Ping(ctx, client); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	s := NewCartStore(client)
	key := "vetcare-cart:test-" + t.Name()
	defer client.Del(ctx, key)

	if v, err := s.Load(ctx, key); err != nil || v != nil {
		t.Fatalf("expected empty slot, got %v, %v", v, err)
	}
	if err := s.Save(ctx, key, []byte(`{"state":{"items":[]},"version":0}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	v, err := s.Load(ctx, key)
	if err != nil || len(v) == 0 {
		t.Fatalf("expected stored slot, got %q, %v", v, err)
	}
}
