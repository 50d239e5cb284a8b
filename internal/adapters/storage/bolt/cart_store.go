package bolt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bbolt "go.etcd.io/bbolt"
)

var cartBucket = []byte("cart")

// CartStore guarda los slots del carrito en un archivo bbolt local.
type CartStore struct {
	db *bbolt.DB
}

// Open crea el directorio si hace falta y abre (o crea) el archivo.
func Open(path string) (*CartStore, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("bolt: mkdir %s: %w", dir, err)
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt: open %s: %w", path, err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(cartBucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bolt: init bucket: %w", err)
	}

	return &CartStore{db: db}, nil
}

func (s *CartStore) Load(ctx context.Context, key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(cartBucket).Get([]byte(key))
		if v != nil {
			// v solo es válido dentro de la transacción
			out = append([]byte(nil), v...)
		}
		return nil
	})
	return out, err
}

func (s *CartStore) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(cartBucket).Put([]byte(key), data)
	})
}

func (s *CartStore) Close() error {
	return s.db.Close()
}
