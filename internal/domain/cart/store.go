package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// StorageKey es el namespace fijo del slot persistido.
const StorageKey = "vetcare-cart"

// Store es el slot clave/valor local y durable. Load devuelve nil si la clave no existe.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// SlotKey: una instalación por cliente; la instalación por defecto usa el namespace pelado.
func SlotKey(clientID string) string {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return StorageKey
	}
	return StorageKey + ":" + clientID
}

// persisted es el sobre guardado en el slot.
type persisted struct {
	State   Cart `json:"state"`
	Version int  `json:"version"`
}

const persistVersion = 0

func encode(c Cart) ([]byte, error) {
	return json.Marshal(persisted{State: c, Version: persistVersion})
}

func decode(data []byte) (Cart, error) {
	if len(data) == 0 {
		return Cart{}, nil
	}
	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		return Cart{}, fmt.Errorf("cart: decode slot: %w", err)
	}
	return p.State, nil
}
