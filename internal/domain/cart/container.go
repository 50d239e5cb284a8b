package cart

import (
	"context"
	"fmt"
	"sync"
)

// Container es el estado del carrito de una instalación.
// Cada mutación se aplica sobre una copia, se persiste y recién ahí se confirma y se avisa a los suscriptores.
type Container struct {
	mu    sync.Mutex
	store Store
	key   string
	state Cart

	subsMu sync.Mutex
	subs   map[int]func(Cart)
	nextID int
}

// NewContainer rehidrata el estado desde el slot.
func NewContainer(ctx context.Context, store Store, key string) (*Container, error) {
	data, err := store.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("cart: load %s: %w", key, err)
	}
	state, err := decode(data)
	if err != nil {
		return nil, err
	}
	return &Container{
		store: store,
		key:   key,
		state: state,
		subs:  map[int]func(Cart){},
	}, nil
}

func (c *Container) Key() string { return c.key }

// Snapshot devuelve una copia del estado actual.
func (c *Container) Snapshot() Cart {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Update aplica fn. Si falla el guardado, el estado queda como estaba.
func (c *Container) Update(ctx context.Context, fn func(*Cart)) (Cart, error) {
	c.mu.Lock()
	next := c.state.Clone()
	fn(&next)

	data, err := encode(next)
	if err == nil {
		err = c.store.Save(ctx, c.key, data)
	}
	if err != nil {
		c.mu.Unlock()
		return Cart{}, fmt.Errorf("cart: save %s: %w", c.key, err)
	}
	c.state = next
	snap := next.Clone()
	c.mu.Unlock()

	c.notify(snap)
	return snap, nil
}

// Subscribe registra fn para cada cambio confirmado. Devuelve la función para desuscribirse.
func (c *Container) Subscribe(fn func(Cart)) func() {
	c.subsMu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.subsMu.Lock()
			delete(c.subs, id)
			c.subsMu.Unlock()
		})
	}
}

func (c *Container) notify(state Cart) {
	c.subsMu.Lock()
	fns := make([]func(Cart), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subsMu.Unlock()

	for _, fn := range fns {
		fn(state.Clone())
	}
}
