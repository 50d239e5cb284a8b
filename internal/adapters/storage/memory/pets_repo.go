package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vetcare-portal/internal/domain/pets"
)

type PetRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Pet

	// onDelete replica el ON DELETE CASCADE de Postgres (turnos de la mascota).
	onDelete []func(petID string)
}

func NewPetRepo() *PetRepo {
	return &PetRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *PetRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *PetRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return pets.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *PetRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	if _, exists := r.byID[id]; !exists {
		r.mu.Unlock()
		return pets.ErrNotFound
	}
	delete(r.byID, id)
	hooks := r.onDelete
	r.mu.Unlock()

	// fuera del lock: los hooks toman el lock de su propio repo
	for _, fn := range hooks {
		fn(id)
	}
	return nil
}

func (r *PetRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *PetRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}

	// Más nuevas primero
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}
