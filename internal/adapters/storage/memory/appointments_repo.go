package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vetcare-portal/internal/domain/appointments"
	"vetcare-portal/internal/domain/pets"
)

// AppointmentRepo expande la mascota leyendo del repo de pets (equivalente al JOIN)
// y borra los turnos de una mascota cuando esta se elimina (equivalente al CASCADE).
type AppointmentRepo struct {
	mu   sync.RWMutex
	byID map[string]appointments.Appointment
	pets pets.Repository
}

func NewAppointmentRepo(petRepo *PetRepo) *AppointmentRepo {
	r := &AppointmentRepo{
		byID: make(map[string]appointments.Appointment),
		pets: petRepo,
	}

	petRepo.mu.Lock()
	petRepo.onDelete = append(petRepo.onDelete, r.deleteByPet)
	petRepo.mu.Unlock()

	return r
}

func (r *AppointmentRepo) deleteByPet(petID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, a := range r.byID {
		if a.PetID == petID {
			delete(r.byID, id)
		}
	}
}

func (r *AppointmentRepo) Create(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("appointment id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("appointment already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *AppointmentRepo) Update(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return appointments.ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, nil
}

func (r *AppointmentRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]appointments.WithPet, error) {
	return r.list(ctx, func(a appointments.Appointment) bool { return a.OwnerUserID == ownerUserID })
}

func (r *AppointmentRepo) ListAll(ctx context.Context) ([]appointments.WithPet, error) {
	return r.list(ctx, func(appointments.Appointment) bool { return true })
}

func (r *AppointmentRepo) list(ctx context.Context, keep func(appointments.Appointment) bool) ([]appointments.WithPet, error) {
	r.mu.RLock()
	items := make([]appointments.Appointment, 0)
	for _, a := range r.byID {
		if keep(a) {
			items = append(items, a)
		}
	}
	r.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})

	out := make([]appointments.WithPet, 0, len(items))
	for _, a := range items {
		wp := appointments.WithPet{Appointment: a}
		if r.pets != nil {
			p, err := r.pets.GetByID(ctx, a.PetID)
			switch {
			case err == nil:
				wp.Pet = &appointments.PetSummary{
					ID:       p.ID,
					Name:     p.Name,
					Species:  string(p.Species),
					Breed:    p.Breed,
					PhotoURL: p.PhotoURL,
				}
			case errors.Is(err, pets.ErrNotFound):
				// mascota borrada: el turno queda sin expandir
			default:
				return nil, err
			}
		}
		out = append(out, wp)
	}
	return out, nil
}
