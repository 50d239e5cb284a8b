package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vetcare-portal/internal/domain/pets"
	"vetcare-portal/internal/platform/metrics"
	"vetcare-portal/internal/ports/auth"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("appointment not found")
	ErrPetNotFound   = errors.New("pet not found")
	ErrForbidden     = errors.New("forbidden")
	ErrBadTransition = errors.New("status transition not allowed")
)

// CompactLimit es la cantidad de próximos turnos del widget del dashboard.
const CompactLimit = 3

// PetOwners resuelve el dueño de una mascota sin depender del Service de pets completo.
type PetOwners interface {
	OwnerOf(ctx context.Context, petID string) (string, error)
}

type Service struct {
	repo     Repository
	pets     PetOwners
	schedule Schedule
	now      func() time.Time
}

func NewService(repo Repository, petOwners PetOwners, schedule Schedule) *Service {
	return &Service{
		repo:     repo,
		pets:     petOwners,
		schedule: schedule,
		now:      time.Now,
	}
}

func (s *Service) Schedule() Schedule { return s.schedule }

type BookInput struct {
	PetID       string
	Date        string // YYYY-MM-DD (se acepta cualquier formato que entienda dateparse)
	Time        string // HH:MM, debe ser un slot de la grilla
	ServiceType string
	Notes       string
}

// Book valida todo antes de tocar el store y crea el turno en pending con un único Create.
func (s *Service) Book(ctx context.Context, ownerUserID string, in BookInput) (Appointment, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	petID := strings.TrimSpace(in.PetID)
	if ownerUserID == "" || petID == "" || strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Time) == "" {
		return Appointment{}, fmt.Errorf("%w: pet_id, date and time are required", ErrInvalidInput)
	}

	st, ok := ParseServiceType(in.ServiceType)
	if !ok {
		return Appointment{}, fmt.Errorf("%w: unknown service_type %q", ErrInvalidInput, in.ServiceType)
	}

	day, err := s.schedule.ParseDay(in.Date)
	if err != nil {
		return Appointment{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.now()
	if s.schedule.IsPast(day, now) {
		return Appointment{}, fmt.Errorf("%w: date is in the past", ErrInvalidInput)
	}
	if s.schedule.IsClosed(day) {
		return Appointment{}, fmt.Errorf("%w: clinic closed on %s", ErrInvalidInput, day.Weekday())
	}

	tod, err := ParseTimeOfDay(in.Time)
	if err != nil {
		return Appointment{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !s.schedule.Slots.Contains(tod) {
		return Appointment{}, fmt.Errorf("%w: %s is not a bookable slot", ErrInvalidInput, tod)
	}

	if err := s.checkPetOwner(ctx, petID, ownerUserID); err != nil {
		return Appointment{}, err
	}

	a := Appointment{
		ID:          uuid.NewString(),
		PetID:       petID,
		OwnerUserID: ownerUserID,
		Date:        tod.On(day, s.schedule.loc()).UTC(),
		ServiceType: st,
		Status:      StatusPending,
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}

	metrics.IncAppointmentBooked(string(st))
	return a, nil
}

// NoticeUntil es hasta cuándo mostrar el aviso de éxito de una reserva.
func (s *Service) NoticeUntil() time.Time {
	return s.now().Add(s.schedule.Notice)
}

// AvailableSlots devuelve la grilla de un día (vacía si es pasado o cerrado).
func (s *Service) AvailableSlots(date string) ([]TimeOfDay, error) {
	day, err := s.schedule.ParseDay(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.schedule.Available(day, s.now()), nil
}

func (s *Service) checkPetOwner(ctx context.Context, petID, ownerUserID string) error {
	owner, err := s.pets.OwnerOf(ctx, petID)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return ErrPetNotFound
		}
		return err
	}
	if owner != ownerUserID {
		return ErrForbidden
	}
	return nil
}

// Overview es la vista de la lista del dueño: próximos + historial, ambos ascendentes.
type Overview struct {
	Upcoming []WithPet
	Past     []WithPet
}

// ListByOwner recarga la lista completa y la particiona con el reloj actual.
func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) (Overview, error) {
	items, err := s.repo.ListByOwner(ctx, strings.TrimSpace(ownerUserID))
	if err != nil {
		return Overview{}, err
	}
	up, past := Partition(items, s.now())
	return Overview{Upcoming: up, Past: past}, nil
}

// ListAll es la agenda completa de la clínica (operador).
func (s *Service) ListAll(ctx context.Context, actor auth.Claims) ([]WithPet, error) {
	if !actor.IsOperator() {
		return nil, ErrForbidden
	}
	return s.repo.ListAll(ctx)
}

// Get: el dueño ve sus turnos; el operador ve todos.
func (s *Service) Get(ctx context.Context, actor auth.Claims, id string) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Appointment{}, ErrNotFound
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	if a.OwnerUserID != actor.UserID && !actor.IsOperator() {
		return Appointment{}, ErrForbidden
	}
	return a, nil
}

type StatusUpdate struct {
	Status            Status
	VeterinarianNotes *string
}

// UpdateStatus es la acción del operador sobre la agenda.
func (s *Service) UpdateStatus(ctx context.Context, actor auth.Claims, id string, in StatusUpdate) (Appointment, error) {
	if !actor.IsOperator() {
		return Appointment{}, ErrForbidden
	}
	if _, ok := ParseStatus(string(in.Status)); !ok {
		return Appointment{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
	}

	a, err := s.Get(ctx, actor, id)
	if err != nil {
		return Appointment{}, err
	}
	return s.transition(ctx, a, in.Status, in.VeterinarianNotes)
}

// Cancel es la acción del dueño: solo mientras está pending. No borra el turno.
func (s *Service) Cancel(ctx context.Context, ownerUserID, id string) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Appointment{}, ErrNotFound
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	if a.OwnerUserID != ownerUserID {
		return Appointment{}, ErrForbidden
	}
	return s.transition(ctx, a, StatusCancelled, nil)
}

func (s *Service) transition(ctx context.Context, a Appointment, to Status, vetNotes *string) (Appointment, error) {
	if !CanTransition(a.Status, to) {
		return Appointment{}, fmt.Errorf("%w: %s -> %s", ErrBadTransition, a.Status, to)
	}

	a.Status = to
	if vetNotes != nil {
		n := strings.TrimSpace(*vetNotes)
		a.VeterinarianNotes = &n
	}
	a.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		return Appointment{}, err
	}

	metrics.IncAppointmentStatus(string(to))
	return a, nil
}
