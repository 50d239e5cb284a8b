package appointments

import "context"

// Repository: los listados vienen ordenados por Date ascendente con la mascota expandida.
type Repository interface {
	Create(ctx context.Context, a Appointment) error
	Update(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]WithPet, error)
	ListAll(ctx context.Context) ([]WithPet, error)
}
