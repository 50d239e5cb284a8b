package appointments

import "time"

// Appointment es un turno de una mascota. Nace en pending.
type Appointment struct {
	ID          string
	PetID       string
	OwnerUserID string

	Date        time.Time // fecha + hora combinadas
	ServiceType ServiceType
	Status      Status

	Notes             string
	VeterinarianNotes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PetSummary es la mascota expandida junto al turno (una sola lectura).
type PetSummary struct {
	ID       string
	Name     string
	Species  string
	Breed    *string
	PhotoURL *string
}

type WithPet struct {
	Appointment
	Pet *PetSummary
}
