package pets

import "time"

// Species define las especies soportadas por el formulario.
// @Enum dog, cat, bird, rabbit, hamster, other
type Species string

const (
	SpeciesDog     Species = "dog"
	SpeciesCat     Species = "cat"
	SpeciesBird    Species = "bird"
	SpeciesRabbit  Species = "rabbit"
	SpeciesHamster Species = "hamster"
	SpeciesOther   Species = "other"
)

// Pet representa la ficha de una mascota. Pertenece a un único dueño.
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string
	Species Species
	Breed   *string

	Age    *int     // años
	Weight *float64 // kg

	PhotoURL     *string
	MedicalNotes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
