package pets

import (
	"fmt"
	"strings"
)

// Form es el estado del diálogo de alta/edición de mascota.
// Breed es la opción elegida en el selector de la especie; si es "other",
// la raza real va en CustomBreed.
type Form struct {
	Name         string   `json:"name"`
	Species      Species  `json:"species"`
	Breed        string   `json:"breed"`
	CustomBreed  string   `json:"custom_breed"`
	Age          *int     `json:"age"`
	Weight       *float64 `json:"weight"`
	MedicalNotes string   `json:"medical_notes"`
	PhotoURL     *string  `json:"photo_url,omitempty"`
}

// FormFor deriva el formulario de edición a partir de la ficha guardada.
// Se calcula una sola vez al abrir el diálogo:
// - raza fuera de la lista de la especie => "other" + custom_breed
// - sin peso cargado => peso aproximado de la raza (si se conoce)
func FormFor(p Pet) Form {
	f := Form{
		Name:         p.Name,
		Species:      p.Species,
		Age:          p.Age,
		Weight:       p.Weight,
		MedicalNotes: p.MedicalNotes,
		PhotoURL:     p.PhotoURL,
	}

	breed := ""
	if p.Breed != nil {
		breed = strings.TrimSpace(*p.Breed)
	}
	if breed == "" {
		return f
	}

	if hasBreedList(p.Species) {
		if _, ok := lookupBreed(p.Species, breed); ok {
			f.Breed = breed
		} else {
			f.Breed = BreedOther
			f.CustomBreed = breed
		}
	} else {
		f.Breed = BreedOther
		f.CustomBreed = breed
	}

	if f.Weight == nil {
		if kg, ok := ApproxWeight(p.Species, breed); ok {
			f.Weight = &kg
		}
	}
	return f
}

// WithSpecies cambia la especie y limpia lo que depende de ella.
func (f Form) WithSpecies(s Species) Form {
	f.Species = s
	f.Breed = ""
	f.CustomBreed = ""
	f.Weight = nil
	return f
}

// WithBreed elige una raza; si no hay peso cargado, propone el aproximado.
func (f Form) WithBreed(breed string) Form {
	f.Breed = breed
	if breed != BreedOther && f.Weight == nil {
		if kg, ok := ApproxWeight(f.Species, breed); ok {
			f.Weight = &kg
		}
	}
	return f
}

// Fields son los datos de la ficha ya resueltos desde el formulario.
type Fields struct {
	Name         string
	Species      Species
	Breed        *string
	Age          *int
	Weight       *float64
	MedicalNotes string
}

// Resolve valida el formulario y lo traduce a campos de la ficha.
func (f Form) Resolve() (Fields, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return Fields{}, fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	species := Species(strings.ToLower(strings.TrimSpace(string(f.Species))))
	if !KnownSpecies(species) {
		return Fields{}, fmt.Errorf("%w: unknown species %q", ErrInvalidInput, f.Species)
	}
	if f.Age != nil && *f.Age < 0 {
		return Fields{}, fmt.Errorf("%w: age must be >= 0", ErrInvalidInput)
	}
	if f.Weight != nil && *f.Weight <= 0 {
		return Fields{}, fmt.Errorf("%w: weight must be > 0", ErrInvalidInput)
	}

	f.Species = species
	choice := strings.TrimSpace(f.Breed)

	var breed string
	switch {
	case choice == "":
		breed = ""
	case choice == BreedOther:
		breed = strings.TrimSpace(f.CustomBreed)
	case !hasBreedList(species):
		breed = choice
	default:
		if _, ok := lookupBreed(species, choice); !ok {
			return Fields{}, fmt.Errorf("%w: breed %q not valid for %s", ErrInvalidInput, choice, species)
		}
		breed = choice
		f = f.WithBreed(choice)
	}

	out := Fields{
		Name:         name,
		Species:      species,
		Age:          f.Age,
		Weight:       f.Weight,
		MedicalNotes: strings.TrimSpace(f.MedicalNotes),
	}
	if breed != "" {
		out.Breed = &breed
	}
	return out, nil
}
