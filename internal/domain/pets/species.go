package pets

// BreedOther es la opción del selector que habilita raza libre (custom_breed).
const BreedOther = "other"

type breedInfo struct {
	Name     string
	ApproxKg float64 // 0 = sin peso aproximado
}

type speciesInfo struct {
	Label  string
	Breeds []breedInfo // vacío => raza libre
}

var speciesOrder = []Species{SpeciesDog, SpeciesCat, SpeciesBird, SpeciesRabbit, SpeciesHamster, SpeciesOther}

var catalog = map[Species]speciesInfo{
	SpeciesDog: {
		Label: "Perro",
		Breeds: []breedInfo{
			{"Labrador Retriever", 30},
			{"German Shepherd", 35},
			{"Golden Retriever", 30},
			{"French Bulldog", 12},
			{"Bulldog", 23},
			{"Poodle", 22},
			{"Beagle", 10},
			{"Rottweiler", 45},
			{"Yorkshire Terrier", 3},
			{"Boxer", 30},
		},
	},
	SpeciesCat: {
		Label: "Gato",
		Breeds: []breedInfo{
			{"Persian", 4},
			{"Siamese", 4},
			{"Maine Coon", 6},
			{"Bengal", 5},
			{"Ragdoll", 5},
		},
	},
	SpeciesBird: {
		Label: "Ave",
		Breeds: []breedInfo{
			{"Budgerigar", 0.05},
			{"Cockatoo", 0.8},
			{"African Grey", 0.5},
			{"Canary", 0.02},
			{"Nanday", 0},
		},
	},
	SpeciesRabbit: {
		Label: "Conejo",
		Breeds: []breedInfo{
			{"Lop", 2},
			{"Mini Rex", 2},
			{"Netherland Dwarf", 1},
		},
	},
	SpeciesHamster: {
		Label: "Hámster",
		Breeds: []breedInfo{
			{"Siberian", 0.05},
			{"Roborovski", 0.03},
			{"Syrian", 0.04},
		},
	},
	SpeciesOther: {Label: "Otro"},
}

// KnownSpecies indica si la especie está en el catálogo.
func KnownSpecies(s Species) bool {
	_, ok := catalog[s]
	return ok
}

// Breeds devuelve las opciones del selector para la especie (incluye "other" al final).
func Breeds(s Species) []string {
	info, ok := catalog[s]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(info.Breeds)+1)
	for _, b := range info.Breeds {
		out = append(out, b.Name)
	}
	return append(out, BreedOther)
}

// ApproxWeight devuelve el peso aproximado (kg) de una raza listada.
func ApproxWeight(s Species, breed string) (float64, bool) {
	b, ok := lookupBreed(s, breed)
	if !ok || b.ApproxKg <= 0 {
		return 0, false
	}
	return b.ApproxKg, true
}

func lookupBreed(s Species, breed string) (breedInfo, bool) {
	for _, b := range catalog[s].Breeds {
		if b.Name == breed {
			return b, true
		}
	}
	return breedInfo{}, false
}

// hasBreedList: las especies sin lista aceptan raza libre directamente.
func hasBreedList(s Species) bool {
	return len(catalog[s].Breeds) > 0
}

// SpeciesOption es lo que ve el cliente al armar el formulario.
type SpeciesOption struct {
	Species Species  `json:"species"`
	Label   string   `json:"label"`
	Breeds  []string `json:"breeds"`
}

func SpeciesOptions() []SpeciesOption {
	out := make([]SpeciesOption, 0, len(speciesOrder))
	for _, s := range speciesOrder {
		out = append(out, SpeciesOption{
			Species: s,
			Label:   catalog[s].Label,
			Breeds:  Breeds(s),
		})
	}
	return out
}
