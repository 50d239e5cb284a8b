package pets

import (
	"errors"
	"testing"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestFormFor_UnlistedBreedBecomesOther(t *testing.T) {
	f := FormFor(Pet{
		Name:    "Toby",
		Species: SpeciesDog,
		Breed:   strPtr("Mestizo"),
	})

	if f.Breed != BreedOther {
		t.Fatalf("expected breed %q, got %q", BreedOther, f.Breed)
	}
	if f.CustomBreed != "Mestizo" {
		t.Fatalf("expected custom breed Mestizo, got %q", f.CustomBreed)
	}
	if f.Weight != nil {
		t.Fatalf("expected no weight for unlisted breed, got %v", *f.Weight)
	}
}

func TestFormFor_ListedBreedFillsMissingWeight(t *testing.T) {
	f := FormFor(Pet{
		Name:    "Rex",
		Species: SpeciesDog,
		Breed:   strPtr("Beagle"),
	})

	if f.Breed != "Beagle" || f.CustomBreed != "" {
		t.Fatalf("unexpected breed fields: %q / %q", f.Breed, f.CustomBreed)
	}
	if f.Weight == nil || *f.Weight != 10 {
		t.Fatalf("expected approx weight 10, got %v", f.Weight)
	}
}

func TestFormFor_KeepsStoredWeight(t *testing.T) {
	f := FormFor(Pet{
		Name:    "Rex",
		Species: SpeciesDog,
		Breed:   strPtr("Beagle"),
		Weight:  floatPtr(13.5),
	})
	if f.Weight == nil || *f.Weight != 13.5 {
		t.Fatalf("expected stored weight 13.5, got %v", f.Weight)
	}
}

func TestFormFor_SpeciesWithoutListUsesCustom(t *testing.T) {
	f := FormFor(Pet{Name: "Nemo", Species: SpeciesOther, Breed: strPtr("Goldfish")})
	if f.Breed != BreedOther || f.CustomBreed != "Goldfish" {
		t.Fatalf("unexpected breed fields: %q / %q", f.Breed, f.CustomBreed)
	}
}

func TestForm_WithSpeciesResetsDependentFields(t *testing.T) {
	f := Form{
		Name:        "Milo",
		Species:     SpeciesDog,
		Breed:       BreedOther,
		CustomBreed: "Mestizo",
		Weight:      floatPtr(8),
	}.WithSpecies(SpeciesCat)

	if f.Species != SpeciesCat || f.Breed != "" || f.CustomBreed != "" || f.Weight != nil {
		t.Fatalf("expected reset form, got %#v", f)
	}
	if f.Name != "Milo" {
		t.Fatalf("expected name kept, got %q", f.Name)
	}
}

func TestForm_WithBreedOnlyFillsEmptyWeight(t *testing.T) {
	f := Form{Species: SpeciesCat}.WithBreed("Maine Coon")
	if f.Weight == nil || *f.Weight != 6 {
		t.Fatalf("expected approx weight 6, got %v", f.Weight)
	}

	f = Form{Species: SpeciesCat, Weight: floatPtr(3)}.WithBreed("Maine Coon")
	if *f.Weight != 3 {
		t.Fatalf("expected weight kept at 3, got %v", *f.Weight)
	}

	f = Form{Species: SpeciesCat}.WithBreed(BreedOther)
	if f.Weight != nil {
		t.Fatalf("expected no weight for other, got %v", *f.Weight)
	}
}

func TestForm_Resolve(t *testing.T) {
	fields, err := Form{
		Name:        "  Luna ",
		Species:     "DOG",
		Breed:       BreedOther,
		CustomBreed: " Mestizo ",
		Age:         intPtr(3),
	}.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if fields.Name != "Luna" || fields.Species != SpeciesDog {
		t.Fatalf("unexpected fields: %#v", fields)
	}
	if fields.Breed == nil || *fields.Breed != "Mestizo" {
		t.Fatalf("expected custom breed, got %v", fields.Breed)
	}

	fields, err = Form{Name: "Rex", Species: SpeciesDog, Breed: "Rottweiler"}.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if fields.Weight == nil || *fields.Weight != 45 {
		t.Fatalf("expected weight auto-filled to 45, got %v", fields.Weight)
	}

	bad := map[string]Form{
		"no name":         {Species: SpeciesDog},
		"unknown species": {Name: "x", Species: "dragon"},
		"negative age":    {Name: "x", Species: SpeciesDog, Age: intPtr(-1)},
		"zero weight":     {Name: "x", Species: SpeciesDog, Weight: floatPtr(0)},
		"foreign breed":   {Name: "x", Species: SpeciesCat, Breed: "Beagle"},
	}
	for name, f := range bad {
		t.Run(name, func(t *testing.T) {
			if _, err := f.Resolve(); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
