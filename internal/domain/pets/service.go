package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vetcare-portal/internal/ports/media"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUpload       = errors.New("photo upload failed")
)

type Service struct {
	repo     Repository
	uploader media.Uploader
	now      func() time.Time
}

// NewService: uploader puede ser nil; en ese caso cualquier foto se rechaza con ErrUpload.
func NewService(repo Repository, uploader media.Uploader) *Service {
	return &Service{
		repo:     repo,
		uploader: uploader,
		now:      time.Now,
	}
}

func (s *Service) Create(ctx context.Context, ownerUserID string, form Form, photo *media.Upload) (Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Pet{}, ErrInvalidInput
	}
	fields, err := form.Resolve()
	if err != nil {
		return Pet{}, err
	}

	// La foto va primero: si falla, no se guarda nada.
	photoURL, err := s.upload(ctx, photo)
	if err != nil {
		return Pet{}, err
	}

	now := s.now()
	p := Pet{
		ID:           uuid.NewString(),
		OwnerUserID:  ownerUserID,
		Name:         fields.Name,
		Species:      fields.Species,
		Breed:        fields.Breed,
		Age:          fields.Age,
		Weight:       fields.Weight,
		PhotoURL:     photoURL,
		MedicalNotes: fields.MedicalNotes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Update reemplaza la ficha con el formulario. Sin foto nueva se conserva la actual.
func (s *Service) Update(ctx context.Context, petID, ownerUserID string, form Form, photo *media.Upload) (Pet, error) {
	current, err := s.GetOwned(ctx, strings.TrimSpace(petID), strings.TrimSpace(ownerUserID))
	if err != nil {
		return Pet{}, err
	}
	fields, err := form.Resolve()
	if err != nil {
		return Pet{}, err
	}

	photoURL := current.PhotoURL
	if photo != nil {
		photoURL, err = s.upload(ctx, photo)
		if err != nil {
			return Pet{}, err
		}
	}

	current.Name = fields.Name
	current.Species = fields.Species
	current.Breed = fields.Breed
	current.Age = fields.Age
	current.Weight = fields.Weight
	current.MedicalNotes = fields.MedicalNotes
	current.PhotoURL = photoURL
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Pet{}, err
	}
	return current, nil
}

func (s *Service) Delete(ctx context.Context, petID, ownerUserID string) error {
	p, err := s.GetOwned(ctx, strings.TrimSpace(petID), strings.TrimSpace(ownerUserID))
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, p.ID)
}

// EditForm devuelve el formulario derivado para abrir el diálogo de edición.
func (s *Service) EditForm(ctx context.Context, petID, ownerUserID string) (Form, error) {
	p, err := s.GetOwned(ctx, petID, ownerUserID)
	if err != nil {
		return Form{}, err
	}
	return FormFor(p), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	if strings.TrimSpace(id) == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func (s *Service) upload(ctx context.Context, photo *media.Upload) (*string, error) {
	if photo == nil {
		return nil, nil
	}
	if len(photo.Data) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrUpload, media.ErrEmptyUpload)
	}
	// Solo fotos reales: el tipo sale del contenido, no del nombre del archivo.
	if _, err := media.DetectImage(photo.Data); err != nil {
		return nil, fmt.Errorf("%w: photo: %v", ErrInvalidInput, err)
	}
	if s.uploader == nil {
		return nil, fmt.Errorf("%w: storage not configured", ErrUpload)
	}
	url, err := s.uploader.Upload(ctx, *photo)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	return &url, nil
}
