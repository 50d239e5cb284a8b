package pets

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"vetcare-portal/internal/middleware"
	"vetcare-portal/internal/platform/logger"
	"vetcare-portal/internal/platform/metrics"
	"vetcare-portal/internal/ports/media"

	"github.com/go-chi/chi/v5"
)

const (
	maxPhotoBytes     = 5 << 20
	maxMultipartBytes = maxPhotoBytes + (1 << 20)
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, log))
		pr.Get("/", listPetsHandler(svc, log))

		// Opciones del formulario (especies + razas)
		pr.Get("/species", listSpeciesHandler())

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Get("/{petID}/form", editFormHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc, log))
		pr.Delete("/{petID}", deletePetHandler(svc, log))
	})
}

type petResponse struct {
	ID           string    `json:"id"`
	OwnerUserID  string    `json:"owner_id"`
	Name         string    `json:"name"`
	Species      Species   `json:"species"`
	Breed        *string   `json:"breed"`
	Age          *int      `json:"age"`
	Weight       *float64  `json:"weight"`
	PhotoURL     *string   `json:"photo_url"`
	MedicalNotes string    `json:"medical_notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		form, photo, err := decodePetForm(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, form, photo)
		if err != nil {
			writeServiceError(w, r, log, "create pet", err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			log.Error("list pets failed", map[string]any{"err": err, "owner_id": claims.UserID})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func listSpeciesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, SpeciesOptions())
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetOwned(r.Context(), chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			writeServiceError(w, r, nil, "get pet", err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// editFormHandler devuelve el estado inicial del diálogo de edición (ya derivado).
func editFormHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		f, err := svc.EditForm(r.Context(), chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			writeServiceError(w, r, nil, "edit form", err)
			return
		}
		writeJSON(w, http.StatusOK, f)
	}
}

func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		form, photo, err := decodePetForm(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), claims.UserID, form, photo)
		if err != nil {
			writeServiceError(w, r, log, "update pet", err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID"), claims.UserID); err != nil {
			writeServiceError(w, r, log, "delete pet", err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// decodePetForm acepta JSON plano o multipart (parte "pet" con JSON + archivo "photo").
func decodePetForm(r *http.Request) (Form, *media.Upload, error) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "multipart/form-data") {
		var f Form
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			return Form{}, nil, errors.New("invalid json")
		}
		return f, nil, nil
	}

	r.Body = http.MaxBytesReader(nil, r.Body, maxMultipartBytes)
	if err := r.ParseMultipartForm(maxMultipartBytes); err != nil {
		return Form{}, nil, errors.New("invalid multipart body")
	}

	var f Form
	if err := json.Unmarshal([]byte(r.FormValue("pet")), &f); err != nil {
		return Form{}, nil, errors.New("pet part must be json")
	}

	file, hdr, err := r.FormFile("photo")
	if errors.Is(err, http.ErrMissingFile) {
		return f, nil, nil
	}
	if err != nil {
		return Form{}, nil, errors.New("invalid photo part")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		return Form{}, nil, errors.New("invalid photo part")
	}
	if len(data) > maxPhotoBytes {
		return Form{}, nil, errors.New("photo too large")
	}
	return f, &media.Upload{Filename: hdr.Filename, Data: data}, nil
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, op string, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrUpload):
		metrics.IncUploadFailure()
		if log != nil {
			log.Error(op+" failed", map[string]any{"err": err, "path": r.URL.Path})
		}
		http.Error(w, "photo upload failed", http.StatusBadGateway)
	default:
		if log != nil {
			log.Error(op+" failed", map[string]any{"err": err, "path": r.URL.Path})
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:           p.ID,
		OwnerUserID:  p.OwnerUserID,
		Name:         p.Name,
		Species:      p.Species,
		Breed:        p.Breed,
		Age:          p.Age,
		Weight:       p.Weight,
		PhotoURL:     p.PhotoURL,
		MedicalNotes: p.MedicalNotes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
