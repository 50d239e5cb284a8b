package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"vetcare-portal/internal/middleware"
	"vetcare-portal/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", bookHandler(svc, log))
		ar.Get("/", listMineHandler(svc, log))
		ar.Get("/slots", slotsHandler(svc))

		ar.Get("/{appointmentID}", getHandler(svc, log))
		ar.Post("/{appointmentID}/cancel", cancelHandler(svc, log))
		// DELETE es un alias de cancel: el turno queda en cancelled, no se borra.
		ar.Delete("/{appointmentID}", cancelHandler(svc, log))

		ar.Patch("/{appointmentID}/status", updateStatusHandler(svc, log))
	})

	r.Get("/clinic/appointments", listClinicHandler(svc, log))
}

// bookRequest es el cuerpo para reservar un turno.
type bookRequest struct {
	PetID       string `json:"pet_id"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	ServiceType string `json:"service_type" enums:"consultation,vaccination,surgery,grooming,emergency"`
	Notes       string `json:"notes"`
}

// updateStatusRequest es el cuerpo del cambio de estado (operador).
type updateStatusRequest struct {
	Status            Status  `json:"status" enums:"confirmed,completed,cancelled"`
	VeterinarianNotes *string `json:"veterinarian_notes"`
}

type petSummaryResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Species  string  `json:"species"`
	Breed    *string `json:"breed"`
	PhotoURL *string `json:"photo_url"`
}

// appointmentResponse representa un turno devuelto por la API.
type appointmentResponse struct {
	ID                string              `json:"id"`
	PetID             string              `json:"pet_id"`
	OwnerUserID       string              `json:"owner_id"`
	AppointmentDate   time.Time           `json:"appointment_date"`
	ServiceType       ServiceType         `json:"service_type"`
	Status            Status              `json:"status"`
	Notes             string              `json:"notes"`
	VeterinarianNotes *string             `json:"veterinarian_notes"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
	Pet               *petSummaryResponse `json:"pet,omitempty"`
}

// bookResponse incluye hasta cuándo mostrar el aviso de éxito.
type bookResponse struct {
	Appointment appointmentResponse `json:"appointment"`
	NoticeUntil time.Time           `json:"notice_until"`
}

type overviewResponse struct {
	Upcoming []appointmentResponse `json:"upcoming"`
	Past     []appointmentResponse `json:"past,omitempty"`
}

type slotsResponse struct {
	Date  string      `json:"date"`
	Slots []TimeOfDay `json:"slots" swaggertype:"array,string"`
}

// bookHandler godoc
// @Summary Reservar turno
// @Description Crea un turno en estado pending para una mascota del usuario. La fecha no puede ser anterior a hoy ni caer en un día cerrado; la hora debe ser un slot de la grilla. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags appointments
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body bookRequest true "Datos del turno"
// @Success 201 {object} bookResponse
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "pet not found"
// @Router /appointments [post]
func bookHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req bookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Book(r.Context(), claims.UserID, BookInput{
			PetID:       req.PetID,
			Date:        req.Date,
			Time:        req.Time,
			ServiceType: req.ServiceType,
			Notes:       req.Notes,
		})
		if err != nil {
			writeServiceError(w, r, log, "book appointment", err)
			return
		}

		writeJSON(w, http.StatusCreated, bookResponse{
			Appointment: toResponse(WithPet{Appointment: a}),
			NoticeUntil: svc.NoticeUntil(),
		})
	}
}

// listMineHandler godoc
// @Summary Listar mis turnos
// @Description Devuelve los turnos del usuario separados en próximos (fecha >= ahora y no cancelados) e historial, ambos por fecha ascendente. Con `compact=true` solo devuelve los primeros 3 próximos.
// @Tags appointments
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param compact query bool false "Vista compacta del dashboard"
// @Success 200 {object} overviewResponse
// @Failure 401 {string} string "unauthorized"
// @Router /appointments [get]
func listMineHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		compact := false
		if v := strings.TrimSpace(r.URL.Query().Get("compact")); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				http.Error(w, "invalid compact", http.StatusBadRequest)
				return
			}
			compact = b
		}

		ov, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, r, log, "list appointments", err)
			return
		}

		if compact {
			up := ov.Upcoming
			if len(up) > CompactLimit {
				up = up[:CompactLimit]
			}
			writeJSON(w, http.StatusOK, overviewResponse{Upcoming: toResponses(up)})
			return
		}

		writeJSON(w, http.StatusOK, overviewResponse{
			Upcoming: toResponses(ov.Upcoming),
			Past:     toResponses(ov.Past),
		})
	}
}

// slotsHandler godoc
// @Summary Horarios disponibles
// @Description Devuelve la grilla de horarios del día indicado. Vacía si la fecha es pasada o la clínica está cerrada.
// @Tags appointments
// @Produce json
// @Param date query string true "Fecha (YYYY-MM-DD)"
// @Success 200 {object} slotsResponse
// @Failure 400 {string} string "invalid date"
// @Router /appointments/slots [get]
func slotsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		slots, err := svc.AvailableSlots(date)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, slotsResponse{Date: date, Slots: slots})
	}
}

// getHandler godoc
// @Summary Ver turno
// @Tags appointments
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param appointmentID path string true "ID del turno"
// @Success 200 {object} appointmentResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "appointment not found"
// @Router /appointments/{appointmentID} [get]
func getHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := svc.Get(r.Context(), claims, chi.URLParam(r, "appointmentID"))
		if err != nil {
			writeServiceError(w, r, log, "get appointment", err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(WithPet{Appointment: a}))
	}
}

// cancelHandler godoc
// @Summary Cancelar turno
// @Description El dueño cancela un turno propio mientras está pending. El turno pasa a cancelled y se conserva en el historial.
// @Tags appointments
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param appointmentID path string true "ID del turno"
// @Success 200 {object} appointmentResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "appointment not found"
// @Failure 409 {string} string "status transition not allowed"
// @Router /appointments/{appointmentID}/cancel [post]
// @Router /appointments/{appointmentID} [delete]
func cancelHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := svc.Cancel(r.Context(), claims.UserID, chi.URLParam(r, "appointmentID"))
		if err != nil {
			writeServiceError(w, r, log, "cancel appointment", err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(WithPet{Appointment: a}))
	}
}

// updateStatusHandler godoc
// @Summary Cambiar estado de turno (operador)
// @Description Transiciones válidas: pending→confirmed, pending→cancelled, confirmed→completed. Requiere rol admin.
// @Tags clinic
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-User-Role header string false "Solo en modo dev, rol (client|admin)"
// @Param Authorization header string false "Bearer token en producción"
// @Param appointmentID path string true "ID del turno"
// @Param payload body updateStatusRequest true "Nuevo estado"
// @Success 200 {object} appointmentResponse
// @Failure 400 {string} string "invalid json / estado desconocido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "appointment not found"
// @Failure 409 {string} string "status transition not allowed"
// @Router /appointments/{appointmentID}/status [patch]
func updateStatusHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.UpdateStatus(r.Context(), claims, chi.URLParam(r, "appointmentID"), StatusUpdate{
			Status:            req.Status,
			VeterinarianNotes: req.VeterinarianNotes,
		})
		if err != nil {
			writeServiceError(w, r, log, "update appointment status", err)
			return
		}

		log.Info("appointment status changed", map[string]any{
			"appointment_id": a.ID,
			"status":         a.Status,
			"actor_id":       claims.UserID,
		})
		writeJSON(w, http.StatusOK, toResponse(WithPet{Appointment: a}))
	}
}

// listClinicHandler godoc
// @Summary Agenda de la clínica (operador)
// @Description Todos los turnos por fecha ascendente, con la mascota expandida. Requiere rol admin.
// @Tags clinic
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param X-Debug-User-Role header string false "Solo en modo dev, rol (client|admin)"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {array} appointmentResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /clinic/appointments [get]
func listClinicHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListAll(r.Context(), claims)
		if err != nil {
			writeServiceError(w, r, log, "list clinic appointments", err)
			return
		}
		writeJSON(w, http.StatusOK, toResponses(items))
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, op string, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrPetNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "appointment not found", http.StatusNotFound)
	case errors.Is(err, ErrBadTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Error(op+" failed", map[string]any{"err": err, "path": r.URL.Path})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toResponses(items []WithPet) []appointmentResponse {
	out := make([]appointmentResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toResponse(a))
	}
	return out
}

func toResponse(a WithPet) appointmentResponse {
	resp := appointmentResponse{
		ID:                a.ID,
		PetID:             a.PetID,
		OwnerUserID:       a.OwnerUserID,
		AppointmentDate:   a.Date,
		ServiceType:       a.ServiceType,
		Status:            a.Status,
		Notes:             a.Notes,
		VeterinarianNotes: a.VeterinarianNotes,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
	if a.Pet != nil {
		resp.Pet = &petSummaryResponse{
			ID:       a.Pet.ID,
			Name:     a.Pet.Name,
			Species:  a.Pet.Species,
			Breed:    a.Pet.Breed,
			PhotoURL: a.Pet.PhotoURL,
		}
	}
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
