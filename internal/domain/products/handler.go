package products

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"vetcare-portal/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/products", func(pr chi.Router) {
		pr.Get("/", listProductsHandler(svc, log))
		pr.Get("/{productID}", getProductHandler(svc, log))
	})
}

type productResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price" swaggertype:"string"`
	Type        Type            `json:"type"`
	ImageURL    *string         `json:"image_url"`
	Description *string         `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// listProductsHandler godoc
// @Summary Listar productos
// @Description Catálogo completo filtrado por nombre (q, sin distinguir mayúsculas) y tipo exacto.
// @Tags products
// @Produce json
// @Param q query string false "Texto a buscar en el nombre"
// @Param type query string false "Tipo exacto (food, toys, accessories, medicine, other)"
// @Success 200 {array} productResponse
// @Router /products [get]
func listProductsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := Filter{Search: strings.TrimSpace(q.Get("q"))}
		if t := strings.TrimSpace(q.Get("type")); t != "" {
			f.Type = NormalizeType(t)
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			log.Error("list products failed", map[string]any{"err": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]productResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getProductHandler godoc
// @Summary Ver producto
// @Tags products
// @Produce json
// @Param productID path string true "ID del producto"
// @Success 200 {object} productResponse
// @Failure 404 {string} string "product not found"
// @Router /products/{productID} [get]
func getProductHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "productID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "product not found", http.StatusNotFound)
				return
			}
			log.Error("get product failed", map[string]any{"err": err})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(p))
	}
}

func toResponse(p Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Type:        p.Type,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
