package cart

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"vetcare-portal/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// ClientIDHeader identifica la instalación del cliente (no al dueño).
const ClientIDHeader = "X-Client-ID"

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/cart", func(cr chi.Router) {
		cr.Get("/", getCartHandler(svc, log))
		cr.Delete("/", clearCartHandler(svc, log))

		cr.Post("/items", addItemHandler(svc, log))
		cr.Patch("/items/{productID}", updateQuantityHandler(svc, log))
		cr.Delete("/items/{productID}", removeItemHandler(svc, log))

		cr.Post("/checkout", checkoutHandler())
	})
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"` // opcional, default 1
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Items []Item          `json:"items"`
	Total decimal.Decimal `json:"total" swaggertype:"string"`
	Count int             `json:"count"`
}

// getCartHandler godoc
// @Summary Ver carrito
// @Tags cart
// @Produce json
// @Param X-Client-ID header string false "Instalación del cliente (vacío = instalación por defecto)"
// @Success 200 {object} cartResponse
// @Router /cart [get]
func getCartHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Get(r.Context(), r.Header.Get(ClientIDHeader))
		if err != nil {
			writeServiceError(w, r, log, "get cart", err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(c))
	}
}

// addItemHandler godoc
// @Summary Agregar al carrito
// @Description Si el producto ya está, suma la cantidad.
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Instalación del cliente"
// @Param payload body addItemRequest true "Producto y cantidad"
// @Success 200 {object} cartResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "product not found"
// @Router /cart/items [post]
func addItemHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Add(r.Context(), r.Header.Get(ClientIDHeader), req.ProductID, req.Quantity)
		if err != nil {
			writeServiceError(w, r, log, "add cart item", err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(c))
	}
}

// updateQuantityHandler godoc
// @Summary Cambiar cantidad
// @Description Fija la cantidad; 0 o negativa quita la línea.
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Instalación del cliente"
// @Param productID path string true "ID del producto"
// @Param payload body updateQuantityRequest true "Nueva cantidad"
// @Success 200 {object} cartResponse
// @Router /cart/items/{productID} [patch]
func updateQuantityHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateQuantityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.UpdateQuantity(r.Context(), r.Header.Get(ClientIDHeader), chi.URLParam(r, "productID"), req.Quantity)
		if err != nil {
			writeServiceError(w, r, log, "update cart quantity", err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(c))
	}
}

// removeItemHandler godoc
// @Summary Quitar del carrito
// @Tags cart
// @Produce json
// @Param X-Client-ID header string false "Instalación del cliente"
// @Param productID path string true "ID del producto"
// @Success 200 {object} cartResponse
// @Router /cart/items/{productID} [delete]
func removeItemHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Remove(r.Context(), r.Header.Get(ClientIDHeader), chi.URLParam(r, "productID"))
		if err != nil {
			writeServiceError(w, r, log, "remove cart item", err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(c))
	}
}

// clearCartHandler godoc
// @Summary Vaciar carrito
// @Tags cart
// @Produce json
// @Param X-Client-ID header string false "Instalación del cliente"
// @Success 200 {object} cartResponse
// @Router /cart [delete]
func clearCartHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.Clear(r.Context(), r.Header.Get(ClientIDHeader))
		if err != nil {
			writeServiceError(w, r, log, "clear cart", err)
			return
		}
		writeJSON(w, http.StatusOK, toResponse(c))
	}
}

// checkoutHandler godoc
// @Summary Checkout (no implementado)
// @Tags cart
// @Failure 501 {string} string "checkout not implemented"
// @Router /cart/checkout [post]
func checkoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "checkout not implemented", http.StatusNotImplemented)
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, op string, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, "invalid input", http.StatusBadRequest)
	case errors.Is(err, ErrProductNotFound):
		http.Error(w, "product not found", http.StatusNotFound)
	default:
		log.Error(op+" failed", map[string]any{
			"err":       err,
			"path":      r.URL.Path,
			"client_id": strings.TrimSpace(r.Header.Get(ClientIDHeader)),
		})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toResponse(c Cart) cartResponse {
	items := c.Items
	if items == nil {
		items = []Item{}
	}
	return cartResponse{Items: items, Total: c.Total(), Count: c.Count()}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
