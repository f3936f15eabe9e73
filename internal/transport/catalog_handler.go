package transport

import (
	"net/http"

	"rebel-hub/internal/middleware"
	"rebel-hub/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogHandler serves the wholesale product catalog.
type CatalogHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewCatalogHandler(st *store.Store, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{store: st, logger: logger}
}

func (h *CatalogHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/api/products", h.List)
	})
}

// List returns every product with live stock levels.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.Products(r.Context())
	if err != nil {
		h.logger.Error("Failed to load catalog", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load products")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, products)
}
