package transport

import (
	"net/http"

	"rebel-hub/internal/insights"
	"rebel-hub/internal/middleware"
	"rebel-hub/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SupportRequest reports a problem for AI triage.
type SupportRequest struct {
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required,min=10"`
}

// InsightsResponse wraps recommendations with an enabled flag so the
// frontend can hide the panel when the collaborator is not configured.
type InsightsResponse struct {
	Enabled         bool                      `json:"enabled"`
	Recommendations []insights.Recommendation `json:"recommendations"`
}

// InsightsHandler fronts the best-effort generative collaborator.
type InsightsHandler struct {
	client *insights.Client
	store  *store.Store
	logger *zap.Logger
}

func NewInsightsHandler(client *insights.Client, st *store.Store, logger *zap.Logger) *InsightsHandler {
	return &InsightsHandler{client: client, store: st, logger: logger}
}

func (h *InsightsHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/api/insights", h.SupplyChain)
		r.Post("/api/support/analyze", h.AnalyzeSupport)
	})
}

// SupplyChain returns strategic recommendations over the current catalog.
// Collaborator failures degrade to an empty list, never an error.
func (h *InsightsHandler) SupplyChain(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.GetRole(r.Context())

	products, err := h.store.Products(r.Context())
	if err != nil {
		h.logger.Error("Failed to load catalog for insights", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load products")
		return
	}

	recs := h.client.SupplyChainInsights(r.Context(), products, role)
	if recs == nil {
		recs = []insights.Recommendation{}
	}
	middleware.RespondWithJSON(w, http.StatusOK, InsightsResponse{
		Enabled:         h.client.Enabled(),
		Recommendations: recs,
	})
}

// AnalyzeSupport triages a reported issue. A 503 here is informational;
// nothing in the order flow depends on it.
func (h *InsightsHandler) AnalyzeSupport(w http.ResponseWriter, r *http.Request) {
	var req SupportRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	analysis := h.client.AnalyzeSupportIssue(r.Context(), req.Category, req.Description)
	if analysis == nil {
		middleware.RespondWithError(w, http.StatusServiceUnavailable, "support analysis unavailable")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, analysis)
}
