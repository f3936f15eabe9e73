package transport

import (
	"errors"
	"net/http"

	"rebel-hub/internal/middleware"
	"rebel-hub/internal/pricing"
	"rebel-hub/internal/service"
	"rebel-hub/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddItemRequest adds a quantity of one product to the session cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// ApplyCouponRequest attaches a coupon code to the session cart.
type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

// CartHandler handles the session cart surface.
type CartHandler struct {
	carts  *service.CartService
	logger *zap.Logger
}

func NewCartHandler(carts *service.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{carts: carts, logger: logger}
}

func (h *CartHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.Get)
		r.Delete("/", h.Clear)
		r.Post("/items", h.AddItem)
		r.Delete("/items/{productID}", h.RemoveItem)
		r.Post("/coupon", h.ApplyCoupon)
		r.Delete("/coupon", h.RemoveCoupon)
	})
}

// Get returns the current quote for the session's cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	quote, err := h.carts.Quote(r.Context(), sessionID)
	if err != nil {
		h.logger.Error("Failed to quote cart", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, quote)
}

// AddItem adds or merges a cart line.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req AddItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quote, err := h.carts.AddItem(r.Context(), sessionID, req.ProductID, req.Quantity)
	if err != nil {
		h.respondCartError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, quote)
}

// RemoveItem drops a cart line.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	productID := chi.URLParam(r, "productID")
	quote, err := h.carts.RemoveItem(r.Context(), sessionID, productID)
	if err != nil {
		h.respondCartError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, quote)
}

// Clear empties the cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	quote, err := h.carts.Clear(r.Context(), sessionID)
	if err != nil {
		h.respondCartError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, quote)
}

// ApplyCoupon attaches a coupon to the cart.
func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req ApplyCouponRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quote, err := h.carts.ApplyCoupon(r.Context(), sessionID, req.Code)
	if err != nil {
		h.respondCartError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, quote)
}

// RemoveCoupon detaches the applied coupon.
func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	quote, err := h.carts.RemoveCoupon(r.Context(), sessionID)
	if err != nil {
		h.respondCartError(w, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, quote)
}

func (h *CartHandler) respondCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrProductNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
	case errors.Is(err, pricing.ErrInvalidQuantity):
		middleware.RespondWithError(w, http.StatusBadRequest, "quantity must be positive")
	case errors.Is(err, pricing.ErrInsufficientStock):
		middleware.RespondWithError(w, http.StatusConflict, "insufficient stock for requested quantity")
	case errors.Is(err, pricing.ErrUnknownCoupon):
		middleware.RespondWithError(w, http.StatusNotFound, "unknown coupon code")
	case errors.Is(err, pricing.ErrCouponNotEligible):
		middleware.RespondWithError(w, http.StatusUnprocessableEntity, "coupon requirements not met")
	default:
		h.logger.Error("Cart operation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "cart operation failed")
	}
}
