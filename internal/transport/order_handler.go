package transport

import (
	"errors"
	"net/http"
	"regexp"

	"rebel-hub/internal/domain"
	"rebel-hub/internal/middleware"
	"rebel-hub/internal/service"
	"rebel-hub/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddressPayload is the delivery address from the checkout modal.
type AddressPayload struct {
	ShopName string `json:"shop_name" validate:"required,alpha_space"`
	Street   string `json:"street" validate:"required"`
	City     string `json:"city" validate:"required,alpha_space"`
	Pincode  string `json:"pincode" validate:"required,numeric,len=6"`
	Phone    string `json:"phone" validate:"required,numeric,len=10"`
}

// CheckoutRequest places an order from the session's cart. Payment fields
// beyond the method are validated conditionally per method.
type CheckoutRequest struct {
	PaymentMethod string         `json:"payment_method" validate:"required,oneof=GPAY PHONEPE PAYTM CREDIT_CARD COD"`
	Address       AddressPayload `json:"address" validate:"required"`

	// Wallet payments (GPAY, PHONEPE, PAYTM)
	UpiPhone string `json:"upi_phone,omitempty"`

	// CREDIT_CARD payments
	CardName   string `json:"card_name,omitempty"`
	CardNumber string `json:"card_number,omitempty"`
	CardExpiry string `json:"card_expiry,omitempty"`
	CardCVV    string `json:"card_cvv,omitempty"`
}

var (
	digits10Re   = regexp.MustCompile(`^\d{10}$`)
	digits16Re   = regexp.MustCompile(`^\d{16}$`)
	digits3Re    = regexp.MustCompile(`^\d{3}$`)
	cardExpiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])\/\d{2}$`)
)

// paymentErrors validates the method-specific fields the base tags cannot
// express.
func (req *CheckoutRequest) paymentErrors() []middleware.ValidationError {
	var errs []middleware.ValidationError

	switch domain.PaymentMethod(req.PaymentMethod) {
	case domain.PaymentGPay, domain.PaymentPhonePe, domain.PaymentPaytm:
		if !digits10Re.MatchString(req.UpiPhone) {
			errs = append(errs, middleware.ValidationError{Field: "UpiPhone", Message: "A 10 digit UPI phone number is required"})
		}
	case domain.PaymentCreditCard:
		if req.CardName == "" {
			errs = append(errs, middleware.ValidationError{Field: "CardName", Message: "This field is required"})
		}
		if !digits16Re.MatchString(req.CardNumber) {
			errs = append(errs, middleware.ValidationError{Field: "CardNumber", Message: "A 16 digit card number is required"})
		}
		if !cardExpiryRe.MatchString(req.CardExpiry) {
			errs = append(errs, middleware.ValidationError{Field: "CardExpiry", Message: "Expiry must be MM/YY"})
		}
		if !digits3Re.MatchString(req.CardCVV) {
			errs = append(errs, middleware.ValidationError{Field: "CardCVV", Message: "A 3 digit CVV is required"})
		}
	}
	return errs
}

// OrderHandler handles checkout, order tracking, the audit trail and
// system reset.
type OrderHandler struct {
	orders *service.OrderService
	logger *zap.Logger
}

func NewOrderHandler(orders *service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, logger: logger}
}

func (h *OrderHandler) RegisterRoutes(r chi.Router, authMiddleware, rateLimitMiddleware, supplierMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.With(rateLimitMiddleware).Post("/api/checkout", h.Checkout)
		r.Get("/api/orders", h.List)
		r.Get("/api/orders/{orderID}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(supplierMiddleware)
			r.Get("/api/audit-logs", h.AuditTrail)
			r.Post("/api/system/reset", h.Reset)
		})
	})
}

// Checkout places an order from the session's cart.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CheckoutRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if paymentErrors := req.paymentErrors(); len(paymentErrors) > 0 {
		middleware.RespondWithValidationErrors(w, paymentErrors)
		return
	}

	addr := domain.Address{
		ShopName: req.Address.ShopName,
		Street:   req.Address.Street,
		City:     req.Address.City,
		Pincode:  req.Address.Pincode,
		Phone:    req.Address.Phone,
	}

	order, err := h.orders.Checkout(r.Context(), sessionID, addr.ShopName, domain.PaymentMethod(req.PaymentMethod), addr)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			middleware.RespondWithError(w, http.StatusBadRequest, "cart is empty")
			return
		}
		h.logger.Error("Checkout failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to place order")
		return
	}
	middleware.RespondWithJSON(w, http.StatusCreated, order)
}

// List returns all orders, newest first.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.Orders(r.Context())
	if err != nil {
		h.logger.Error("Failed to list orders", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, orders)
}

// Get returns one order with its logistics history.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	order, err := h.orders.Order(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, store.ErrOrderNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "order not found")
			return
		}
		h.logger.Error("Failed to load order", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load order")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, order)
}

// AuditTrail returns the bounded global audit trail, newest first.
func (h *OrderHandler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	trail, err := h.orders.AuditTrail(r.Context())
	if err != nil {
		h.logger.Error("Failed to load audit trail", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load audit logs")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, trail)
}

// Reset wipes the demo state back to the seeded catalog.
func (h *OrderHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.orders.Reset(r.Context()); err != nil {
		h.logger.Error("System reset failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to reset system")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "system reset complete"})
}
