package transport

import (
	"net/http"
	"time"

	"rebel-hub/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionRequest selects which dashboard the caller enters.
type SessionRequest struct {
	Role string `json:"role" validate:"required,oneof=RETAILER SUPPLIER"`
}

// SessionResponse carries the bearer token for subsequent calls.
type SessionResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	Role      string `json:"role"`
	ExpiresAt string `json:"expires_at"`
}

// SessionHandler issues demo session tokens. There are no accounts; a
// session is just a signed role and a fresh cart identity.
type SessionHandler struct {
	jwtSecret string
	tokenTTL  time.Duration
	logger    *zap.Logger
}

func NewSessionHandler(jwtSecret string, tokenTTL time.Duration, logger *zap.Logger) *SessionHandler {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionHandler{jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

func (h *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/session", h.Create)
}

// Create mints a session token for the requested role.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req SessionRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sessionID := uuid.NewString()
	expiresAt := time.Now().Add(h.tokenTTL)

	claims := jwt.MapClaims{
		"session_id": sessionID,
		"role":       req.Role,
		"exp":        expiresAt.Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		h.logger.Error("Failed to sign session token", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	h.logger.Info("Session created",
		zap.String("session_id", sessionID),
		zap.String("role", req.Role))

	middleware.RespondWithJSON(w, http.StatusCreated, SessionResponse{
		Token:     signed,
		SessionID: sessionID,
		Role:      req.Role,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}
