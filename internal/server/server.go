package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"rebel-hub/internal/config"
	"rebel-hub/internal/insights"
	custommiddleware "rebel-hub/internal/middleware"
	"rebel-hub/internal/pricing"
	"rebel-hub/internal/service"
	"rebel-hub/internal/store"
	"rebel-hub/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *sql.DB
	redis  *redis.Client
}

// NewServer wires the storefront API. db and redisClient are nil unless the
// corresponding store driver is selected; without Redis the checkout rate
// limiter is disabled.
func NewServer(cfg *config.Config, logger *zap.Logger, st *store.Store, db *sql.DB, redisClient *redis.Client) *Server {
	router := chi.NewRouter()

	for _, mw := range custommiddleware.DefaultMiddlewareStack() {
		router.Use(mw)
	}
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.CORSMiddleware(nil, cfg.Server.Env != "production"))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize services
	engine := pricing.NewEngine(cfg.Pricing.TaxRate, cfg.Pricing.HandlingFee)
	carts := service.NewCartService(st, engine, logger)
	orders := service.NewOrderService(st, carts, logger)
	insightsClient := insights.NewClient(cfg.Insights.APIKey, cfg.Insights.BaseURL, cfg.Insights.Model, logger)

	authMiddleware := custommiddleware.AuthMiddleware(cfg.JWT.Secret, logger)
	supplierMiddleware := custommiddleware.RequireSupplier(logger)

	rateLimitMiddleware := func(next http.Handler) http.Handler { return next }
	if redisClient != nil {
		rateLimitMiddleware = custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: 10,
			Window:            time.Minute,
			KeyPrefix:         "checkout_rate",
		}, logger)
	} else {
		logger.Warn("Redis not configured, checkout rate limiting disabled")
	}

	// Register routes
	sessionTTL := time.Duration(cfg.JWT.SessionHours) * time.Hour
	transport.NewSessionHandler(cfg.JWT.Secret, sessionTTL, logger).RegisterRoutes(router)
	transport.NewCatalogHandler(st, logger).RegisterRoutes(router, authMiddleware)
	transport.NewCartHandler(carts, logger).RegisterRoutes(router, authMiddleware)
	transport.NewOrderHandler(orders, logger).RegisterRoutes(router, authMiddleware, rateLimitMiddleware, supplierMiddleware)
	transport.NewInsightsHandler(insightsClient, st, logger).RegisterRoutes(router, authMiddleware)

	return &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
		redis:  redisClient,
	}
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
