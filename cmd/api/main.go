package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"rebel-hub/internal/catalog"
	"rebel-hub/internal/config"
	"rebel-hub/internal/database"
	"rebel-hub/internal/lifecycle"
	"rebel-hub/internal/logger"
	"rebel-hub/internal/server"
	"rebel-hub/internal/store"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func gracefulShutdown(apiServer *server.Server, stopDriver context.CancelFunc, logger *zap.Logger, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	logger.Info("Shutting down gracefully, press Ctrl+C again to force")
	stop()
	stopDriver()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := apiServer.Close(); err != nil {
		logger.Error("Error closing server resources", zap.Error(err))
	}

	logger.Info("Server exiting")
	done <- true
}

// newBackend selects the collection backend for the configured driver.
func newBackend(cfg *config.Config, log *zap.Logger) (store.Backend, *sql.DB, *redis.Client, error) {
	switch cfg.Store.Driver {
	case "postgres":
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.RunMigrations(db, "migrations", log); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return store.NewPostgresBackend(db), db, nil, nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		return store.NewRedisBackend(client), nil, client, nil
	case "memory":
		return store.NewMemoryBackend(), nil, nil, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func main() {
	godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting REBEL hub API",
		zap.String("env", cfg.Server.Env),
		zap.String("port", cfg.Server.Port),
		zap.String("store_driver", cfg.Store.Driver),
	)

	backend, db, redisClient, err := newBackend(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize store backend", zap.Error(err))
	}

	st := store.New(backend, catalog.Seed())

	srv := server.NewServer(cfg, log, st, db, redisClient)

	// The lifecycle driver is the only thing that moves orders forward.
	driver := lifecycle.NewDriver(st, log, lifecycle.Config{
		Interval:            cfg.Lifecycle.TickInterval,
		DeliveryProbability: cfg.Lifecycle.DeliveryProbability,
	})
	driverCtx, stopDriver := context.WithCancel(context.Background())
	go driver.Run(driverCtx)

	done := make(chan bool, 1)
	go gracefulShutdown(srv, stopDriver, log, done)

	log.Info("Server listening", zap.String("addr", srv.Addr))

	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal("HTTP server error", zap.Error(err))
	}

	<-done
	log.Info("Graceful shutdown complete")
}
