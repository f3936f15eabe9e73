package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"rebel-hub/internal/domain"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15",
		postgres.WithDatabase("rebel_test"),
		postgres.WithUsername("rebel"),
		postgres.WithPassword("rebel"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		t.Skipf("could not start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.ExecContext(ctx, `
		CREATE TABLE collections (
			name TEXT PRIMARY KEY,
			doc JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		t.Fatalf("failed to create collections table: %v", err)
	}

	return db
}

func TestPostgresBackend_RoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	db := setupPostgres(t)
	s := New(NewPostgresBackend(db), testSeed())

	products, err := s.Products(ctx)
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}

	if err := s.SaveOrder(ctx, testOrder("REBEL-300001")); err != nil {
		t.Fatalf("SaveOrder failed: %v", err)
	}
	if err := s.UpdateOrderStatus(ctx, "REBEL-300001", domain.StatusHubReceived, ""); err != nil {
		t.Fatalf("UpdateOrderStatus failed: %v", err)
	}

	order, err := s.Order(ctx, "REBEL-300001")
	if err != nil {
		t.Fatalf("Order failed: %v", err)
	}
	if order.Status != domain.StatusHubReceived {
		t.Errorf("status = %s, want HUB_RECEIVED", order.Status)
	}

	// Save upserts: a second write to the same collection must not error.
	if err := s.ApplyStockDelta(ctx, "m2", 500); err != nil {
		t.Fatalf("ApplyStockDelta failed: %v", err)
	}
	products, _ = s.Products(ctx)
	if products[1].StockLevel != 14500 {
		t.Errorf("stock = %d, want 14500", products[1].StockLevel)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	orders, _ := s.Orders(ctx)
	if len(orders) != 0 {
		t.Errorf("orders survived reset: %d", len(orders))
	}
}
