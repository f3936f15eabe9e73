package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"rebel-hub/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func testSeed() []domain.Product {
	return []domain.Product{
		{ID: "m1", Name: "Paracetamol 500mg (Bulk)", PricePerUnit: 2.50, StockLevel: 25000},
		{ID: "m2", Name: "Amoxicillin 250mg Capsules", PricePerUnit: 8.75, StockLevel: 15000},
	}
}

func testOrder(id string) domain.Order {
	return domain.Order{
		ID:            id,
		RetailerName:  "Local Retailer",
		Items:         []domain.CartItem{{ProductID: "m1", ProductName: "Paracetamol 500mg (Bulk)", Quantity: 5000, Price: 2.20, OriginalPrice: 2.50}},
		TotalAmount:   12470,
		Status:        domain.StatusPending,
		PaymentMethod: domain.PaymentGPay,
		CreatedAt:     time.Now(),
		Logs: []domain.AuditLog{{
			ID: "log-1", Timestamp: time.Now(), Action: "ORDER_PLACED",
			Details: "Retailer payment confirmed.", Type: domain.LogSuccess,
		}},
	}
}

func TestProducts_SeedsOnFirstRead(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend(), testSeed())

	products, err := s.Products(ctx)
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}

	// Second read comes from the backend, not the seed.
	again, err := s.Products(ctx)
	if err != nil {
		t.Fatalf("second Products failed: %v", err)
	}
	if len(again) != 2 || again[0].ID != "m1" {
		t.Errorf("unexpected second read: %+v", again)
	}
}

func TestApplyStockDelta_DecrementsAndClamps(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend(), testSeed())

	if err := s.ApplyStockDelta(ctx, "m1", 5000); err != nil {
		t.Fatalf("ApplyStockDelta failed: %v", err)
	}
	products, _ := s.Products(ctx)
	if products[0].StockLevel != 20000 {
		t.Errorf("stock = %d, want 20000", products[0].StockLevel)
	}

	// Over-decrement clamps at zero, never negative.
	if err := s.ApplyStockDelta(ctx, "m1", 99999); err != nil {
		t.Fatalf("ApplyStockDelta failed: %v", err)
	}
	products, _ = s.Products(ctx)
	if products[0].StockLevel != 0 {
		t.Errorf("stock = %d, want 0", products[0].StockLevel)
	}

	if err := s.ApplyStockDelta(ctx, "missing", 1); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestSaveOrder_NewestFirstAndAudited(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend(), testSeed())

	if err := s.SaveOrder(ctx, testOrder("REBEL-100001")); err != nil {
		t.Fatalf("SaveOrder failed: %v", err)
	}
	if err := s.SaveOrder(ctx, testOrder("REBEL-100002")); err != nil {
		t.Fatalf("SaveOrder failed: %v", err)
	}

	orders, err := s.Orders(ctx)
	if err != nil {
		t.Fatalf("Orders failed: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != "REBEL-100002" {
		t.Errorf("orders not newest first: %v, %v", orders[0].ID, orders[1].ID)
	}

	logs, err := s.AuditLogs(ctx)
	if err != nil {
		t.Fatalf("AuditLogs failed: %v", err)
	}
	if len(logs) != 2 || logs[0].Action != "ORDER_PLACED" {
		t.Errorf("expected two ORDER_PLACED trail entries, got %+v", logs)
	}
}

func TestUpdateOrderStatus_AppendsBothLogs(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend(), testSeed())

	if err := s.SaveOrder(ctx, testOrder("REBEL-100001")); err != nil {
		t.Fatalf("SaveOrder failed: %v", err)
	}

	err := s.UpdateOrderStatus(ctx, "REBEL-100001", domain.StatusManufacturerDispatched, "Distributor has dispatched to REBEL Hub.")
	if err != nil {
		t.Fatalf("UpdateOrderStatus failed: %v", err)
	}

	order, err := s.Order(ctx, "REBEL-100001")
	if err != nil {
		t.Fatalf("Order failed: %v", err)
	}
	if order.Status != domain.StatusManufacturerDispatched {
		t.Errorf("status = %s, want MANUFACTURER_DISPATCHED", order.Status)
	}
	if len(order.Logs) != 2 {
		t.Fatalf("order has %d logs, want 2", len(order.Logs))
	}
	if order.Logs[0].Details != "Distributor has dispatched to REBEL Hub." {
		t.Errorf("newest log entry not first: %+v", order.Logs[0])
	}
	if order.Logs[0].Type != domain.LogInfo {
		t.Errorf("intermediate transition logged as %s, want INFO", order.Logs[0].Type)
	}

	// Items and total are untouched by the status update.
	if order.TotalAmount != 12470 || len(order.Items) != 1 {
		t.Errorf("order snapshot mutated: total=%v items=%d", order.TotalAmount, len(order.Items))
	}

	logs, _ := s.AuditLogs(ctx)
	if logs[0].Action != "LOGISTICS_UPDATE" {
		t.Errorf("global trail entry action = %s, want LOGISTICS_UPDATE", logs[0].Action)
	}
}

func TestUpdateOrderStatus_DeliveredLogsSuccess(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend(), testSeed())

	if err := s.SaveOrder(ctx, testOrder("REBEL-100001")); err != nil {
		t.Fatalf("SaveOrder failed: %v", err)
	}
	if err := s.UpdateOrderStatus(ctx, "REBEL-100001", domain.StatusDelivered, "Package received and signed."); err != nil {
		t.Fatalf("UpdateOrderStatus failed: %v", err)
	}

	order, _ := s.Order(ctx, "REBEL-100001")
	if order.Logs[0].Type != domain.LogSuccess {
		t.Errorf("delivery log type = %s, want SUCCESS", order.Logs[0].Type)
	}
}

func TestUpdateOrderStatus_UnknownOrder(t *testing.T) {
	s := New(NewMemoryBackend(), testSeed())
	err := s.UpdateOrderStatus(context.Background(), "REBEL-999999", domain.StatusDelivered, "")
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestReset_ClearsAllCollectionsAndReseeds(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend(), testSeed())

	if err := s.SaveOrder(ctx, testOrder("REBEL-100001")); err != nil {
		t.Fatalf("SaveOrder failed: %v", err)
	}
	if err := s.ApplyStockDelta(ctx, "m1", 5000); err != nil {
		t.Fatalf("ApplyStockDelta failed: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	orders, _ := s.Orders(ctx)
	if len(orders) != 0 {
		t.Errorf("orders survived reset: %d", len(orders))
	}
	logs, _ := s.AuditLogs(ctx)
	if len(logs) != 0 {
		t.Errorf("audit trail survived reset: %d", len(logs))
	}
	products, _ := s.Products(ctx)
	if products[0].StockLevel != 25000 {
		t.Errorf("catalog not reseeded: stock = %d", products[0].StockLevel)
	}
}

func TestProperty_AuditTrailNeverExceedsCap(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("global trail is bounded at 100 entries, newest kept", prop.ForAll(
		func(appends int) bool {
			ctx := context.Background()
			s := New(NewMemoryBackend(), nil)

			for i := 0; i < appends; i++ {
				err := s.AppendAuditLog(ctx, domain.AuditLog{
					Action:  "TEST",
					Details: "entry",
				})
				if err != nil {
					t.Logf("FAIL: append %d: %v", i, err)
					return false
				}
			}

			logs, err := s.AuditLogs(ctx)
			if err != nil {
				t.Logf("FAIL: AuditLogs: %v", err)
				return false
			}
			want := appends
			if want > 100 {
				want = 100
			}
			if len(logs) != want {
				t.Logf("FAIL: %d entries after %d appends, want %d", len(logs), appends, want)
				return false
			}
			return true
		},
		gen.IntRange(0, 250),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
