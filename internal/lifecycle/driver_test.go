package lifecycle

import (
	"context"
	"testing"
	"time"

	"rebel-hub/internal/domain"
	"rebel-hub/internal/store"

	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(store.NewMemoryBackend(), nil)
}

func placeOrder(t *testing.T, s *store.Store, id string, status domain.OrderStatus) {
	t.Helper()
	err := s.SaveOrder(context.Background(), domain.Order{
		ID:           id,
		RetailerName: "Local Retailer",
		Items:        []domain.CartItem{{ProductID: "m1", Quantity: 100, Price: 2.50}},
		TotalAmount:  430,
		Status:       status,
		CreatedAt:    time.Now(),
		Logs: []domain.AuditLog{{
			ID: "log-0", Timestamp: time.Now(), Action: "ORDER_PLACED",
			Details: "Retailer payment confirmed.", Type: domain.LogSuccess,
		}},
	})
	if err != nil {
		t.Fatalf("SaveOrder failed: %v", err)
	}
}

func TestNext_WalksTheChain(t *testing.T) {
	want := []domain.OrderStatus{
		domain.StatusManufacturerDispatched,
		domain.StatusHubReceived,
		domain.StatusHubQualityCheck,
		domain.StatusOutForDelivery,
		domain.StatusDelivered,
	}

	status := domain.StatusPending
	for i, expected := range want {
		next, ok := Next(status)
		if !ok {
			t.Fatalf("step %d: no transition from %s", i, status)
		}
		if next != expected {
			t.Fatalf("step %d: Next(%s) = %s, want %s", i, status, next, expected)
		}
		status = next
	}

	if _, ok := Next(domain.StatusDelivered); ok {
		t.Error("DELIVERED must be terminal")
	}
	if !IsTerminal(domain.StatusDelivered) {
		t.Error("IsTerminal(DELIVERED) = false")
	}
	if _, ok := Next(domain.StatusHubProcessing); ok {
		t.Error("HUB_PROCESSING is reserved and must not transition")
	}
}

func TestDriver_TickAdvancesToDelivered(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	placeOrder(t, s, "REBEL-400001", domain.StatusPending)

	d := NewDriver(s, zap.NewNop(), Config{
		DeliveryProbability: 0.3,
		Rand:                func() float64 { return 0.0 }, // always below the threshold
	})

	for i := 0; i < 5; i++ {
		advanced, err := d.Tick(ctx)
		if err != nil {
			t.Fatalf("tick %d failed: %v", i, err)
		}
		if advanced != 1 {
			t.Fatalf("tick %d advanced %d orders, want 1", i, advanced)
		}
	}

	order, err := s.Order(ctx, "REBEL-400001")
	if err != nil {
		t.Fatalf("Order failed: %v", err)
	}
	if order.Status != domain.StatusDelivered {
		t.Errorf("status = %s, want DELIVERED after 5 ticks", order.Status)
	}
	if len(order.Logs) != 6 {
		t.Fatalf("order has %d logs, want 6 (placement + 5 transitions)", len(order.Logs))
	}
	if order.Logs[0].Details != "Package received and signed by Local Retailer." {
		t.Errorf("newest log = %q", order.Logs[0].Details)
	}
	if order.Logs[0].Type != domain.LogSuccess {
		t.Errorf("delivery log type = %s, want SUCCESS", order.Logs[0].Type)
	}
	if order.Logs[1].Type != domain.LogInfo {
		t.Errorf("intermediate log type = %s, want INFO", order.Logs[1].Type)
	}
}

func TestDriver_TerminalOrdersAreLeftAlone(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	placeOrder(t, s, "REBEL-400002", domain.StatusDelivered)

	d := NewDriver(s, zap.NewNop(), Config{Rand: func() float64 { return 0.0 }})

	advanced, err := d.Tick(ctx)
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if advanced != 0 {
		t.Errorf("advanced %d orders, want 0", advanced)
	}

	order, _ := s.Order(ctx, "REBEL-400002")
	if len(order.Logs) != 1 {
		t.Errorf("terminal order gained logs: %d", len(order.Logs))
	}
}

func TestDriver_DeliveryIsProbabilityGated(t *testing.T) {
	ctx := context.Background()

	t.Run("holds when the roll misses", func(t *testing.T) {
		s := newTestStore(t)
		placeOrder(t, s, "REBEL-400003", domain.StatusOutForDelivery)
		d := NewDriver(s, zap.NewNop(), Config{
			DeliveryProbability: 0.3,
			Rand:                func() float64 { return 0.99 },
		})

		advanced, err := d.Tick(ctx)
		if err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
		if advanced != 0 {
			t.Errorf("advanced %d orders, want 0", advanced)
		}
		order, _ := s.Order(ctx, "REBEL-400003")
		if order.Status != domain.StatusOutForDelivery {
			t.Errorf("status = %s, want OUT_FOR_DELIVERY", order.Status)
		}
	})

	t.Run("delivers when the roll hits", func(t *testing.T) {
		s := newTestStore(t)
		placeOrder(t, s, "REBEL-400004", domain.StatusOutForDelivery)
		d := NewDriver(s, zap.NewNop(), Config{
			DeliveryProbability: 0.3,
			Rand:                func() float64 { return 0.29 },
		})

		advanced, err := d.Tick(ctx)
		if err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
		if advanced != 1 {
			t.Errorf("advanced %d orders, want 1", advanced)
		}
		order, _ := s.Order(ctx, "REBEL-400004")
		if order.Status != domain.StatusDelivered {
			t.Errorf("status = %s, want DELIVERED", order.Status)
		}
	})
}

func TestDriver_TickWithNoOrders(t *testing.T) {
	s := newTestStore(t)
	d := NewDriver(s, zap.NewNop(), Config{})

	advanced, err := d.Tick(context.Background())
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if advanced != 0 {
		t.Errorf("advanced %d orders, want 0", advanced)
	}
}

// slowStore blocks Orders until released so an overlapping tick can be forced.
type slowStore struct {
	release chan struct{}
	entered chan struct{}
}

func (s *slowStore) Orders(ctx context.Context) ([]domain.Order, error) {
	s.entered <- struct{}{}
	<-s.release
	return nil, nil
}

func (s *slowStore) UpdateOrderStatus(context.Context, string, domain.OrderStatus, string) error {
	return nil
}

func TestDriver_OverlappingTickIsSkipped(t *testing.T) {
	slow := &slowStore{release: make(chan struct{}), entered: make(chan struct{})}
	d := NewDriver(slow, zap.NewNop(), Config{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Tick(context.Background())
	}()
	<-slow.entered

	advanced, err := d.Tick(context.Background())
	if err != nil {
		t.Fatalf("overlapping Tick errored: %v", err)
	}
	if advanced != 0 {
		t.Errorf("overlapping tick advanced %d orders, want 0", advanced)
	}

	close(slow.release)
	<-done
}
