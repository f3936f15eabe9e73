package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"rebel-hub/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
)

// Collection keys. One JSON document per collection, mirroring the
// whole-collection read/replace semantics the store guarantees.
const (
	keyProducts  = "rebel:products"
	keyOrders    = "rebel:orders"
	keyAuditLogs = "rebel:audit_logs"
)

// maxAuditLogs caps the global trail; the oldest entries are evicted.
const maxAuditLogs = 100

// Backend is the raw key-value device under the store: load, replace or
// drop one serialized collection at a time. No cross-key atomicity is
// assumed or provided.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store owns the persisted Product, Order and AuditLog collections. All
// mutation of those collections goes through it.
type Store struct {
	backend Backend
	seed    []domain.Product
	now     func() time.Time
}

// New creates a Store over backend. seed is written on the first product
// read of an empty backend.
func New(backend Backend, seed []domain.Product) *Store {
	return &Store{
		backend: backend,
		seed:    seed,
		now:     time.Now,
	}
}

func (s *Store) load(ctx context.Context, key string, out any) (bool, error) {
	raw, ok, err := s.backend.Load(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.backend.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Products returns the catalog, seeding it on first read.
func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	ok, err := s.load(ctx, keyProducts, &products)
	if err != nil {
		return nil, err
	}
	if !ok {
		products = make([]domain.Product, len(s.seed))
		copy(products, s.seed)
		if err := s.save(ctx, keyProducts, products); err != nil {
			return nil, err
		}
	}
	return products, nil
}

// ApplyStockDelta decrements the product's stock by qty, clamped at zero.
func (s *Store) ApplyStockDelta(ctx context.Context, productID string, qty int) error {
	products, err := s.Products(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range products {
		if products[i].ID == productID {
			products[i].StockLevel -= qty
			if products[i].StockLevel < 0 {
				products[i].StockLevel = 0
			}
			found = true
			break
		}
	}
	if !found {
		return ErrProductNotFound
	}
	return s.save(ctx, keyProducts, products)
}

// Orders returns all orders, newest first.
func (s *Store) Orders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if _, err := s.load(ctx, keyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order returns a single order by ID.
func (s *Store) Order(ctx context.Context, orderID string) (domain.Order, error) {
	orders, err := s.Orders(ctx)
	if err != nil {
		return domain.Order{}, err
	}
	for _, o := range orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return domain.Order{}, ErrOrderNotFound
}

// SaveOrder prepends the order to the collection and records it on the
// global audit trail.
func (s *Store) SaveOrder(ctx context.Context, order domain.Order) error {
	orders, err := s.Orders(ctx)
	if err != nil {
		return err
	}
	orders = append([]domain.Order{order}, orders...)
	if err := s.save(ctx, keyOrders, orders); err != nil {
		return err
	}
	return s.AppendAuditLog(ctx, domain.AuditLog{
		Action:  "ORDER_PLACED",
		Details: fmt.Sprintf("Order %s placed by %s. Total: ₹%.2f", order.ID, order.RetailerName, order.TotalAmount),
		Type:    domain.LogInfo,
	})
}

// UpdateOrderStatus moves the order to status, prepending an entry to the
// order's own log and a summary to the global trail. The order log entry is
// SUCCESS only when the order reaches DELIVERED.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, detail string) error {
	orders, err := s.Orders(ctx)
	if err != nil {
		return err
	}

	var retailerName string
	found := false
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		found = true
		retailerName = orders[i].RetailerName

		logType := domain.LogInfo
		if status == domain.StatusDelivered {
			logType = domain.LogSuccess
		}
		if detail == "" {
			detail = fmt.Sprintf("Supply chain stage advanced: %s", humanize(status))
		}
		entry := domain.AuditLog{
			ID:        uuid.NewString(),
			Timestamp: s.now(),
			Action:    "STATUS_UPDATE",
			Details:   detail,
			Type:      logType,
		}
		orders[i].Status = status
		orders[i].Logs = append([]domain.AuditLog{entry}, orders[i].Logs...)
		break
	}
	if !found {
		return ErrOrderNotFound
	}
	if err := s.save(ctx, keyOrders, orders); err != nil {
		return err
	}

	return s.AppendAuditLog(ctx, domain.AuditLog{
		Action:  "LOGISTICS_UPDATE",
		Details: fmt.Sprintf("%s (%s): %s", orderID, retailerName, humanize(status)),
		Type:    domain.LogInfo,
	})
}

// AppendAuditLog prepends an entry to the global trail, evicting beyond the
// cap. Missing ID and timestamp are filled in.
func (s *Store) AppendAuditLog(ctx context.Context, entry domain.AuditLog) error {
	logs, err := s.AuditLogs(ctx)
	if err != nil {
		return err
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}
	if entry.Type == "" {
		entry.Type = domain.LogInfo
	}
	logs = append([]domain.AuditLog{entry}, logs...)
	if len(logs) > maxAuditLogs {
		logs = logs[:maxAuditLogs]
	}
	return s.save(ctx, keyAuditLogs, logs)
}

// AuditLogs returns the global trail, newest first, at most 100 entries.
func (s *Store) AuditLogs(ctx context.Context) ([]domain.AuditLog, error) {
	var logs []domain.AuditLog
	if _, err := s.load(ctx, keyAuditLogs, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// Reset clears all persisted collections. The catalog reseeds on the next
// product read.
func (s *Store) Reset(ctx context.Context) error {
	for _, key := range []string{keyOrders, keyProducts, keyAuditLogs} {
		if err := s.backend.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	return nil
}

func humanize(status domain.OrderStatus) string {
	return strings.ReplaceAll(string(status), "_", " ")
}
