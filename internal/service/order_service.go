package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"rebel-hub/internal/domain"
	"rebel-hub/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmptyCart = errors.New("cart is empty")

const orderCreationDetail = "Retailer payment confirmed. Notifying Manufacturer/Distributor for hub dispatch."

// OrderService turns carts into orders and fronts the order, audit trail
// and reset operations.
type OrderService struct {
	store   *store.Store
	carts   *CartService
	logger  *zap.Logger
	now     func() time.Time
	randInt func(int) int
}

func NewOrderService(st *store.Store, carts *CartService, logger *zap.Logger) *OrderService {
	return &OrderService{
		store:   st,
		carts:   carts,
		logger:  logger,
		now:     time.Now,
		randInt: rand.Intn,
	}
}

// Checkout converts the session's cart into a PENDING order: snapshots the
// priced items, decrements stock, records the placement log, and drops the
// cart. The quote taken here is the authoritative invoice for the order.
func (s *OrderService) Checkout(ctx context.Context, sessionID, retailerName string, method domain.PaymentMethod, addr domain.Address) (domain.Order, error) {
	quote, err := s.carts.Quote(ctx, sessionID)
	if err != nil {
		return domain.Order{}, err
	}
	if len(quote.Items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	id, err := s.newOrderID(ctx)
	if err != nil {
		return domain.Order{}, err
	}

	order := domain.Order{
		ID:            id,
		RetailerName:  retailerName,
		Items:         quote.Items,
		TotalAmount:   quote.GrandTotal,
		Status:        domain.StatusPending,
		PaymentMethod: method,
		Address:       addr,
		CreatedAt:     s.now(),
		Logs: []domain.AuditLog{{
			ID:        uuid.NewString(),
			Timestamp: s.now(),
			Action:    "ORDER_PLACED",
			Details:   orderCreationDetail,
			Type:      domain.LogSuccess,
		}},
	}

	if err := s.store.SaveOrder(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("failed to persist order: %w", err)
	}
	for _, item := range order.Items {
		if err := s.store.ApplyStockDelta(ctx, item.ProductID, item.Quantity); err != nil {
			s.logger.Error("failed to decrement stock",
				zap.String("order_id", order.ID),
				zap.String("product_id", item.ProductID),
				zap.Error(err))
		}
	}
	s.carts.dropSession(sessionID)

	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("retailer", retailerName),
		zap.Float64("total", order.TotalAmount))
	return order, nil
}

// newOrderID rolls REBEL-nnnnnn identifiers until one is unused.
func (s *OrderService) newOrderID(ctx context.Context) (string, error) {
	for {
		id := fmt.Sprintf("REBEL-%06d", 100000+s.randInt(900000))
		_, err := s.store.Order(ctx, id)
		if errors.Is(err, store.ErrOrderNotFound) {
			return id, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check order id: %w", err)
		}
	}
}

func (s *OrderService) Orders(ctx context.Context) ([]domain.Order, error) {
	return s.store.Orders(ctx)
}

func (s *OrderService) Order(ctx context.Context, orderID string) (domain.Order, error) {
	return s.store.Order(ctx, orderID)
}

func (s *OrderService) AuditTrail(ctx context.Context) ([]domain.AuditLog, error) {
	return s.store.AuditLogs(ctx)
}

// Reset wipes orders, audit trail and catalog state, and discards every
// live cart session.
func (s *OrderService) Reset(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}
	s.carts.reset()
	s.logger.Warn("system reset executed")
	return nil
}
