package lifecycle

import (
	"context"
	"math/rand"
	"sync/atomic"
	"time"

	"rebel-hub/internal/domain"

	"go.uber.org/zap"
)

const (
	DefaultInterval            = 12 * time.Second
	DefaultDeliveryProbability = 0.3
)

// OrderStore is the slice of the store the driver needs.
type OrderStore interface {
	Orders(ctx context.Context) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, details string) error
}

// Config tunes the driver. Zero values fall back to defaults; Rand is only
// swapped out by tests.
type Config struct {
	Interval            time.Duration
	DeliveryProbability float64
	Rand                func() float64
}

// Driver advances every active order one supply chain stage per tick. The
// final hop to DELIVERED is probabilistic so orders linger out for delivery
// a few cycles, like a real carrier would.
type Driver struct {
	store        OrderStore
	logger       *zap.Logger
	interval     time.Duration
	deliveryProb float64
	rand         func() float64
	ticking      atomic.Bool
}

func NewDriver(store OrderStore, logger *zap.Logger, cfg Config) *Driver {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.DeliveryProbability <= 0 {
		cfg.DeliveryProbability = DefaultDeliveryProbability
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.Float64
	}
	return &Driver{
		store:        store,
		logger:       logger,
		interval:     cfg.Interval,
		deliveryProb: cfg.DeliveryProbability,
		rand:         cfg.Rand,
	}
}

// Run ticks until ctx is cancelled. Meant to be launched as a goroutine
// alongside the HTTP server.
func (d *Driver) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.Info("lifecycle driver started",
		zap.Duration("interval", d.interval),
		zap.Float64("delivery_probability", d.deliveryProb))

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("lifecycle driver stopped")
			return
		case <-ticker.C:
			if _, err := d.Tick(ctx); err != nil {
				d.logger.Error("lifecycle tick failed", zap.Error(err))
			}
		}
	}
}

// Tick advances each eligible order one stage and returns how many moved.
// Overlapping ticks are skipped rather than queued.
func (d *Driver) Tick(ctx context.Context) (int, error) {
	if !d.ticking.CompareAndSwap(false, true) {
		d.logger.Warn("lifecycle tick skipped, previous tick still running")
		return 0, nil
	}
	defer d.ticking.Store(false)

	orders, err := d.store.Orders(ctx)
	if err != nil {
		return 0, err
	}

	advanced := 0
	for _, order := range orders {
		next, ok := Next(order.Status)
		if !ok {
			continue
		}
		if order.Status == domain.StatusOutForDelivery && d.rand() >= d.deliveryProb {
			continue
		}
		if err := d.store.UpdateOrderStatus(ctx, order.ID, next, StageDetail(next)); err != nil {
			d.logger.Error("failed to advance order",
				zap.String("order_id", order.ID),
				zap.Error(err))
			continue
		}
		d.logger.Info("order advanced",
			zap.String("order_id", order.ID),
			zap.String("status", string(next)))
		advanced++
	}
	return advanced, nil
}
