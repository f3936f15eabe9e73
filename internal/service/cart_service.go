package service

import (
	"context"
	"fmt"
	"sync"

	"rebel-hub/internal/domain"
	"rebel-hub/internal/pricing"
	"rebel-hub/internal/store"

	"go.uber.org/zap"
)

// CartService keeps one cart and optionally one applied coupon per session.
// Carts live in process memory only; losing them on restart matches the
// demo's throwaway-session model.
type CartService struct {
	store  *store.Store
	engine pricing.Engine
	logger *zap.Logger

	mu       sync.Mutex
	sessions map[string]*cartSession
}

type cartSession struct {
	cart   *pricing.Cart
	coupon *domain.Coupon
}

func NewCartService(st *store.Store, engine pricing.Engine, logger *zap.Logger) *CartService {
	return &CartService{
		store:    st,
		engine:   engine,
		logger:   logger,
		sessions: make(map[string]*cartSession),
	}
}

func (s *CartService) session(sessionID string) *cartSession {
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &cartSession{cart: pricing.NewCart()}
		s.sessions[sessionID] = sess
	}
	return sess
}

// quote prices the session's cart. A coupon whose minimum order is no
// longer met (items removed since it was applied) is dropped silently.
func (s *CartService) quote(sess *cartSession) (pricing.Quote, error) {
	q, err := s.engine.Quote(sess.cart, sess.coupon)
	if err == pricing.ErrCouponNotEligible && sess.coupon != nil {
		s.logger.Info("dropping coupon, cart no longer qualifies",
			zap.String("code", sess.coupon.Code))
		sess.coupon = nil
		return s.engine.Quote(sess.cart, nil)
	}
	return q, err
}

// AddItem puts qty units of productID in the session's cart and returns the
// refreshed quote.
func (s *CartService) AddItem(ctx context.Context, sessionID, productID string, qty int) (pricing.Quote, error) {
	product, err := s.product(ctx, productID)
	if err != nil {
		return pricing.Quote{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	if err := sess.cart.Add(product, qty); err != nil {
		return pricing.Quote{}, err
	}
	return s.quote(sess)
}

// RemoveItem drops a cart line. Removing an absent product is a no-op.
func (s *CartService) RemoveItem(_ context.Context, sessionID, productID string) (pricing.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	sess.cart.Remove(productID)
	return s.quote(sess)
}

// Clear empties the cart and forgets the applied coupon.
func (s *CartService) Clear(_ context.Context, sessionID string) (pricing.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	sess.cart.Clear()
	sess.coupon = nil
	return s.quote(sess)
}

// Quote returns the current invoice breakdown for the session.
func (s *CartService) Quote(_ context.Context, sessionID string) (pricing.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quote(s.session(sessionID))
}

// ApplyCoupon attaches a coupon to the session. The code must exist and the
// cart must meet its minimum order.
func (s *CartService) ApplyCoupon(_ context.Context, sessionID, code string) (pricing.Quote, error) {
	coupon, ok := domain.LookupCoupon(code)
	if !ok {
		return pricing.Quote{}, pricing.ErrUnknownCoupon
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	if _, err := pricing.CouponDiscount(coupon, sess.cart.Subtotal()); err != nil {
		return pricing.Quote{}, err
	}
	sess.coupon = &coupon
	return s.quote(sess)
}

// RemoveCoupon detaches any applied coupon.
func (s *CartService) RemoveCoupon(_ context.Context, sessionID string) (pricing.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.session(sessionID)
	sess.coupon = nil
	return s.quote(sess)
}

// dropSession discards a session's cart after checkout.
func (s *CartService) dropSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// reset discards every session. Called on system reset.
func (s *CartService) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*cartSession)
}

func (s *CartService) product(ctx context.Context, productID string) (domain.Product, error) {
	products, err := s.store.Products(ctx)
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to load catalog: %w", err)
	}
	for _, p := range products {
		if p.ID == productID {
			return p, nil
		}
	}
	return domain.Product{}, store.ErrProductNotFound
}
