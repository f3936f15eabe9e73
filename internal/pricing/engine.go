package pricing

import (
	"errors"
	"sort"

	"rebel-hub/internal/domain"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("insufficient stock for requested quantity")
	ErrCouponNotEligible = errors.New("coupon requirements not met")
	ErrUnknownCoupon     = errors.New("unknown coupon code")
)

// Default invoice constants.
const (
	DefaultTaxRate     = 0.12
	DefaultHandlingFee = 150.0
)

// AppliedTier selects the best-qualifying bulk discount for qty: the tier
// with the greatest MinQty not exceeding qty. Tiers need not arrive sorted;
// sorting descending by MinQty makes the pick deterministic even when
// MinQty values repeat.
func AppliedTier(p domain.Product, qty int) (domain.BulkDiscount, bool) {
	if len(p.BulkDiscounts) == 0 {
		return domain.BulkDiscount{}, false
	}
	tiers := make([]domain.BulkDiscount, len(p.BulkDiscounts))
	copy(tiers, p.BulkDiscounts)
	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].MinQty > tiers[j].MinQty
	})
	for _, t := range tiers {
		if qty >= t.MinQty {
			return t, true
		}
	}
	return domain.BulkDiscount{}, false
}

// UnitPrice resolves the per-unit price for qty units of p.
//
// All pricing arithmetic here is float64, matching the persisted order
// amounts. Known precision risk under repeated recomputation; amounts are
// display currency, not ledger entries.
func UnitPrice(p domain.Product, qty int) float64 {
	if t, ok := AppliedTier(p, qty); ok {
		return p.PricePerUnit * (1 - t.DiscountPercent)
	}
	return p.PricePerUnit
}

// CouponDiscount computes the discount a coupon yields against subtotal.
// Returns ErrCouponNotEligible when the coupon's minimum order is unmet.
// Fixed discounts are clamped to the subtotal.
func CouponDiscount(c domain.Coupon, subtotal float64) (float64, error) {
	if c.MinOrder > 0 && subtotal < c.MinOrder {
		return 0, ErrCouponNotEligible
	}
	switch c.Type {
	case domain.CouponPercent:
		return subtotal * c.Value, nil
	case domain.CouponFixed:
		if c.Value > subtotal {
			return subtotal, nil
		}
		return c.Value, nil
	default:
		return 0, ErrUnknownCoupon
	}
}

// Quote is the full invoice breakdown for a cart.
type Quote struct {
	Items          []domain.CartItem `json:"items"`
	ListTotal      float64           `json:"list_total"`
	Subtotal       float64           `json:"subtotal"`
	BulkSavings    float64           `json:"bulk_savings"`
	CouponCode     string            `json:"coupon_code,omitempty"`
	CouponDiscount float64           `json:"coupon_discount"`
	Tax            float64           `json:"tax"`
	HandlingFee    float64           `json:"handling_fee"`
	GrandTotal     float64           `json:"grand_total"`
}

// Engine computes invoices. Zero value is unusable; construct with
// NewEngine.
type Engine struct {
	taxRate     float64
	handlingFee float64
}

func NewEngine(taxRate, handlingFee float64) Engine {
	return Engine{taxRate: taxRate, handlingFee: handlingFee}
}

// Quote prices the cart with an optional coupon. Tax applies to the
// post-discount subtotal only, never to the handling fee, and the handling
// fee applies only to non-empty carts. The coupon error leaves the caller's
// state untouched; nothing here mutates the cart.
func (e Engine) Quote(cart *Cart, coupon *domain.Coupon) (Quote, error) {
	q := Quote{
		Items:       cart.Items(),
		ListTotal:   cart.ListTotal(),
		Subtotal:    cart.Subtotal(),
		BulkSavings: cart.BulkSavings(),
	}

	if coupon != nil {
		d, err := CouponDiscount(*coupon, q.Subtotal)
		if err != nil {
			return Quote{}, err
		}
		q.CouponCode = coupon.Code
		q.CouponDiscount = d
	}

	taxable := q.Subtotal - q.CouponDiscount
	if taxable < 0 {
		taxable = 0
	}
	q.Tax = taxable * e.taxRate
	if !cart.Empty() {
		q.HandlingFee = e.handlingFee
	}
	q.GrandTotal = taxable + q.Tax + q.HandlingFee
	if q.GrandTotal < 0 {
		q.GrandTotal = 0
	}
	return q, nil
}
