package domain

// CouponType distinguishes percentage coupons from fixed-amount ones.
type CouponType string

const (
	CouponPercent CouponType = "percent"
	CouponFixed   CouponType = "fixed"
)

// Coupon is a statically defined discount rule. A percent coupon's Value is
// a fraction in [0,1); a fixed coupon's Value is an amount in rupees.
// MinOrder, when non-zero, is the minimum subtotal required to apply.
type Coupon struct {
	Code     string     `json:"code"`
	Type     CouponType `json:"type"`
	Value    float64    `json:"value"`
	MinOrder float64    `json:"min_order,omitempty"`
	Label    string     `json:"label"`
}

// coupons is the static registry. Codes are case-sensitive.
var coupons = map[string]Coupon{
	"SAVE10":     {Code: "SAVE10", Type: CouponPercent, Value: 0.1, Label: "10% OFF Bulk Orders"},
	"WELCOME500": {Code: "WELCOME500", Type: CouponFixed, Value: 500, MinOrder: 5000, Label: "₹500 OFF on ₹5k+"},
	"REBEL":      {Code: "REBEL", Type: CouponFixed, Value: 1000, MinOrder: 15000, Label: "₹1000 OFF on ₹15k+"},
}

// LookupCoupon returns the coupon registered under code, if any.
func LookupCoupon(code string) (Coupon, bool) {
	c, ok := coupons[code]
	return c, ok
}

// Coupons returns all registered coupons.
func Coupons() []Coupon {
	out := make([]Coupon, 0, len(coupons))
	for _, c := range coupons {
		out = append(out, c)
	}
	return out
}
