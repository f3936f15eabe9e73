package domain

// BulkDiscount is a tiered pricing rule: order lines of at least MinQty
// units get DiscountPercent (a fraction in [0,1)) off the list unit price.
type BulkDiscount struct {
	MinQty          int     `json:"min_qty"`
	DiscountPercent float64 `json:"discount_percent"`
}

// Product represents a catalog entry sourced through the hub.
// Stock never goes below zero; tiers are not required to be pre-sorted.
type Product struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Manufacturer     string         `json:"manufacturer"`
	PricePerUnit     float64        `json:"price_per_unit"`
	MinOrderQuantity int            `json:"min_order_quantity"`
	StockLevel       int            `json:"stock_level"`
	Category         string         `json:"category"`
	Image            string         `json:"image"`
	Packaging        string         `json:"packaging,omitempty"`
	BulkDiscounts    []BulkDiscount `json:"bulk_discounts,omitempty"`
}
