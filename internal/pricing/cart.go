package pricing

import "rebel-hub/internal/domain"

// Cart holds the prospective order lines of one session. It is not
// safe for concurrent use; callers serialize access per session.
type Cart struct {
	items []domain.CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts qty units of p in the cart. Adding a product already present
// merges into the existing line: quantities sum and the unit price is
// recomputed at the combined quantity's tier, so add(q1)+add(q2) and
// add(q1+q2) land on the same line. The combined quantity may not exceed
// the product's current stock.
func (c *Cart) Add(p domain.Product, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	newQty := qty
	idx := -1
	for i, item := range c.items {
		if item.ProductID == p.ID {
			newQty += item.Quantity
			idx = i
			break
		}
	}
	if newQty > p.StockLevel {
		return ErrInsufficientStock
	}

	price := UnitPrice(p, newQty)
	if idx >= 0 {
		c.items[idx].Quantity = newQty
		c.items[idx].Price = price
		return nil
	}
	c.items = append(c.items, domain.CartItem{
		ProductID:     p.ID,
		ProductName:   p.Name,
		Quantity:      qty,
		Price:         price,
		OriginalPrice: p.PricePerUnit,
		Image:         p.Image,
	})
	return nil
}

// Remove drops the line for productID, reporting whether it was present.
func (c *Cart) Remove(productID string) bool {
	for i, item := range c.items {
		if item.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Subtotal is the sum of resolved unit price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ListTotal is the sum of list unit price times quantity over all lines.
func (c *Cart) ListTotal() float64 {
	var total float64
	for _, item := range c.items {
		total += item.OriginalPrice * float64(item.Quantity)
	}
	return total
}

// BulkSavings is the amount tier discounts shaved off the list value.
func (c *Cart) BulkSavings() float64 {
	return c.ListTotal() - c.Subtotal()
}
