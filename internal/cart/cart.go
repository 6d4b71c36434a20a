package cart

import "github.com/SahakyanGor98/iqos/internal/domain"

// Item is one cart line. Product is a snapshot captured at add time, not a
// live catalog link: later price or title changes do not affect the cart.
type Item struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Cart is an ordered collection of items with at most one item per product
// id. The zero value is an empty, usable cart.
type Cart struct {
	items []Item
}

// Add merges by product id: an existing line gets its quantity incremented,
// otherwise a new line is appended. Quantities below 1 count as 1. There is
// no upper bound.
func (c *Cart) Add(p domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, Item{Product: p, Quantity: quantity})
}

// Remove drops the line for productID. Removing an absent id is a no-op.
func (c *Cart) Remove(productID int64) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity of an existing line, clamped to a minimum
// of 1. It never removes a line; callers remove explicitly.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the current lines in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// TotalPrice sums price*quantity over all lines, recomputed on every call.
func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Product.Price * int64(item.Quantity)
	}
	return total
}

// TotalItems sums the quantities over all lines.
func (c *Cart) TotalItems() int {
	var total int
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Len reports the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.items)
}
