// Package entity defines the domain entities for the store feature.
package entity

// Checkout pricing rules. The donation rate routes a fixed share of every
// order to the International Student Grant; shipping is a flat fee charged
// whenever checkout is reached, regardless of cart size.
const (
	DonationRate = 0.15
	FlatShipping = 5.00
)

// Product is the snapshot of a catalog product taken when an item enters the
// cart. Prices are frozen at add time; later catalog edits do not reprice
// carts or orders.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
}

// CartItem pairs a product snapshot with a quantity.
// Quantity is always >= 1 while the item is present; an item whose quantity
// would drop to 0 is removed from the cart entirely.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the ordered collection of items for one user, keyed by product ID
// (unique within the cart).
type Cart struct {
	UserID uint       `json:"userId"`
	Items  []CartItem `json:"items"`
}

// Totals holds the derived checkout amounts. All values are computed at full
// precision; rounding to two decimals is a presentation concern only.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Donation float64 `json:"donation"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Add puts one unit of the product into the cart: an existing item's quantity
// is incremented by 1, otherwise a new item with quantity 1 is appended.
// There is no upper bound on quantity.
func (c *Cart) Add(p Product) {
	for i := range c.Items {
		if c.Items[i].Product.ID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{Product: p, Quantity: 1})
}

// ApplyDelta adjusts an item's quantity by delta (which may be negative).
// The new quantity is clamped at 0, and an item reaching 0 is removed.
// Calling with delta = -quantity is the defined way to remove an item.
// Unknown product IDs are a no-op.
func (c *Cart) ApplyDelta(productID string, delta int) {
	for i := range c.Items {
		if c.Items[i].Product.ID != productID {
			continue
		}
		qty := c.Items[i].Quantity + delta
		if qty <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
		c.Items[i].Quantity = qty
		return
	}
}

// ItemCount returns the total number of units across all items.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Totals derives the checkout amounts from the current items. Shipping is
// charged even for an empty cart, matching the store's checkout rule.
func (c *Cart) Totals() Totals {
	subtotal := 0.0
	for _, item := range c.Items {
		subtotal += item.Product.Price * float64(item.Quantity)
	}
	donation := subtotal * DonationRate
	shipping := FlatShipping
	return Totals{
		Subtotal: subtotal,
		Donation: donation,
		Shipping: shipping,
		Total:    subtotal + donation + shipping,
	}
}
