// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// Item represents one cart line. Uniqueness key is ID.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"` // Price in cents
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// NewItem is an Item without a quantity, as sent by add-to-cart calls.
// The store assigns quantity 1 or increments an existing line.
type NewItem struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"required"`
	Image string `json:"image"`
}

// State is the serializable cart shape persisted as a single JSON blob.
// Item order is insertion order, preserved for display.
type State struct {
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Totals represents calculated cart totals. Derived values are
// computed on demand and never stored.
type Totals struct {
	ItemCount     int   `json:"item_count"`     // Number of unique items
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	Subtotal      int64 `json:"subtotal"`
	Tax           int64 `json:"tax"`
	Total         int64 `json:"total"`
}

// Clone returns a deep copy so callers cannot mutate store state
func (s *State) Clone() State {
	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	return State{Items: items, UpdatedAt: s.UpdatedAt}
}

// Totals computes the derived amounts for the current items
func (s *State) Totals(taxRate float64) Totals {
	var totals Totals

	totals.ItemCount = len(s.Items)
	for _, item := range s.Items {
		totals.TotalQuantity += item.Quantity
		totals.Subtotal += item.Price * int64(item.Quantity)
	}

	totals.Tax = int64(float64(totals.Subtotal) * taxRate)
	totals.Total = totals.Subtotal + totals.Tax

	return totals
}
