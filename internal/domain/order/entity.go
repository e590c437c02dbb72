// internal/domain/order/entity.go
package order

import (
	"time"
)

// Status represents the order status
type Status string

const (
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCanceled   Status = "canceled"
	StatusReturned   Status = "returned"
)

// IsValid reports whether s is a known order status
func (s Status) IsValid() bool {
	switch s {
	case StatusProcessing, StatusShipped, StatusDelivered, StatusCanceled, StatusReturned:
		return true
	}
	return false
}

// Customer holds the buyer's contact details
type Customer struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
}

// Address represents the shipping address
type Address struct {
	AddressLine1 string `json:"address_line1" binding:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code" binding:"required"`
	Country      string `json:"country" binding:"required"`
}

// Item represents one line item of an order
type Item struct {
	ProductID  string `json:"product_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Image      string `json:"image"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	Price      int64  `json:"price" binding:"required"` // Price per unit in cents
	TotalPrice int64  `json:"total_price"`              // Quantity * Price
}

// Totals holds the computed order amounts
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Shipping int64 `json:"shipping"`
	Total    int64 `json:"total"`
}

// Order represents a customer order submitted at checkout
type Order struct {
	ID              string        `json:"id,omitempty"`
	Customer        Customer      `json:"customer" binding:"required"`
	ShippingAddress Address       `json:"shipping_address" binding:"required"`
	Items           []Item        `json:"items" binding:"required,min=1,dive"`
	PaymentMethod   string        `json:"payment_method" binding:"required"`
	Totals          Totals        `json:"totals"`
	Status          Status        `json:"status,omitempty"`
	Timeline        []StatusEvent `json:"timeline,omitempty"`
	CreatedAt       time.Time     `json:"created_at,omitempty"`
}

// StatusEvent is one entry of an order's append-only status timeline
type StatusEvent struct {
	Status      Status    `json:"status"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// StatusDetail is the read-projection returned by tracking lookups,
// keyed by order id + email
type StatusDetail struct {
	OrderID         string        `json:"order_id"`
	Email           string        `json:"email"`
	Status          Status        `json:"status"`
	Items           []Item        `json:"items"`
	Totals          Totals        `json:"totals"`
	ShippingAddress Address       `json:"shipping_address"`
	Timeline        []StatusEvent `json:"timeline"`
	PlacedAt        time.Time     `json:"placed_at"`
}

// CreateResult is the response of a successful order submission
type CreateResult struct {
	OrderID string `json:"order_id"`
}

// ComputeTotals derives the order amounts from its line items. Derived
// values are never trusted from the request body.
func (o *Order) ComputeTotals(taxRate float64, shipping int64) {
	var subtotal int64
	for i := range o.Items {
		o.Items[i].TotalPrice = o.Items[i].Price * int64(o.Items[i].Quantity)
		subtotal += o.Items[i].TotalPrice
	}

	tax := int64(float64(subtotal) * taxRate)
	o.Totals = Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}

// AppendEvent adds a status change to the timeline and updates the
// current status. The timeline is append-only.
func (o *Order) AppendEvent(status Status, at time.Time, description string) {
	o.Status = status
	o.Timeline = append(o.Timeline, StatusEvent{
		Status:      status,
		Date:        at,
		Description: description,
	})
}
