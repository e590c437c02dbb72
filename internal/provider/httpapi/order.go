// internal/provider/httpapi/order.go
package httpapi

import (
	"context"
	"net/url"

	"github.com/your-org/storefront/internal/domain/order"
)

// OrderProvider submits and tracks orders through the upstream API
type OrderProvider struct {
	client *Client
}

// NewOrderProvider creates a network-backed order provider
func NewOrderProvider(client *Client) *OrderProvider {
	return &OrderProvider{client: client}
}

// Create handles POST /api/orders
func (p *OrderProvider) Create(ctx context.Context, o *order.Order) (*order.CreateResult, error) {
	var result order.CreateResult
	if err := p.client.post(ctx, "/api/orders", o, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetStatus handles GET /api/orders/status?orderId&email
func (p *OrderProvider) GetStatus(ctx context.Context, orderID, email string) (*order.StatusDetail, error) {
	query := url.Values{
		"orderId": {orderID},
		"email":   {email},
	}

	var detail order.StatusDetail
	if err := p.client.get(ctx, "/api/orders/status", query, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}
