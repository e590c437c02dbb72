// internal/provider/provider.go
package provider

import (
	"context"

	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/order"
)

// ProductProvider is the read contract for catalog data
type ProductProvider interface {
	// GetByID fetches one product by id
	GetByID(ctx context.Context, id string) (*catalog.Product, error)

	// GetRelated returns up to 4 products from the category,
	// never including excludeID
	GetRelated(ctx context.Context, category catalog.Category, excludeID string) ([]catalog.ListItem, error)

	// GetByCategory returns every product of a category
	GetByCategory(ctx context.Context, category catalog.Category) ([]catalog.ListItem, error)

	// GetPaginated returns one page of the catalog, optionally
	// filtered by category
	GetPaginated(ctx context.Context, req catalog.PageRequest) (*catalog.Page, error)
}

// OrderProvider is the contract for order submission and tracking
type OrderProvider interface {
	// Create submits a new order and returns its id
	Create(ctx context.Context, o *order.Order) (*order.CreateResult, error)

	// GetStatus looks up an order's status detail by id and the
	// email it was placed under
	GetStatus(ctx context.Context, orderID, email string) (*order.StatusDetail, error)
}

// HomepageProvider serves the landing page content
type HomepageProvider interface {
	Get(ctx context.Context) (*catalog.HomepageContent, error)
}

// Set bundles the three providers. It is built once at startup from
// the configured mode and injected into the HTTP layer; there is no
// per-call override and no fallback between implementations.
type Set struct {
	Products ProductProvider
	Orders   OrderProvider
	Homepage HomepageProvider
}
