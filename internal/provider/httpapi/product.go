// internal/provider/httpapi/product.go
package httpapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/your-org/storefront/internal/domain/catalog"
)

// ProductProvider fetches catalog data from the upstream API
type ProductProvider struct {
	client *Client
}

// NewProductProvider creates a network-backed product provider
func NewProductProvider(client *Client) *ProductProvider {
	return &ProductProvider{client: client}
}

// GetByID handles GET /api/products/:id
func (p *ProductProvider) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	var product catalog.Product
	if err := p.client.get(ctx, "/api/products/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetRelated handles GET /api/products/related?category&excludeId
func (p *ProductProvider) GetRelated(ctx context.Context, category catalog.Category, excludeID string) ([]catalog.ListItem, error) {
	query := url.Values{
		"category":  {string(category)},
		"excludeId": {excludeID},
	}

	var items []catalog.ListItem
	if err := p.client.get(ctx, "/api/products/related", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByCategory handles GET /api/products/category/:category
func (p *ProductProvider) GetByCategory(ctx context.Context, category catalog.Category) ([]catalog.ListItem, error) {
	var items []catalog.ListItem
	if err := p.client.get(ctx, "/api/products/category/"+url.PathEscape(string(category)), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetPaginated handles GET /api/products?category&page&pageSize
func (p *ProductProvider) GetPaginated(ctx context.Context, req catalog.PageRequest) (*catalog.Page, error) {
	query := url.Values{
		"page":     {strconv.Itoa(req.Page)},
		"pageSize": {strconv.Itoa(req.PageSize)},
	}
	if req.Category != nil {
		query.Set("category", string(*req.Category))
	}

	var page catalog.Page
	if err := p.client.get(ctx, "/api/products", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
