// internal/provider/httpapi/homepage.go
package httpapi

import (
	"context"

	"github.com/your-org/storefront/internal/domain/catalog"
)

// HomepageProvider fetches landing page content from the upstream API
type HomepageProvider struct {
	client *Client
}

// NewHomepageProvider creates a network-backed homepage provider
func NewHomepageProvider(client *Client) *HomepageProvider {
	return &HomepageProvider{client: client}
}

// Get handles GET /api/homepage
func (p *HomepageProvider) Get(ctx context.Context) (*catalog.HomepageContent, error) {
	var content catalog.HomepageContent
	if err := p.client.get(ctx, "/api/homepage", nil, &content); err != nil {
		return nil, err
	}
	return &content, nil
}
