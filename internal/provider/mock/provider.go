// internal/provider/mock/provider.go
package mock

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/provider"
)

const relatedLimit = 4

// New builds the fixture-backed provider set. Every call resolves
// after the configured artificial delay to simulate network latency.
func New(delay time.Duration) provider.Set {
	products := buildCatalog()
	return provider.Set{
		Products: &ProductProvider{delay: delay, products: products},
		Orders:   &OrderProvider{delay: delay, orders: make(map[string]*order.Order)},
		Homepage: &HomepageProvider{delay: delay, products: products},
	}
}

// sleep waits out the artificial latency, honoring cancellation
func sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// ProductProvider serves the generated fixture catalog
type ProductProvider struct {
	delay    time.Duration
	products []catalog.Product
}

// GetByID returns the fixture product, or a renderable placeholder
// for an unknown id. It never errors on lookup.
func (p *ProductProvider) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	if err := sleep(ctx, p.delay); err != nil {
		return nil, err
	}

	for i := range p.products {
		if p.products[i].ID == id {
			product := p.products[i]
			return &product, nil
		}
	}
	return placeholderProduct(id), nil
}

// GetRelated returns up to 4 items from the category, excluding the
// given id
func (p *ProductProvider) GetRelated(ctx context.Context, category catalog.Category, excludeID string) ([]catalog.ListItem, error) {
	if err := sleep(ctx, p.delay); err != nil {
		return nil, err
	}

	items := []catalog.ListItem{}
	for i := range p.products {
		if p.products[i].Category != category || p.products[i].ID == excludeID {
			continue
		}
		items = append(items, p.products[i].ToListItem())
		if len(items) == relatedLimit {
			break
		}
	}
	return items, nil
}

// GetByCategory returns every fixture product of a category
func (p *ProductProvider) GetByCategory(ctx context.Context, category catalog.Category) ([]catalog.ListItem, error) {
	if err := sleep(ctx, p.delay); err != nil {
		return nil, err
	}

	items := []catalog.ListItem{}
	for i := range p.products {
		if p.products[i].Category == category {
			items = append(items, p.products[i].ToListItem())
		}
	}
	return items, nil
}

// GetPaginated returns one page of the catalog
func (p *ProductProvider) GetPaginated(ctx context.Context, req catalog.PageRequest) (*catalog.Page, error) {
	if err := sleep(ctx, p.delay); err != nil {
		return nil, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 12
	}

	filtered := []catalog.ListItem{}
	for i := range p.products {
		if req.Category != nil && p.products[i].Category != *req.Category {
			continue
		}
		filtered = append(filtered, p.products[i].ToListItem())
	}

	start := (page - 1) * pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return &catalog.Page{
		Products: filtered[start:end],
		Total:    len(filtered),
	}, nil
}

// OrderProvider keeps created orders in memory so status lookups can
// replay them
type OrderProvider struct {
	delay  time.Duration
	mu     sync.Mutex
	orders map[string]*order.Order
}

// Create assigns an id, stamps the initial timeline event and
// remembers the order
func (p *OrderProvider) Create(ctx context.Context, o *order.Order) (*order.CreateResult, error) {
	if err := sleep(ctx, p.delay); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stored := *o
	stored.ID = fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), strings.ToUpper(uuid.NewString()[:8]))
	stored.CreatedAt = now
	stored.Timeline = nil
	stored.AppendEvent(order.StatusProcessing, now, "Order received and is being prepared")

	p.mu.Lock()
	p.orders[stored.ID] = &stored
	p.mu.Unlock()

	return &order.CreateResult{OrderID: stored.ID}, nil
}

// GetStatus returns the stored order's detail when the email matches,
// or a deterministic fabricated detail for ids created outside this
// process, so the tracking page is always demoable
func (p *OrderProvider) GetStatus(ctx context.Context, orderID, email string) (*order.StatusDetail, error) {
	if err := sleep(ctx, p.delay); err != nil {
		return nil, err
	}

	p.mu.Lock()
	stored, ok := p.orders[orderID]
	p.mu.Unlock()

	if ok && strings.EqualFold(stored.Customer.Email, email) {
		return &order.StatusDetail{
			OrderID:         stored.ID,
			Email:           stored.Customer.Email,
			Status:          stored.Status,
			Items:           stored.Items,
			Totals:          stored.Totals,
			ShippingAddress: stored.ShippingAddress,
			Timeline:        stored.Timeline,
			PlacedAt:        stored.CreatedAt,
		}, nil
	}

	return fabricateStatusDetail(orderID, email), nil
}

// fabricateStatusDetail builds a plausible tracking result seeded by
// the order id, with an append-only timeline up to the derived stage
func fabricateStatusDetail(orderID, email string) *order.StatusDetail {
	h := fnv.New32a()
	h.Write([]byte(orderID))
	seed := h.Sum32()

	stages := []struct {
		status      order.Status
		description string
	}{
		{order.StatusProcessing, "Order received and is being prepared"},
		{order.StatusShipped, "Package handed to the carrier"},
		{order.StatusDelivered, "Delivered to the shipping address"},
	}
	stage := int(seed % 3)

	placed := time.Now().UTC().AddDate(0, 0, -int(seed%14)-3)
	timeline := make([]order.StatusEvent, 0, stage+1)
	for i := 0; i <= stage; i++ {
		timeline = append(timeline, order.StatusEvent{
			Status:      stages[i].status,
			Date:        placed.AddDate(0, 0, i*2),
			Description: stages[i].description,
		})
	}

	item := placeholderProduct(fmt.Sprintf("dc-%02d", seed%8+1))
	subtotal := item.Price
	return &order.StatusDetail{
		OrderID: orderID,
		Email:   email,
		Status:  stages[stage].status,
		Items: []order.Item{{
			ProductID:  item.ID,
			Name:       item.Name,
			Image:      item.Images[0],
			Quantity:   1,
			Price:      item.Price,
			TotalPrice: item.Price,
		}},
		Totals: order.Totals{
			Subtotal: subtotal,
			Tax:      subtotal / 10,
			Shipping: 1500,
			Total:    subtotal + subtotal/10 + 1500,
		},
		ShippingAddress: order.Address{
			AddressLine1: "12 Gallery Lane",
			City:         "Portland",
			State:        "OR",
			PostalCode:   "97209",
			Country:      "US",
		},
		Timeline: timeline,
		PlacedAt: placed,
	}
}

// HomepageProvider serves fixture landing page content
type HomepageProvider struct {
	delay    time.Duration
	products []catalog.Product
}

// Get returns the hero media and a featured grid of two items per
// category
func (p *HomepageProvider) Get(ctx context.Context) (*catalog.HomepageContent, error) {
	if err := sleep(ctx, p.delay); err != nil {
		return nil, err
	}

	grid := []catalog.ListItem{}
	perCategory := make(map[catalog.Category]int)
	for i := range p.products {
		category := p.products[i].Category
		if perCategory[category] >= 2 {
			continue
		}
		perCategory[category]++
		grid = append(grid, p.products[i].ToListItem())
	}

	return &catalog.HomepageContent{
		HeroVideo:    "/media/hero.mp4",
		HeroPoster:   "/media/hero-poster.jpg",
		FeaturedGrid: grid,
	}, nil
}
