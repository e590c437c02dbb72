// internal/domain/catalog/entity.go
package catalog

// Category identifies one of the fixed storefront categories
type Category string

const (
	CategoryHandmades   Category = "handmades"
	CategorySecondHands Category = "secondHands"
	CategoryPaintings   Category = "paintings"
	CategoryDecoratives Category = "decoratives"
)

// Categories lists every valid category in display order
func Categories() []Category {
	return []Category{
		CategoryHandmades,
		CategorySecondHands,
		CategoryPaintings,
		CategoryDecoratives,
	}
}

// IsValid reports whether c is a member of the closed category set
func (c Category) IsValid() bool {
	switch c {
	case CategoryHandmades, CategorySecondHands, CategoryPaintings, CategoryDecoratives:
		return true
	}
	return false
}

// Product represents a single catalog product as served to detail pages
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"` // Price in cents
	Description string   `json:"description"`
	Details     []string `json:"details"`
	Images      []string `json:"images"`
	Category    Category `json:"category"`
	InStock     bool     `json:"in_stock"`
	SKU         string   `json:"sku"`
	Dimensions  string   `json:"dimensions,omitempty"` // LxWxH format
	Material    string   `json:"material,omitempty"`
	Origin      string   `json:"origin,omitempty"`
}

// ListItem is the projection of Product carrying only list-view fields
type ListItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Images   []string `json:"images"`
	Category Category `json:"category"`
}

// ToListItem projects a product down to its list-view fields
func (p *Product) ToListItem() ListItem {
	return ListItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Images:   p.Images,
		Category: p.Category,
	}
}

// GetFormattedPrice returns the price as a decimal amount
func (p *Product) GetFormattedPrice() float64 {
	return float64(p.Price) / 100
}

// PageRequest describes one page of the catalog listing
type PageRequest struct {
	Category *Category `form:"category" json:"category,omitempty"`
	Page     int       `form:"page" json:"page"`
	PageSize int       `form:"pageSize" json:"pageSize"`
}

// Page is the result of a paginated catalog query
type Page struct {
	Products []ListItem `json:"products"`
	Total    int        `json:"total"`
}

// HomepageContent is the hero and featured-grid data for the landing page
type HomepageContent struct {
	HeroVideo    string     `json:"hero_video"`
	HeroPoster   string     `json:"hero_poster"`
	FeaturedGrid []ListItem `json:"featured_grid"`
}
