// internal/provider/mock/fixtures.go
package mock

import (
	"fmt"
	"hash/fnv"

	"github.com/your-org/storefront/internal/domain/catalog"
)

// fixture name pools per category. The generated catalog is fully
// deterministic: same ids, names and prices on every run.
var fixtureNames = map[catalog.Category][]string{
	catalog.CategoryHandmades: {
		"Hand-Carved Oak Stool",
		"Woven Rattan Bench",
		"Maple Serving Tray",
		"Cherry Wood Bookstand",
		"Hand-Turned Walnut Bowl",
		"Birch Plant Stand",
		"Carved Cedar Chest",
		"Ash Wood Coat Rack",
	},
	catalog.CategorySecondHands: {
		"Restored Victorian Armchair",
		"Vintage Teak Sideboard",
		"Mid-Century Coffee Table",
		"Antique Pine Wardrobe",
		"Retro Leather Ottoman",
		"Weathered Farmhouse Table",
		"Classic Rolltop Desk",
		"Aged Brass Bed Frame",
	},
	catalog.CategoryPaintings: {
		"Coastal Morning, Oil on Canvas",
		"Autumn Orchard, Watercolor",
		"Still Life with Pears",
		"Harbor at Dusk",
		"Wildflower Meadow",
		"Winter Birches",
		"The Old Mill",
		"Quiet Interior",
	},
	catalog.CategoryDecoratives: {
		"Ceramic Table Vase",
		"Brass Candle Holders",
		"Linen Throw Pillow Set",
		"Woven Wall Hanging",
		"Glass Terrarium Bowl",
		"Stoneware Pitcher",
		"Copper Picture Frame",
		"Dried Flower Wreath",
	},
}

var categoryPrefixes = map[catalog.Category]string{
	catalog.CategoryHandmades:   "hm",
	catalog.CategorySecondHands: "sh",
	catalog.CategoryPaintings:   "pt",
	catalog.CategoryDecoratives: "dc",
}

// seededPrice derives a stable pseudo-random price in cents from an id
func seededPrice(id string) int64 {
	h := fnv.New32a()
	h.Write([]byte(id))
	// 49.00 to 940.00 in whole-dollar steps
	return int64(4900 + (h.Sum32()%892)*100)
}

// buildCatalog generates the full fixture product set
func buildCatalog() []catalog.Product {
	var products []catalog.Product
	for _, category := range catalog.Categories() {
		prefix := categoryPrefixes[category]
		for i, name := range fixtureNames[category] {
			id := fmt.Sprintf("%s-%02d", prefix, i+1)
			products = append(products, catalog.Product{
				ID:          id,
				Name:        name,
				Price:       seededPrice(id),
				Description: fmt.Sprintf("%s, sourced for our boutique collection. Each piece is inspected and photographed in our studio.", name),
				Details: []string{
					"Ships within 5-7 business days",
					"Free returns within 30 days",
					"Certificate of provenance included",
				},
				Images: []string{
					fmt.Sprintf("/images/products/%s-front.jpg", id),
					fmt.Sprintf("/images/products/%s-detail.jpg", id),
				},
				Category:   category,
				InStock:    i%7 != 6, // one item per category is out of stock
				SKU:        fmt.Sprintf("SKU-%s-%02d", prefix, i+1),
				Dimensions: fmt.Sprintf("%dx%dx%d cm", 40+i*5, 30+i*3, 20+i*2),
				Material:   fixtureMaterial(category),
			})
		}
	}
	return products
}

func fixtureMaterial(category catalog.Category) string {
	switch category {
	case catalog.CategoryHandmades:
		return "Solid hardwood"
	case catalog.CategorySecondHands:
		return "Mixed, restored"
	case catalog.CategoryPaintings:
		return "Canvas and pigment"
	default:
		return "Ceramic, brass and textile"
	}
}

// placeholderProduct is returned for unknown ids so the UI always has
// something renderable; the mock never errors on lookup
func placeholderProduct(id string) *catalog.Product {
	return &catalog.Product{
		ID:          id,
		Name:        "Boutique Piece",
		Price:       9900,
		Description: "This piece is being photographed and catalogued. Full details are coming soon.",
		Details:     []string{"Ships within 5-7 business days"},
		Images:      []string{"/images/products/placeholder.jpg"},
		Category:    catalog.CategoryDecoratives,
		InStock:     true,
		SKU:         "SKU-PENDING",
	}
}
