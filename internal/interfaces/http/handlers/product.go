// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/pkg/apierrors"
	"github.com/your-org/storefront/internal/provider"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	products provider.ProductProvider
	logger   *logrus.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(products provider.ProductProvider, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		logger:   log,
	}
}

// GetProducts handles GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	var req catalog.PageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.ErrorPayload{
			Message: "Invalid query parameters",
			Fields:  map[string]string{"query": err.Error()},
		})
		return
	}

	if req.Category != nil && !req.Category.IsValid() {
		c.JSON(http.StatusBadRequest, apierrors.ErrorPayload{
			Message: "Unknown category",
			Fields:  map[string]string{"category": string(*req.Category)},
		})
		return
	}

	// Set default values
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 || req.PageSize > 100 {
		req.PageSize = 12
	}

	page, err := h.products.GetPaginated(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetProduct handles GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, apierrors.ErrorPayload{Message: "Product id is required"})
		return
	}

	product, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetRelated handles GET /api/products/related
func (h *ProductHandler) GetRelated(c *gin.Context) {
	category := catalog.Category(c.Query("category"))
	if !category.IsValid() {
		c.JSON(http.StatusBadRequest, apierrors.ErrorPayload{
			Message: "Unknown category",
			Fields:  map[string]string{"category": c.Query("category")},
		})
		return
	}

	items, err := h.products.GetRelated(c.Request.Context(), category, c.Query("excludeId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetByCategory handles GET /api/products/category/:category
func (h *ProductHandler) GetByCategory(c *gin.Context) {
	category := catalog.Category(c.Param("category"))
	if !category.IsValid() {
		c.JSON(http.StatusNotFound, apierrors.ErrorPayload{
			Message:  "Category not found",
			Resource: "Category",
		})
		return
	}

	items, err := h.products.GetByCategory(c.Request.Context(), category)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
