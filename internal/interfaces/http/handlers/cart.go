// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/pkg/apierrors"
)

// CartHandler handles cart endpoints for the session's cart
type CartHandler struct {
	store  *cart.Store
	logger *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(store *cart.Store, log *logrus.Logger) *CartHandler {
	return &CartHandler{
		store:  store,
		logger: log,
	}
}

// UpdateItemRequest is the body of a quantity update
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// CartResponse is a cart with its computed totals
type CartResponse struct {
	Items  []cart.Item `json:"items"`
	Totals cart.Totals `json:"totals"`
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	if err := h.store.Hydrate(c.Request.Context(), sessionID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.respondCartState(c, h.store.Snapshot(sessionID))
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var item cart.NewItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.ErrorPayload{
			Message: "Invalid cart item",
			Fields:  map[string]string{"body": err.Error()},
		})
		return
	}

	state, err := h.store.AddItem(c.Request.Context(), middleware.SessionID(c), item)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.respondCartState(c, state)
}

// UpdateItem handles PUT /api/cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.ErrorPayload{
			Message: "Invalid quantity",
			Fields:  map[string]string{"body": err.Error()},
		})
		return
	}

	// The store applies whatever quantity it is given; the boundary
	// check lives here
	if req.Quantity < 1 {
		c.JSON(http.StatusBadRequest, apierrors.ErrorPayload{
			Message: "Quantity must be at least 1",
			Fields:  map[string]string{"quantity": "must be >= 1"},
		})
		return
	}

	state, err := h.store.UpdateQuantity(c.Request.Context(), middleware.SessionID(c), c.Param("id"), req.Quantity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.respondCartState(c, state)
}

// RemoveItem handles DELETE /api/cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	state, err := h.store.RemoveItem(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.respondCartState(c, state)
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	if err := h.store.Clear(c.Request.Context(), sessionID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.respondCartState(c, h.store.Snapshot(sessionID))
}

func (h *CartHandler) respondCartState(c *gin.Context, state cart.State) {
	c.JSON(http.StatusOK, CartResponse{
		Items:  state.Items,
		Totals: state.Totals(taxRate),
	})
}
