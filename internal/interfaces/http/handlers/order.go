// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/order"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/pkg/apierrors"
	"github.com/your-org/storefront/internal/provider"
)

// OrderHandler handles checkout and order tracking endpoints
type OrderHandler struct {
	orders provider.OrderProvider
	store  *cart.Store
	logger *logrus.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders provider.OrderProvider, store *cart.Store, log *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		store:  store,
		logger: log,
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var o order.Order
	if err := c.ShouldBindJSON(&o); err != nil {
		c.JSON(http.StatusBadRequest, apierrors.ErrorPayload{
			Message: "Invalid order",
			Fields:  map[string]string{"body": err.Error()},
		})
		return
	}

	// Totals are always derived server-side, never trusted from the
	// request
	o.ComputeTotals(taxRate, shippingFlat)

	result, err := h.orders.Create(c.Request.Context(), &o)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	// Checkout succeeded; the session's cart is spent
	sessionID := middleware.SessionID(c)
	if err := h.store.Clear(c.Request.Context(), sessionID); err != nil {
		h.logger.WithError(err).WithField("session_id", sessionID).Warn("failed to clear cart after checkout")
	}

	c.JSON(http.StatusCreated, result)
}

// GetStatus handles GET /api/orders/status
func (h *OrderHandler) GetStatus(c *gin.Context) {
	orderID := c.Query("orderId")
	email := c.Query("email")
	if orderID == "" || email == "" {
		c.JSON(http.StatusBadRequest, apierrors.ErrorPayload{
			Message: "Order id and email are required",
			Fields: map[string]string{
				"orderId": "required",
				"email":   "required",
			},
		})
		return
	}

	detail, err := h.orders.GetStatus(c.Request.Context(), orderID, email)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
