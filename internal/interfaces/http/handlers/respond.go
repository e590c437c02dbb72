// internal/interfaces/http/handlers/respond.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront/internal/pkg/apierrors"
)

// Pricing applied when deriving cart and order totals server-side
const (
	taxRate      = 0.08
	shippingFlat = int64(1500) // flat shipping in cents
)

// respondError renders a provider or store error in the wire error
// shape, preserving typed errors end to end
func respondError(c *gin.Context, log *logrus.Logger, err error) {
	status := apierrors.HTTPStatus(err)
	if status >= 500 {
		log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	c.JSON(status, apierrors.Payload(err))
}
