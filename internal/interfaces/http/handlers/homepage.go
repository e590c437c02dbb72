// internal/interfaces/http/handlers/homepage.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront/internal/provider"
)

// HomepageHandler handles the landing page content endpoint
type HomepageHandler struct {
	homepage provider.HomepageProvider
	logger   *logrus.Logger
}

// NewHomepageHandler creates a new homepage handler
func NewHomepageHandler(homepage provider.HomepageProvider, log *logrus.Logger) *HomepageHandler {
	return &HomepageHandler{
		homepage: homepage,
		logger:   log,
	}
}

// GetHomepage handles GET /api/homepage
func (h *HomepageHandler) GetHomepage(c *gin.Context) {
	content, err := h.homepage.Get(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, content)
}
