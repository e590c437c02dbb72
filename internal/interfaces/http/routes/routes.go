// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/provider"
)

// SetupRoutes wires every /api route to its handler
func SetupRoutes(rg *gin.RouterGroup, providers provider.Set, store *cart.Store, cfg *config.Config, log *logrus.Logger) {
	productHandler := handlers.NewProductHandler(providers.Products, log)
	orderHandler := handlers.NewOrderHandler(providers.Orders, store, log)
	cartHandler := handlers.NewCartHandler(store, log)
	homepageHandler := handlers.NewHomepageHandler(providers.Homepage, log)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/related", productHandler.GetRelated)
		products.GET("/category/:category", productHandler.GetByCategory)
		products.GET("/:id", productHandler.GetProduct)
	}

	sessionTTL := int(cfg.Cart.SessionTTL.Seconds())

	orders := rg.Group("/orders")
	orders.Use(middleware.Session(sessionTTL))
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/status", orderHandler.GetStatus)
	}

	cartGroup := rg.Group("/cart")
	cartGroup.Use(middleware.Session(sessionTTL))
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:id", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
	}

	rg.GET("/homepage", homepageHandler.GetHomepage)
}
