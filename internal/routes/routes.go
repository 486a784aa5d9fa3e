package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pedrorafaeloficial/mestredoatacado/internal/handlers"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/handlers/admin"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/handlers/product"
	"github.com/pedrorafaeloficial/mestredoatacado/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/health", handlers.Health)

	// Vitrine (leitura pública)
	api.GET("/products", product.GetAllProducts)
	api.GET("/products/featured", product.GetFeaturedProducts)
	api.GET("/products/:id", product.GetProductByID)
	api.GET("/categories", product.GetAllCategories)
	api.GET("/sku-prefixes", product.GetAllSkuPrefixes)

	// Checkout
	api.POST("/checkout/qr", handlers.CheckoutQR)

	// Leads da landing page
	api.POST("/leads", handlers.CreateLead)

	// Painel admin
	api.POST("/admin/login", admin.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired())
	{
		protected.POST("/products", product.CreateProduct)
		protected.PUT("/products/:id", product.UpdateProduct)
		protected.DELETE("/products/:id", product.DeleteProduct)

		protected.POST("/categories", product.CreateCategory)
		protected.PUT("/categories/:id", product.UpdateCategory)
		protected.DELETE("/categories/:id", product.DeleteCategory)

		protected.POST("/sku-prefixes", product.CreateSkuPrefix)
		protected.PUT("/sku-prefixes/:id", product.UpdateSkuPrefix)
		protected.DELETE("/sku-prefixes/:id", product.DeleteSkuPrefix)
	}
}
