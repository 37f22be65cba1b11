package router

import (
	"storefront/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupProductRouter(e *echo.Echo) {
	productHandler := handler.GetProductHandler()

	products := e.Group("/api/products")
	products.POST("", productHandler.CreateProduct)
	products.GET("", productHandler.ListProducts)
	// static /search takes priority over /:id
	products.GET("/search", productHandler.SearchProducts)
	products.GET("/:id", productHandler.GetProduct)
	products.PUT("/:id", productHandler.UpdateProduct)
	products.DELETE("/:id", productHandler.DeleteProduct)

	e.POST("/api/new-products", productHandler.CreateNewProduct)
}
