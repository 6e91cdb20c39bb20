package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/controller"
)

// RegisterProductRoutes registra as rotas do catálogo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController) {
	r.GET("/products", productController.List)
	r.GET("/categories", productController.ListCategories)
	r.GET("/locations", productController.ListLocations)
}
