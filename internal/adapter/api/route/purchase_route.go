package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/controller"
)

// RegisterPurchaseRoutes registra as rotas de notas de compra
func RegisterPurchaseRoutes(r *gin.RouterGroup, purchaseController *controller.PurchaseController) {
	purchases := r.Group("/purchases")
	{
		purchases.GET("", purchaseController.List)
		purchases.GET("/:id", purchaseController.Get)
		purchases.POST("", purchaseController.Create)
	}
}
