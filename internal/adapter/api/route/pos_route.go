package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/controller"
)

// RegisterPosRoutes registra as rotas do terminal de venda
func RegisterPosRoutes(r *gin.RouterGroup, posController *controller.PosController) {
	pos := r.Group("/pos")
	{
		pos.GET("/section", posController.GetSection)
		pos.PUT("/section", posController.SetSection)

		pos.GET("/carts", posController.ListTabs)
		pos.POST("/carts", posController.CreateTab)
		pos.PUT("/carts/:id/activate", posController.ActivateTab)
		pos.DELETE("/carts/:id", posController.CloseTab)

		pos.GET("/cart", posController.GetCart)
		pos.PUT("/cart", posController.UpdateCart)
		pos.POST("/cart/items", posController.AddItem)
		pos.PUT("/cart/items/:index", posController.UpdateItem)
		pos.DELETE("/cart/items/:index", posController.RemoveItem)
		pos.POST("/cart/checkout", posController.Checkout)
	}
}
