package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/controller"
)

// RegisterSalesRoutes registra as rotas de vendas, seções e preços
func RegisterSalesRoutes(
	r *gin.RouterGroup,
	salesController *controller.SalesController,
	sectionController *controller.SectionController,
	priceController *controller.PriceController,
) {
	r.GET("/sales", salesController.List)

	r.GET("/channels", sectionController.ListChannels)
	r.POST("/channels", sectionController.CreateChannel)
	r.PUT("/channels/:id", sectionController.UpdateChannel)
	r.DELETE("/channels/:id", sectionController.DeleteChannel)

	r.GET("/sections", sectionController.ListSections)
	r.POST("/sections", sectionController.CreateSection)
	r.PUT("/sections/:id", sectionController.UpdateSection)
	r.DELETE("/sections/:id", sectionController.DeleteSection)

	r.GET("/prices", priceController.List)
	r.POST("/prices/bulk-set", priceController.BulkSet)
}
