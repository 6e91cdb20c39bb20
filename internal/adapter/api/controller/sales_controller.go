package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-varejo/internal/domain/sale"
	"github.com/hugohenrick/pdv-varejo/pkg/logger"
)

// SalesController gerencia a consulta às vendas registradas
type SalesController struct {
	salesSvc sale.Service
	logger   logger.Logger
}

// NewSalesController cria uma nova instância de SalesController
func NewSalesController(salesSvc sale.Service, logger logger.Logger) *SalesController {
	return &SalesController{
		salesSvc: salesSvc,
		logger:   logger,
	}
}

// List retorna as vendas registradas no backend
// @Summary Listar vendas
// @Tags sales
// @Produce json
// @Success 200 {array} sale.Record
// @Failure 502 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SalesController) List(ctx *gin.Context) {
	records, err := c.salesSvc.ListSales(ctx.Request.Context())
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao listar vendas", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, records)
}
