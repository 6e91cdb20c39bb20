package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-varejo/internal/domain/pricing"
	"github.com/hugohenrick/pdv-varejo/pkg/logger"
)

// PriceController gerencia a tabela de preços por seção
type PriceController struct {
	priceSvc pricing.Service
	logger   logger.Logger
}

// NewPriceController cria uma nova instância de PriceController
func NewPriceController(priceSvc pricing.Service, logger logger.Logger) *PriceController {
	return &PriceController{
		priceSvc: priceSvc,
		logger:   logger,
	}
}

// List retorna a tabela de preços da seção
// @Summary Listar preços da seção
// @Tags prices
// @Produce json
// @Param section_id query int true "Seção de vendas"
// @Success 200 {array} pricing.Entry
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /prices [get]
func (c *PriceController) List(ctx *gin.Context) {
	sectionID, err := strconv.Atoi(ctx.Query("section_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "section_id inválido", err.Error()))
		return
	}

	entries, err := c.priceSvc.ListPrices(ctx.Request.Context(), sectionID)
	if err != nil {
		c.logger.Error("erro ao listar preços", "error", err, "section_id", sectionID)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao listar preços", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, entries)
}

// BulkSet grava preços para uma ou mais seções
// @Summary Gravar preços em lote
// @Tags prices
// @Accept json
// @Produce json
// @Param request body dto.BulkSetPricesRequest true "Seções e preços"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /prices/bulk-set [post]
func (c *PriceController) BulkSet(ctx *gin.Context) {
	var req dto.BulkSetPricesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.priceSvc.BulkSetPrices(ctx.Request.Context(), req.Sections, req.Items); err != nil {
		c.logger.Error("erro ao gravar preços", "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao gravar preços", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("preços gravados", nil))
}
