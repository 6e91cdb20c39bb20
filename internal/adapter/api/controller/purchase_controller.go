package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-varejo/internal/domain/purchase"
	"github.com/hugohenrick/pdv-varejo/pkg/logger"
)

// PurchaseController gerencia o registro de notas de compra
type PurchaseController struct {
	purchaseSvc purchase.Service
	logger      logger.Logger
}

// NewPurchaseController cria uma nova instância de PurchaseController
func NewPurchaseController(purchaseSvc purchase.Service, logger logger.Logger) *PurchaseController {
	return &PurchaseController{
		purchaseSvc: purchaseSvc,
		logger:      logger,
	}
}

// List retorna as notas de compra registradas
// @Summary Listar compras
// @Tags purchases
// @Produce json
// @Success 200 {array} purchase.Purchase
// @Failure 502 {object} dto.ErrorResponse
// @Router /purchases [get]
func (c *PurchaseController) List(ctx *gin.Context) {
	purchases, err := c.purchaseSvc.ListPurchases(ctx.Request.Context())
	if err != nil {
		c.logger.Error("erro ao listar compras", "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao listar compras", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, purchases)
}

// Get retorna uma nota de compra pelo ID
// @Summary Buscar compra
// @Tags purchases
// @Produce json
// @Param id path int true "ID da compra"
// @Success 200 {object} purchase.Purchase
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /purchases/{id} [get]
func (c *PurchaseController) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	p, err := c.purchaseSvc.GetPurchase(ctx.Request.Context(), id)
	if err != nil {
		c.logger.Error("erro ao buscar compra", "error", err, "id", id)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao buscar compra", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, p)
}

// Create registra uma nova nota de compra
// @Summary Registrar compra
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body dto.PurchaseRequest true "Dados da compra"
// @Success 201 {object} purchase.Purchase
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /purchases [post]
func (c *PurchaseController) Create(ctx *gin.Context) {
	var req dto.PurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p := req.ToPurchase()
	if err := p.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao validar compra", err.Error()))
		return
	}

	created, err := c.purchaseSvc.CreatePurchase(ctx.Request.Context(), p)
	if err != nil {
		c.logger.Error("erro ao registrar compra", "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao registrar compra", err.Error()))
		return
	}
	ctx.JSON(http.StatusCreated, created)
}
