package controller

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/checkout"
	"github.com/hugohenrick/pdv-varejo/internal/domain/catalog"
	"github.com/hugohenrick/pdv-varejo/internal/domain/pricing"
	"github.com/hugohenrick/pdv-varejo/internal/domain/sale"
	"github.com/hugohenrick/pdv-varejo/internal/domain/section"
	"github.com/hugohenrick/pdv-varejo/pkg/logger"
)

// PosController gerencia o estado do terminal de venda: seção ativa,
// abas de venda e checkout. Cada requisição corresponde a um evento da
// interface e é aplicada de forma síncrona sobre o Manager.
type PosController struct {
	manager     *sale.Manager
	catalogSvc  catalog.Service
	sectionSvc  section.Service
	priceSvc    pricing.Service
	checkoutSvc *checkout.Adapter
	logger      logger.Logger

	// fotografia do catálogo usada para resolver códigos escaneados;
	// recarregada na troca de seção
	cacheMu  sync.RWMutex
	products []catalog.Product
}

// NewPosController cria uma nova instância de PosController
func NewPosController(
	manager *sale.Manager,
	catalogSvc catalog.Service,
	sectionSvc section.Service,
	priceSvc pricing.Service,
	checkoutSvc *checkout.Adapter,
	logger logger.Logger,
) *PosController {
	return &PosController{
		manager:     manager,
		catalogSvc:  catalogSvc,
		sectionSvc:  sectionSvc,
		priceSvc:    priceSvc,
		checkoutSvc: checkoutSvc,
		logger:      logger,
	}
}

// GetSection retorna a seção de vendas ativa do terminal
// @Summary Seção ativa
// @Tags pos
// @Produce json
// @Success 200 {object} section.Section
// @Router /pos/section [get]
func (c *PosController) GetSection(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.manager.Section())
}

// SetSection define a seção ativa e recarrega a tabela de preços
// @Summary Selecionar seção de vendas
// @Tags pos
// @Accept json
// @Produce json
// @Param request body dto.SetSectionRequest true "Seção"
// @Success 200 {object} section.Section
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /pos/section [put]
func (c *PosController) SetSection(ctx *gin.Context) {
	var req dto.SetSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	sections, err := c.sectionSvc.ListSections(ctx.Request.Context(), nil)
	if err != nil {
		c.logger.Error("erro ao listar seções", "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao listar seções", err.Error()))
		return
	}

	var selected *section.Section
	for i := range sections {
		if sections[i].ID == req.SectionID {
			selected = &sections[i]
			break
		}
	}
	if selected == nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "seção não encontrada", ""))
		return
	}

	// falha ao carregar preços não impede a seleção: a tabela fica
	// vazia e cada produto entra como "sem preço cadastrado"
	table := pricing.Table{}
	entries, err := c.priceSvc.ListPrices(ctx.Request.Context(), selected.ID)
	if err != nil {
		c.logger.Warn("erro ao carregar tabela de preços da seção", "error", err, "section_id", selected.ID)
	} else {
		table = pricing.NewTable(entries)
	}

	c.manager.SetSection(selected, table)
	c.reloadProducts(ctx.Request.Context())

	ctx.JSON(http.StatusOK, selected)
}

// ListTabs retorna as abas de venda e a aba ativa
// @Summary Listar abas de venda
// @Tags pos
// @Produce json
// @Success 200 {object} dto.TabsResponse
// @Router /pos/carts [get]
func (c *PosController) ListTabs(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.TabsResponse{
		ActiveID: c.manager.ActiveID(),
		Tabs:     c.manager.Tabs(),
	})
}

// CreateTab abre uma nova aba de venda e a torna ativa
// @Summary Nova venda
// @Tags pos
// @Produce json
// @Success 201 {object} dto.CartResponse
// @Router /pos/carts [post]
func (c *PosController) CreateTab(ctx *gin.Context) {
	instance := c.manager.CreateInstance()
	ctx.JSON(http.StatusCreated, dto.ToCartResponse(instance))
}

// ActivateTab muda a aba ativa
// @Summary Ativar aba de venda
// @Tags pos
// @Produce json
// @Param id path string true "ID da aba"
// @Success 200 {object} dto.TabsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pos/carts/{id}/activate [put]
func (c *PosController) ActivateTab(ctx *gin.Context) {
	if err := c.manager.SetActive(ctx.Param("id")); err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
		return
	}
	ctx.JSON(http.StatusOK, dto.TabsResponse{
		ActiveID: c.manager.ActiveID(),
		Tabs:     c.manager.Tabs(),
	})
}

// CloseTab fecha uma aba de venda. A última aba nunca é fechada.
// @Summary Fechar aba de venda
// @Tags pos
// @Produce json
// @Param id path string true "ID da aba"
// @Success 200 {object} dto.TabsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /pos/carts/{id} [delete]
func (c *PosController) CloseTab(ctx *gin.Context) {
	err := c.manager.CloseInstance(ctx.Param("id"))
	switch {
	case errors.Is(err, sale.ErrInstanceNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
		return
	case errors.Is(err, sale.ErrLastInstance):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, err.Error(), ""))
		return
	}
	ctx.JSON(http.StatusOK, dto.TabsResponse{
		ActiveID: c.manager.ActiveID(),
		Tabs:     c.manager.Tabs(),
	})
}

// GetCart retorna a venda ativa completa
// @Summary Venda ativa
// @Tags pos
// @Produce json
// @Success 200 {object} dto.CartResponse
// @Router /pos/cart [get]
func (c *PosController) GetCart(ctx *gin.Context) {
	instance, err := c.manager.Snapshot(c.manager.ActiveID())
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCartResponse(instance))
}

// AddItem adiciona um produto ao carrinho ativo, por ID ou por código
// escaneado
// @Summary Adicionar item
// @Tags pos
// @Accept json
// @Produce json
// @Param request body dto.AddItemRequest true "Produto"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pos/cart/items [post]
func (c *PosController) AddItem(ctx *gin.Context) {
	var req dto.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}
	if req.ProductID == nil && req.Code == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "informe product_id ou code", ""))
		return
	}

	product, found := c.findProduct(ctx.Request.Context(), req)
	if !found {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
		return
	}

	if err := c.manager.AddProduct(c.manager.ActiveID(), product); err != nil {
		if errors.Is(err, sale.ErrNoSectionSelected) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
			return
		}
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
		return
	}

	c.respondActiveCart(ctx)
}

// UpdateItem altera quantidade e/ou preço de um item do carrinho
// @Summary Alterar item
// @Tags pos
// @Accept json
// @Produce json
// @Param index path int true "Posição do item"
// @Param request body dto.UpdateLineRequest true "Alterações"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pos/cart/items/{index} [put]
func (c *PosController) UpdateItem(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "índice inválido", err.Error()))
		return
	}

	var req dto.UpdateLineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.manager.UpdateLine(c.manager.ActiveID(), index, req.Quantity, req.Price); err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
		return
	}

	c.respondActiveCart(ctx)
}

// RemoveItem remove um item do carrinho pela posição
// @Summary Remover item
// @Tags pos
// @Produce json
// @Param index path int true "Posição do item"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pos/cart/items/{index} [delete]
func (c *PosController) RemoveItem(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "índice inválido", err.Error()))
		return
	}

	if err := c.manager.RemoveLine(c.manager.ActiveID(), index); err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
		return
	}

	c.respondActiveCart(ctx)
}

// UpdateCart altera os campos de resumo da venda ativa
// @Summary Alterar resumo da venda
// @Tags pos
// @Accept json
// @Produce json
// @Param request body dto.UpdateCartRequest true "Alterações"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /pos/cart [put]
func (c *PosController) UpdateCart(ctx *gin.Context) {
	var req dto.UpdateCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if req.Discount != nil && req.Discount.LessThan(decimal.Zero) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "desconto não pode ser negativo", ""))
		return
	}

	var paymentMode *sale.PaymentMode
	if req.PaymentMode != nil {
		mode := sale.PaymentMode(*req.PaymentMode)
		if !sale.ValidPaymentMode(mode) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "forma de pagamento inválida", ""))
			return
		}
		paymentMode = &mode
	}

	if err := c.manager.UpdateDetails(c.manager.ActiveID(), req.CustomerName, req.CustomerMobile, req.Discount, paymentMode); err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, err.Error(), ""))
		return
	}

	c.respondActiveCart(ctx)
}

// Checkout envia a venda ativa ao backend
// @Summary Checkout
// @Tags pos
// @Produce json
// @Success 200 {object} checkout.Result
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /pos/cart/checkout [post]
func (c *PosController) Checkout(ctx *gin.Context) {
	result, err := c.checkoutSvc.Checkout(ctx.Request.Context(), c.manager.ActiveID())
	if err != nil {
		switch {
		case errors.Is(err, sale.ErrCheckoutInProgress):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, err.Error(), ""))
		case errors.Is(err, sale.ErrNoSectionSelected),
			errors.Is(err, sale.ErrMissingCustomerContact),
			errors.Is(err, sale.ErrEmptyCart):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
		default:
			ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao registrar a venda", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// respondActiveCart devolve o estado atual da venda ativa
func (c *PosController) respondActiveCart(ctx *gin.Context) {
	instance, err := c.manager.Snapshot(c.manager.ActiveID())
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCartResponse(instance))
}

// findProduct resolve a requisição contra a fotografia do catálogo
func (c *PosController) findProduct(ctx context.Context, req dto.AddItemRequest) (catalog.Product, bool) {
	products := c.loadProducts(ctx)
	for _, p := range products {
		if req.ProductID != nil && p.ID == *req.ProductID {
			return p, true
		}
		if req.ProductID == nil && p.MatchesCode(req.Code) {
			return p, true
		}
	}
	return catalog.Product{}, false
}

// loadProducts retorna a fotografia do catálogo, carregando-a na
// primeira utilização
func (c *PosController) loadProducts(ctx context.Context) []catalog.Product {
	c.cacheMu.RLock()
	cached := c.products
	c.cacheMu.RUnlock()
	if cached != nil {
		return cached
	}
	return c.reloadProducts(ctx)
}

// reloadProducts substitui a fotografia do catálogo. Em caso de erro a
// fotografia anterior é mantida.
func (c *PosController) reloadProducts(ctx context.Context) []catalog.Product {
	products, err := c.catalogSvc.ListProducts(ctx)
	if err != nil {
		c.logger.Error("erro ao carregar catálogo de produtos", "error", err)
		c.cacheMu.RLock()
		defer c.cacheMu.RUnlock()
		return c.products
	}

	c.cacheMu.Lock()
	c.products = products
	c.cacheMu.Unlock()
	return products
}
