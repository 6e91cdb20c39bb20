package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-varejo/internal/domain/catalog"
	"github.com/hugohenrick/pdv-varejo/pkg/logger"
	"github.com/hugohenrick/pdv-varejo/pkg/sortutil"
)

// ProductController gerencia as consultas ao catálogo de produtos
type ProductController struct {
	catalogSvc catalog.Service
	logger     logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(catalogSvc catalog.Service, logger logger.Logger) *ProductController {
	return &ProductController{
		catalogSvc: catalogSvc,
		logger:     logger,
	}
}

// List retorna os produtos do catálogo com ordenação e filtro
// @Summary Listar produtos
// @Description Lista os produtos do catálogo remoto, com ordenação estável e filtro por nome
// @Tags products
// @Produce json
// @Param order query string false "Direção da ordenação (asc/desc)"
// @Param order_by query string false "Chave de ordenação"
// @Param filter query string false "Filtro por nome (substring, case-insensitive)"
// @Success 200 {array} catalog.Product
// @Failure 502 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	products, err := c.catalogSvc.ListProducts(ctx.Request.Context())
	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao listar produtos", err.Error()))
		return
	}

	direction := sortutil.ParseDirection(ctx.DefaultQuery("order", "asc"))
	orderBy := ctx.DefaultQuery("order_by", "item_name")

	cmp := sortutil.BuildComparator(direction, orderBy, func(p catalog.Product, key string) interface{} {
		return p.SortValue(key)
	})
	sorted := sortutil.SortStable(products, cmp)

	// o filtro é aplicado depois da ordenação para preservar a ordem
	// entre os registros filtrados
	filtered := sortutil.FilterByName(sorted, ctx.Query("filter"), func(p catalog.Product) (string, string) {
		return p.ItemName, ""
	})

	ctx.JSON(http.StatusOK, filtered)
}

// ListCategories retorna as categorias de produtos
// @Summary Listar categorias
// @Tags products
// @Produce json
// @Success 200 {array} catalog.Category
// @Failure 502 {object} dto.ErrorResponse
// @Router /categories [get]
func (c *ProductController) ListCategories(ctx *gin.Context) {
	categories, err := c.catalogSvc.ListCategories(ctx.Request.Context())
	if err != nil {
		c.logger.Error("erro ao listar categorias", "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao listar categorias", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// ListLocations retorna os locais de estoque
// @Summary Listar locais de estoque
// @Tags products
// @Produce json
// @Success 200 {array} catalog.Location
// @Failure 502 {object} dto.ErrorResponse
// @Router /locations [get]
func (c *ProductController) ListLocations(ctx *gin.Context) {
	locations, err := c.catalogSvc.ListLocations(ctx.Request.Context())
	if err != nil {
		c.logger.Error("erro ao listar locais de estoque", "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao listar locais de estoque", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, locations)
}
