package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/pdv-varejo/internal/domain/section"
	"github.com/hugohenrick/pdv-varejo/pkg/logger"
)

// SectionController gerencia a consulta e a gestão de canais e seções
// de vendas
type SectionController struct {
	sectionSvc section.Service
	logger     logger.Logger
}

// NewSectionController cria uma nova instância de SectionController
func NewSectionController(sectionSvc section.Service, logger logger.Logger) *SectionController {
	return &SectionController{
		sectionSvc: sectionSvc,
		logger:     logger,
	}
}

// ListChannels retorna os canais de vendas
// @Summary Listar canais de vendas
// @Tags sections
// @Produce json
// @Success 200 {array} section.Channel
// @Failure 502 {object} dto.ErrorResponse
// @Router /channels [get]
func (c *SectionController) ListChannels(ctx *gin.Context) {
	channels, err := c.sectionSvc.ListChannels(ctx.Request.Context())
	if err != nil {
		c.logger.Error("erro ao listar canais", "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao listar canais", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, channels)
}

// ListSections retorna as seções de vendas, opcionalmente por canal
// @Summary Listar seções de vendas
// @Tags sections
// @Produce json
// @Param channel_id query int false "Filtrar por canal"
// @Success 200 {array} section.Section
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /sections [get]
func (c *SectionController) ListSections(ctx *gin.Context) {
	var channelID *int
	if raw := ctx.Query("channel_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "channel_id inválido", err.Error()))
			return
		}
		channelID = &id
	}

	sections, err := c.sectionSvc.ListSections(ctx.Request.Context(), channelID)
	if err != nil {
		c.logger.Error("erro ao listar seções", "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao listar seções", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, sections)
}

// CreateChannel cria um canal de vendas
// @Summary Criar canal de vendas
// @Tags sections
// @Accept json
// @Produce json
// @Param request body dto.ChannelRequest true "Canal"
// @Success 201 {object} section.Channel
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /channels [post]
func (c *SectionController) CreateChannel(ctx *gin.Context) {
	var req dto.ChannelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	created, err := c.sectionSvc.CreateChannel(ctx.Request.Context(), req.Name)
	if err != nil {
		c.logger.Error("erro ao criar canal", "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao criar canal", err.Error()))
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateChannel renomeia um canal de vendas
// @Summary Renomear canal de vendas
// @Tags sections
// @Accept json
// @Produce json
// @Param id path int true "ID do canal"
// @Param request body dto.ChannelRequest true "Canal"
// @Success 200 {object} section.Channel
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /channels/{id} [put]
func (c *SectionController) UpdateChannel(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	var req dto.ChannelRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	updated, err := c.sectionSvc.UpdateChannel(ctx.Request.Context(), id, req.Name)
	if err != nil {
		c.logger.Error("erro ao renomear canal", "error", err, "id", id)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao renomear canal", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteChannel remove um canal de vendas
// @Summary Remover canal de vendas
// @Tags sections
// @Produce json
// @Param id path int true "ID do canal"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /channels/{id} [delete]
func (c *SectionController) DeleteChannel(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	if err := c.sectionSvc.DeleteChannel(ctx.Request.Context(), id); err != nil {
		c.logger.Error("erro ao remover canal", "error", err, "id", id)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao remover canal", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("canal removido", nil))
}

// CreateSection cria uma seção de vendas
// @Summary Criar seção de vendas
// @Tags sections
// @Accept json
// @Produce json
// @Param request body dto.SectionRequest true "Seção"
// @Success 201 {object} section.Section
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /sections [post]
func (c *SectionController) CreateSection(ctx *gin.Context) {
	var req dto.SectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	created, err := c.sectionSvc.CreateSection(ctx.Request.Context(), req.ToSectionInput())
	if err != nil {
		c.logger.Error("erro ao criar seção", "error", err)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao criar seção", err.Error()))
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateSection altera uma seção de vendas
// @Summary Alterar seção de vendas
// @Tags sections
// @Accept json
// @Produce json
// @Param id path int true "ID da seção"
// @Param request body dto.SectionRequest true "Seção"
// @Success 200 {object} section.Section
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /sections/{id} [put]
func (c *SectionController) UpdateSection(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	var req dto.SectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	updated, err := c.sectionSvc.UpdateSection(ctx.Request.Context(), id, req.ToSectionInput())
	if err != nil {
		c.logger.Error("erro ao alterar seção", "error", err, "id", id)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao alterar seção", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteSection remove uma seção de vendas
// @Summary Remover seção de vendas
// @Tags sections
// @Produce json
// @Param id path int true "ID da seção"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /sections/{id} [delete]
func (c *SectionController) DeleteSection(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "id inválido", err.Error()))
		return
	}

	if err := c.sectionSvc.DeleteSection(ctx.Request.Context(), id); err != nil {
		c.logger.Error("erro ao remover seção", "error", err, "id", id)
		ctx.JSON(http.StatusBadGateway, dto.NewErrorResponse(http.StatusBadGateway, "erro ao remover seção", err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("seção removida", nil))
}
