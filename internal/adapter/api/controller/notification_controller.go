package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-varejo/pkg/notify"
)

// NotificationController expõe o feed de notificações para a interface
type NotificationController struct {
	feed *notify.Feed
}

// NewNotificationController cria uma nova instância de NotificationController
func NewNotificationController(feed *notify.Feed) *NotificationController {
	return &NotificationController{feed: feed}
}

// List retorna as notificações posteriores ao ID informado
// @Summary Listar notificações
// @Tags notifications
// @Produce json
// @Param after_id query int false "Retornar apenas notificações após este ID"
// @Success 200 {array} notify.Notification
// @Router /notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	afterID, _ := strconv.ParseUint(ctx.DefaultQuery("after_id", "0"), 10, 64)
	ctx.JSON(http.StatusOK, c.feed.After(afterID))
}
