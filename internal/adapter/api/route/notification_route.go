package route

import (
	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/controller"
)

// RegisterNotificationRoutes registra as rotas do feed de notificações
func RegisterNotificationRoutes(r *gin.RouterGroup, notificationController *controller.NotificationController) {
	r.GET("/notifications", notificationController.List)
}
