package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/pdv-varejo/docs"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/controller"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/api/route"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/checkout"
	"github.com/hugohenrick/pdv-varejo/internal/adapter/client"
	"github.com/hugohenrick/pdv-varejo/internal/config"
	"github.com/hugohenrick/pdv-varejo/internal/domain/sale"
	"github.com/hugohenrick/pdv-varejo/pkg/logger"
	"github.com/hugohenrick/pdv-varejo/pkg/notify"
	"github.com/hugohenrick/pdv-varejo/pkg/printer"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	config *config.Config
	logger logger.Logger

	posController          *controller.PosController
	productController      *controller.ProductController
	sectionController      *controller.SectionController
	priceController        *controller.PriceController
	salesController        *controller.SalesController
	purchaseController     *controller.PurchaseController
	notificationController *controller.NotificationController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() *App {
	cfg := config.NewConfigFromEnv()
	log := logger.NewLogger()

	// Cliente do backend remoto
	backend := client.NewClient(cfg, log)

	// Feed de notificações e spool de cupons
	feed := notify.NewFeed(cfg.NotificationLimit, log)
	spool := printer.NewSpoolPrinter(cfg.ReceiptSpoolDir, log)

	// Núcleo de vendas
	manager := sale.NewManager(feed)
	checkoutAdapter := checkout.NewAdapter(manager, backend, feed, spool, log, cfg.CashierName)

	// Controllers
	posController := controller.NewPosController(manager, backend, backend, backend, checkoutAdapter, log)
	productController := controller.NewProductController(backend, log)
	sectionController := controller.NewSectionController(backend, log)
	priceController := controller.NewPriceController(backend, log)
	salesController := controller.NewSalesController(backend, log)
	purchaseController := controller.NewPurchaseController(backend, log)
	notificationController := controller.NewNotificationController(feed)

	// Router e middlewares globais
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	return &App{
		router:                 router,
		config:                 cfg,
		logger:                 log,
		posController:          posController,
		productController:      productController,
		sectionController:      sectionController,
		priceController:        priceController,
		salesController:        salesController,
		purchaseController:     purchaseController,
		notificationController: notificationController,
	}
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterPosRoutes(api, a.posController)
	route.RegisterProductRoutes(api, a.productController)
	route.RegisterSalesRoutes(api, a.salesController, a.sectionController, a.priceController)
	route.RegisterPurchaseRoutes(api, a.purchaseController)
	route.RegisterNotificationRoutes(api, a.notificationController)

	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	a.SetupRoutes("/api/v1")
	a.logger.Info("iniciando terminal de venda", "port", a.config.ServerPort)
	return a.router.Run(":" + a.config.ServerPort)
}
