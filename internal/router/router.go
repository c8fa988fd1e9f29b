// Package router assembles the HTTP API: services, handlers, middleware and routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"brokerfolio/internal/config"
	_ "brokerfolio/internal/docs" // swagger spec registration
	"brokerfolio/internal/handlers"
	"brokerfolio/internal/logger"
	"brokerfolio/internal/middleware"
	"brokerfolio/internal/report"
	"brokerfolio/internal/services"
	"brokerfolio/internal/validator"
)

// New builds the Gin engine serving the API over db.
func New(db *gorm.DB, cfg *config.Config) *gin.Engine {
	validator.Register()

	// Services
	assetTypeService := services.NewAssetTypeService(db)
	assetService := services.NewAssetService(db, assetTypeService)
	transactionService := services.NewTransactionService(db)
	brokerService := services.NewBrokerService(db, transactionService)
	reportEngine := report.NewEngine(transactionService,
		report.WithLogger(logger.Get()),
		report.WithCurrency(cfg.ReportCurrency),
	)

	// Handlers
	assetTypeHandler := handlers.NewAssetTypeHandler(assetTypeService, assetService)
	assetHandler := handlers.NewAssetHandler(assetService)
	brokerHandler := handlers.NewBrokerHandler(brokerService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	reportHandler := handlers.NewReportHandler(reportEngine)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigin))
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	assetTypes := v1.Group("/asset-types")
	assetTypes.POST("", assetTypeHandler.CreateAssetType)
	assetTypes.GET("", assetTypeHandler.ListAssetTypes)
	assetTypes.GET("/search", assetTypeHandler.SearchAssetTypes)
	assetTypes.GET("/stats", assetTypeHandler.GetAssetTypeStats)
	assetTypes.GET("/:id", assetTypeHandler.GetAssetType)
	assetTypes.GET("/:id/assets", assetTypeHandler.ListAssetsByType)
	assetTypes.PUT("/:id", assetTypeHandler.UpdateAssetType)
	assetTypes.DELETE("/:id", assetTypeHandler.DeleteAssetType)

	assets := v1.Group("/assets")
	assets.POST("", assetHandler.CreateAsset)
	assets.GET("", assetHandler.ListAssets)
	assets.GET("/search", assetHandler.SearchAssets)
	assets.GET("/stats", assetHandler.GetAssetStats)
	assets.GET("/ticker/:ticker", assetHandler.GetAssetByTicker)
	assets.GET("/:id", assetHandler.GetAsset)
	assets.PUT("/:id", assetHandler.UpdateAsset)
	assets.DELETE("/:id", assetHandler.DeleteAsset)

	brokers := v1.Group("/brokers")
	brokers.POST("", brokerHandler.CreateBroker)
	brokers.GET("", brokerHandler.ListBrokers)
	brokers.GET("/search", brokerHandler.SearchBrokers)
	brokers.GET("/stats", brokerHandler.GetBrokerStats)
	brokers.GET("/code/:code", brokerHandler.GetBrokerByCode)
	brokers.GET("/:id", brokerHandler.GetBroker)
	brokers.GET("/:id/summary", brokerHandler.GetBrokerSummary)
	brokers.PUT("/:id", brokerHandler.UpdateBroker)
	brokers.DELETE("/:id", brokerHandler.DeleteBroker)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	reports := v1.Group("/reports")
	reports.GET("/position", reportHandler.GetPositionReport)
	reports.GET("/movement", reportHandler.GetMovementReport)

	return router
}
