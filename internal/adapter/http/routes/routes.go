package routes

import (
	"log"
	"strconv"

	_ "upvc_marketplace/docs" // swag-generated API document
	"upvc_marketplace/internal/adapter/http/handlers"
	"upvc_marketplace/internal/adapter/persistence/repository"
	"upvc_marketplace/internal/infrastructure/database"
	"upvc_marketplace/internal/infrastructure/jobs"
	"upvc_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	leadRepo := repository.NewLeadDynamoRepository(ddb)
	sellerRepo := repository.NewSellerDynamoRepository(ddb)
	settlementRepo := repository.NewSettlementDynamoRepository(ddb)
	buyerDir := repository.NewBuyerDynamoDirectory(ddb)
	categoryDir := repository.NewCategoryDynamoDirectory(ddb)
	productDir := repository.NewProductDynamoDirectory(ddb)

	leadUseCase := usecase.NewLeadUseCase(leadRepo, buyerDir, categoryDir, productDir)
	purchaseUseCase := usecase.NewPurchaseUseCase(leadRepo, sellerRepo, settlementRepo)
	quotaUseCase := usecase.NewQuotaUseCase(sellerRepo)

	leadHandler := handlers.NewLeadHandler(leadUseCase)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseUseCase)
	quotaHandler := handlers.NewQuotaHandler(quotaUseCase)

	jobs.InitQuotaResetCron(quotaUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLeadRoutes(v1, leadHandler, purchaseHandler)
	addSellerRoutes(v1, quotaHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
