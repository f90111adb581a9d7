package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "fieldops/docs" // This will be auto-generated
	"fieldops/internal/adapter/http/handlers"
	repository2 "fieldops/internal/adapter/persistence/repository"
	"fieldops/internal/infrastructure/cache"
	"fieldops/internal/infrastructure/database"
	"fieldops/internal/infrastructure/notify"
	"fieldops/internal/infrastructure/payments"
	"fieldops/internal/usecase"
	"fieldops/internal/usecase/interfaces"

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

	ticketRepo := repository2.NewFieldTicketDynamoRepository(ddb)
	sequenceRepo := repository2.NewTicketSequenceDynamoRepository(ddb)
	jobRepo := repository2.NewJobDynamoRepository(ddb)
	paymentRepo := repository2.NewTicketPaymentDynamoRepository(ddb)

	var notifier interfaces.ITicketNotifier
	if wh := notify.NewWebhookNotifier(os.Getenv("TICKET_WEBHOOK_URL")); wh != nil {
		notifier = wh
	}

	var riskCache interfaces.IRiskCache
	if rdb := cache.ConnectRedis(context.Background(), os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD")); rdb != nil {
		riskCache = cache.NewRedisRiskCache(rdb, 0)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	ticketUseCase := usecase.NewFieldTicketUseCase(ticketRepo, sequenceRepo, jobRepo, notifier)
	batchUseCase := usecase.NewBatchSignUseCase(ticketRepo, notifier)
	riskUseCase := usecase.NewRiskUseCase(ticketRepo, riskCache)
	paymentUseCase := usecase.NewTicketPaymentUseCase(paymentRepo, ticketRepo, paymentGateway, notifier)

	ticketHandler := handlers.NewFieldTicketHandler(ticketUseCase, batchUseCase)
	riskHandler := handlers.NewRiskHandler(riskUseCase)
	paymentHandler := handlers.NewTicketPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTicketRoutes(v1, ticketHandler, riskHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
