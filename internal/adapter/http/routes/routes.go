package routes

import (
	"log"
	"os"
	"strconv"

	_ "gatewaysim/docs" // This will be auto-generated
	"gatewaysim/internal/adapter/http/handlers"
	repository2 "gatewaysim/internal/adapter/persistence/repository"
	"gatewaysim/internal/infrastructure/database"
	"gatewaysim/internal/infrastructure/notifications"
	"gatewaysim/internal/infrastructure/payments"
	"gatewaysim/internal/usecase"
	"gatewaysim/internal/usecase/interfaces"

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

	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	subscriptionRepo := repository2.NewSubscriptionDynamoRepository(ddb)
	planRepo := repository2.NewPlanDynamoRepository(ddb)
	ruleRepo := repository2.NewRuleDynamoRepository(ddb)
	webhookRepo := repository2.NewWebhookDynamoRepository(ddb)
	webhookLogRepo := repository2.NewWebhookLogDynamoRepository(ddb)

	resolver := usecase.NewStatusResolver(ruleRepo)
	notifier := notifications.NewDispatcher(
		webhookRepo,
		webhookLogRepo,
		os.Getenv("WEBHOOK_SECRET"),
		os.Getenv("WEBHOOK_LOOPBACK_ALIAS"),
	)

	// The passthrough gateway is optional: without credentials every charge
	// is resolved locally.
	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago passthrough not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, subscriptionRepo, resolver, notifier, paymentGateway)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, planRepo, paymentRepo, resolver, notifier)
	ruleUseCase := usecase.NewRuleUseCase(ruleRepo, resolver)
	webhookUseCase := usecase.NewWebhookUseCase(webhookRepo, webhookLogRepo)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionUseCase)
	ruleHandler := handlers.NewRuleHandler(ruleUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addGatewayRoutes(v1, paymentHandler, subscriptionHandler, ruleHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
