package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "osms-portal/docs" // This will be auto-generated
	"osms-portal/internal/adapter/http/handlers"
	repository2 "osms-portal/internal/adapter/persistence/repository"
	"osms-portal/internal/domain/entities"
	"osms-portal/internal/domain/pricing"
	"osms-portal/internal/infrastructure/database"
	"osms-portal/internal/infrastructure/notion"
	"osms-portal/internal/infrastructure/resend"
	"osms-portal/internal/notification"
	"osms-portal/internal/usecase"
	"osms-portal/internal/usecase/interfaces"

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
	rfqRepo, ndaRepo := buildRepositories()
	registry := buildRegistry()
	dispatcher := buildDispatcher()

	calculator := pricing.NewCalculatorFromEnv()

	rfqUseCase := usecase.NewRfqUseCase(rfqRepo, registry, dispatcher, calculator)
	ndaUseCase := usecase.NewNdaUseCase(ndaRepo, registry)
	enquiryUseCase := usecase.NewEnquiryUseCase(dispatcher)

	rfqHandler := handlers.NewRfqHandler(rfqUseCase)
	ndaHandler := handlers.NewNdaHandler(ndaUseCase)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryUseCase)
	notificationHandler := handlers.NewNotificationHandler(dispatcher)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPortalRoutes(v1, rfqHandler, ndaHandler, enquiryHandler, notificationHandler)
}

// buildRepositories selects the persistence backend. RFQ_STORE=memory keeps
// everything in-process for local runs and demos; anything else uses DynamoDB.
func buildRepositories() (interfaces.IRfqRepository, interfaces.INdaRepository) {
	if os.Getenv("RFQ_STORE") == "memory" {
		log.Printf("[routes] using in-memory store")
		return repository2.NewRfqMemoryRepository(), repository2.NewNdaMemoryRepository()
	}
	ddb := database.ConnectDynamoDB()
	return repository2.NewRfqDynamoRepository(ddb), repository2.NewNdaDynamoRepository(ddb)
}

func buildRegistry() interfaces.IRegistryGateway {
	registry, err := notion.NewClientFromEnv()
	if err != nil {
		log.Printf("Notion registry not configured, sync disabled: %v", err)
		return disabledRegistry{}
	}
	return registry
}

func buildDispatcher() *notification.Dispatcher {
	sender, err := resend.NewClientFromEnv()
	if err != nil {
		log.Printf("Resend not configured, email channels disabled: %v", err)
		return notification.NewDispatcher()
	}

	staff := notification.NewStaffEmailChannel(sender, os.Getenv("RFQ_NOTIFICATION_EMAIL_TO"))
	customer := notification.NewCustomerEmailChannel(sender, notification.NotifiableStatusesFromEnv(), os.Getenv("APP_BASE_URL"))
	return notification.NewDispatcher(staff, customer)
}

// disabledRegistry keeps the portal usable when Notion credentials are
// absent: reads see no vendor prices and pushes are dropped.
type disabledRegistry struct{}

func (disabledRegistry) FetchVendorPrices(ctx context.Context) (map[string]float64, error) {
	return nil, nil
}
func (disabledRegistry) PublishRfq(ctx context.Context, r entities.Rfq) error { return nil }
func (disabledRegistry) PublishNda(ctx context.Context, n entities.Nda) error { return nil }

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
