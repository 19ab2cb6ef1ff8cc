package routes

import (
	"log"
	"os"
	"strconv"

	_ "warranty_intake/docs" // swag-generated registration
	"warranty_intake/internal/adapter/http/handlers"
	"warranty_intake/internal/adapter/http/middleware"
	repository2 "warranty_intake/internal/adapter/persistence/repository"
	"warranty_intake/internal/infrastructure/crm"
	"warranty_intake/internal/infrastructure/database"
	"warranty_intake/internal/infrastructure/notifications"
	"warranty_intake/internal/usecase"
	"warranty_intake/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	router.HandleMethodNotAllowed = true
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	counterRepo := repository2.NewClaimCounterDynamoRepository(ddb)
	sequencer := usecase.NewSequencerUseCase(counterRepo)

	// Both outbound integrations are optional at boot: a missing token only
	// disables that side effect, claim intake keeps working.
	var crmGateway interfaces.ICRMGateway
	hubspot, err := crm.NewHubSpotGateway(os.Getenv("CRM_BASE_URL"), os.Getenv("CRM_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("CRM gateway not configured: %v", err)
	} else {
		crmGateway = hubspot
	}

	emailCfg := notifications.ConfigFromEnv()
	var notifier interfaces.INotificationGateway
	if emailCfg.Enabled {
		resend, err := notifications.NewResendGateway(emailCfg)
		if err != nil {
			log.Printf("Email gateway not configured: %v", err)
		} else {
			notifier = resend
		}
	}

	intakeUseCase := usecase.NewIntakeUseCase(sequencer, crmGateway, notifier, emailCfg.Enabled)
	claimHandler := handlers.NewClaimHandler(intakeUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClaimRoutes(v1, claimHandler)
}

func setMiddlewares() {
	router.Use(middleware.CORS(middleware.CORSPolicyFromEnv()))
	router.Use(middleware.Metrics())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
