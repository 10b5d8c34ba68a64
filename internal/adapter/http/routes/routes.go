package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "studioflow/docs" // This will be auto-generated
	"studioflow/internal/adapter/http/handlers"
	repository2 "studioflow/internal/adapter/persistence/repository"
	"studioflow/internal/infrastructure/database"
	"studioflow/internal/infrastructure/payments"
	"studioflow/internal/infrastructure/textgen"
	"studioflow/internal/templates"
	"studioflow/internal/usecase"
	"studioflow/internal/usecase/interfaces"

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

	budgetRepo := repository2.NewBudgetDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	financeRepo := repository2.NewFinanceDynamoRepository(ddb)
	officeRepo := repository2.NewOfficeDynamoRepository(ddb)
	templateRepo := repository2.NewTemplateDynamoRepository(ddb)

	defaults, err := templates.LoadDefaults()
	if err != nil {
		log.Fatalf("Failed to load default service templates: %v", err)
	}

	templateUseCase := usecase.NewTemplateUseCase(templateRepo, defaults)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, projectRepo, financeRepo, officeRepo, templateUseCase)
	projectUseCase := usecase.NewProjectUseCase(projectRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	financeUseCase := usecase.NewFinanceUseCase(financeRepo, paymentGateway)

	var textGenerator interfaces.ITextGenerator
	geminiGenerator, err := textgen.NewGeminiGenerator(context.Background())
	if err != nil {
		log.Printf("Gemini generator not configured: %v", err)
	} else {
		textGenerator = geminiGenerator
	}
	proposalUseCase := usecase.NewProposalUseCase(budgetRepo, templateUseCase, textGenerator)

	budgetHandler := handlers.NewBudgetHandler(budgetUseCase, proposalUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	financeHandler := handlers.NewFinanceHandler(financeUseCase)
	templateHandler := handlers.NewTemplateHandler(templateUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addStudioRoutes(v1, budgetHandler, projectHandler, financeHandler, templateHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
