package routes

import (
	"context"
	"log"
	"strconv"

	_ "kasra-bnpl/docs" // swagger document, generated by swag
	"kasra-bnpl/internal/adapter/http/handlers"
	repository2 "kasra-bnpl/internal/adapter/persistence/repository"
	"kasra-bnpl/internal/config"
	"kasra-bnpl/internal/domain/entities"
	"kasra-bnpl/internal/infrastructure/database"
	"kasra-bnpl/internal/infrastructure/ledger"
	"kasra-bnpl/internal/infrastructure/payments"
	"kasra-bnpl/internal/usecase"
	"kasra-bnpl/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := config.MustLoad()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Server.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	repo := newAgreementRepository(cfg.Store, cfg.AWS)
	recorder := ledger.WithTimeout(newLedgerRecorder(cfg.Ledger), cfg.Ledger.Timeout)
	gateway := payments.NewSimulatedHbarGateway(cfg.Payments.OperatorID)

	payLaterUseCase := usecase.NewPayLaterUseCase(repo, recorder, gateway, usecase.UUIDAllocator{}, cfg.Payments.MerchantID)
	paymentUseCase := usecase.NewHbarPaymentUseCase(gateway, cfg.Payments.MerchantID)

	payLaterHandler := handlers.NewPayLaterHandler(payLaterUseCase)
	paymentHandler := handlers.NewHbarPaymentHandler(paymentUseCase)
	catalogHandler := handlers.NewCatalogHandler(entities.DefaultCatalog())

	api := router.Group("/api")
	addPingRoutes(api)
	addPayLaterRoutes(api, payLaterHandler, paymentHandler, catalogHandler)
}

func newAgreementRepository(cfg config.Store, awsCfg config.AWS) interfaces.IAgreementRepository {
	switch cfg.Backend {
	case "dynamodb":
		ddb, err := database.NewDynamoClient(context.Background(), awsCfg)
		if err != nil {
			log.Fatalf("Failed to configure dynamodb agreement store: %v", err)
		}
		log.Printf("[store] using dynamodb agreement store table=%s", cfg.AgreementsTable)
		return repository2.NewAgreementDynamoRepository(ddb, cfg.AgreementsTable)
	default:
		log.Printf("[store] using file agreement store path=%s", cfg.AgreementsFile)
		return repository2.NewAgreementFileRepository(cfg.AgreementsFile)
	}
}

func newLedgerRecorder(cfg config.Ledger) interfaces.ILedgerRecorder {
	switch cfg.Sink {
	case "file":
		recorder, err := ledger.NewFileServiceRecorder(cfg.Endpoint, cfg.Timeout)
		if err != nil {
			log.Fatalf("Failed to configure ledger file-service recorder: %v", err)
		}
		return recorder
	case "kafka":
		recorder, err := ledger.NewKafkaRecorder(cfg.Brokers, cfg.Topic)
		if err != nil {
			log.Fatalf("Failed to configure ledger kafka recorder: %v", err)
		}
		return recorder
	default:
		return ledger.NewMockRecorder()
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
