package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "taller_movil/docs" // This will be auto-generated
	"taller_movil/internal/adapter/http/handlers"
	"taller_movil/internal/adapter/persistence/localcache"
	repository2 "taller_movil/internal/adapter/persistence/repository"
	"taller_movil/internal/infrastructure/database"
	"taller_movil/internal/infrastructure/payments"
	"taller_movil/internal/metrics"
	"taller_movil/internal/usecase"
	"taller_movil/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run wires the whole service together and starts the HTTP server. Shutdown
// flushes every open composition so no draft is lost on restart.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	manager := getRoutes()

	port := defaultPort
	if raw := os.Getenv("PORT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			port = parsed
		}
	}

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(port),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	manager.CloseAll(ctx)
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}

func getRoutes() usecase.ICompositionManager {
	logger := logrus.NewEntry(logrus.StandardLogger())

	ddb := database.ConnectDynamoDB()

	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	draftRepo := repository2.NewDraftDynamoRepository(ddb)
	depositRepo := repository2.NewDepositPaymentDynamoRepository(ddb)

	localCache := localcache.NewFileDraftCache(os.Getenv("DRAFT_CACHE_PATH"))

	autosaveMetrics := metrics.NewAutosaveMetrics()

	var managerOptions []usecase.AutoPersistOption
	if raw := os.Getenv("AUTOSAVE_DEBOUNCE_MS"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
			managerOptions = append(managerOptions, usecase.WithDebounce(time.Duration(ms)*time.Millisecond))
		}
	}

	manager := usecase.NewCompositionManager(localCache, draftRepo, autosaveMetrics, logger, managerOptions...)
	catalogUseCase := usecase.NewCatalogQueryUseCase(catalogRepo)
	customerUseCase := usecase.NewCustomerDirectoryUseCase(customerRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	depositUseCase := usecase.NewDepositPaymentUseCase(depositRepo, paymentGateway, logger)

	compositionHandler := handlers.NewCompositionHandler(manager)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	depositHandler := handlers.NewDepositHandler(depositUseCase, manager)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, compositionHandler, depositHandler)
	addCatalogRoutes(v1, catalogHandler)
	addCustomerRoutes(v1, customerHandler)

	return manager
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
