package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/freelancedesk/freelancedesk/docs"
	"github.com/freelancedesk/freelancedesk/internal/api/handler"
	"github.com/freelancedesk/freelancedesk/internal/api/middleware"
	"github.com/freelancedesk/freelancedesk/internal/core/domain"
	"github.com/freelancedesk/freelancedesk/internal/core/ports"
	"github.com/freelancedesk/freelancedesk/internal/core/service"
	"github.com/freelancedesk/freelancedesk/internal/infrastructure/config"
	"github.com/freelancedesk/freelancedesk/internal/infrastructure/db/postgres"
	"github.com/freelancedesk/freelancedesk/internal/infrastructure/db/redis"
	"github.com/freelancedesk/freelancedesk/internal/infrastructure/payment"
	"github.com/freelancedesk/freelancedesk/internal/pkg/crypto"
	"github.com/freelancedesk/freelancedesk/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	pool *pgxpool.Pool,
	rdb *goredis.Client,
	recorder ports.ActivityRecorder,
	cfg *config.Config,
) (*echo.Echo, error) {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("freelancedesk"))

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	entryRepo := postgres.NewTimeEntryRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	abTestRepo := postgres.NewAbTestRepository(pool)
	keyRepo := postgres.NewPaymentKeyRepository(pool)
	activityRepo := postgres.NewActivityLogRepository(pool)
	sequencer := postgres.NewSequencer(pool)

	// --- Infrastructure ---
	codec, err := crypto.New(cfg.EncryptionSecret)
	if err != nil {
		return nil, err
	}
	gateway := payment.NewCashfree(payment.Config{
		AppID:     cfg.Cashfree.AppID,
		SecretKey: cfg.Cashfree.SecretKey,
		BaseURL:   cfg.Cashfree.BaseURL,
		ReturnURL: cfg.Cashfree.ReturnURL,
		NotifyURL: cfg.Cashfree.NotifyURL,
	}, log)
	dedup := redis.NewWebhookDedup(rdb)

	// --- Services ---
	userService := service.NewUserService(userRepo, log)
	clientService := service.NewClientService(clientRepo, log)
	projectService := service.NewProjectService(projectRepo, log)
	entryService := service.NewTimeEntryService(entryRepo, log)
	billingService := service.NewBillingService(invoiceRepo, quoteRepo, sequencer, log)
	dashboardService := service.NewDashboardService(entryRepo, projectRepo, invoiceRepo, log)
	documentService := service.NewDocumentService(documentRepo, log)
	abTestService := service.NewAbTestService(abTestRepo, log)
	keyService := service.NewPaymentKeyService(keyRepo, codec, log)
	paymentService := service.NewPaymentService(invoiceRepo, userRepo, gateway, dedup, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(userService)
	clientHandler := handler.NewClientHandler(clientService, recorder)
	projectHandler := handler.NewProjectHandler(projectService, recorder)
	entryHandler := handler.NewTimeEntryHandler(entryService, recorder)
	invoiceHandler := handler.NewInvoiceHandler(billingService, recorder)
	quoteHandler := handler.NewQuoteHandler(billingService, recorder)
	documentHandler := handler.NewDocumentHandler(documentService, recorder)
	abTestHandler := handler.NewAbTestHandler(abTestService)
	adminHandler := handler.NewAdminHandler(userService, keyService, activityRepo, recorder)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	paymentHandler := handler.NewPaymentHandler(paymentService, recorder)

	auth := middleware.Auth(cfg.JWTSecret, userRepo)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Health probes and operational endpoints (no auth) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Gateway webhook (authenticated by dedup + provider retries, not JWT) ---
	e.POST("/api/cashfree/webhook", paymentHandler.Webhook)

	// --- Authenticated API ---
	api := e.Group("/api", auth)

	api.GET("/auth/user", authHandler.Me)

	api.GET("/clients", clientHandler.List)
	api.POST("/clients", clientHandler.Create)
	api.PUT("/clients/:id", clientHandler.Update)
	api.DELETE("/clients/:id", clientHandler.Delete)

	api.GET("/projects", projectHandler.List)
	api.POST("/projects", projectHandler.Create)
	api.PUT("/projects/:id", projectHandler.Update)
	api.DELETE("/projects/:id", projectHandler.Delete)

	api.GET("/time-entries", entryHandler.List)
	api.GET("/time-entries/active", entryHandler.Active)
	api.POST("/time-entries", entryHandler.Start)
	api.PUT("/time-entries/:id/stop", entryHandler.Stop)
	api.PUT("/time-entries/:id", entryHandler.Update)
	api.DELETE("/time-entries/:id", entryHandler.Delete)

	api.GET("/invoices", invoiceHandler.List)
	api.POST("/invoices", invoiceHandler.Create)
	api.PUT("/invoices/:id", invoiceHandler.Update)
	api.DELETE("/invoices/:id", invoiceHandler.Delete)

	api.GET("/quotes", quoteHandler.List)
	api.POST("/quotes", quoteHandler.Create)
	api.PUT("/quotes/:id", quoteHandler.Update)
	api.DELETE("/quotes/:id", quoteHandler.Delete)

	api.GET("/documents", documentHandler.List)
	api.POST("/documents", documentHandler.Create)
	api.DELETE("/documents/:id", documentHandler.Delete)

	api.GET("/dashboard/stats", dashboardHandler.Stats)

	api.POST("/cashfree/orders", paymentHandler.CreateOrder)
	api.GET("/cashfree/orders/:orderId", paymentHandler.OrderStatus)
	api.POST("/cashfree/initiate-payment", paymentHandler.Initiate)

	// Recording a result is open to any authenticated caller; managing
	// tests and reading results is admin-only.
	api.POST("/ab-tests/:id/results", abTestHandler.RecordResult)
	api.GET("/ab-tests", abTestHandler.List, adminOnly)
	api.POST("/ab-tests", abTestHandler.Create, adminOnly)
	api.GET("/ab-tests/:id/results", abTestHandler.ListResults, adminOnly)

	// --- Admin console ---
	admin := api.Group("/admin", adminOnly)

	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/role", adminHandler.UpdateUserRole)
	admin.PUT("/users/:id/deactivate", adminHandler.DeactivateUser)
	admin.PUT("/users/:id/activate", adminHandler.ActivateUser)

	admin.GET("/payment-keys", adminHandler.ListPaymentKeys)
	admin.POST("/payment-keys", adminHandler.CreatePaymentKey)
	admin.DELETE("/payment-keys/:id", adminHandler.DeletePaymentKey)

	admin.GET("/activity-logs", adminHandler.ListActivityLogs)

	return e, nil
}
