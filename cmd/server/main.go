//go:generate swag init -g main.go -d ./,../../internal/interfaces/http/handler,../../internal/application -o ../../docs --v3.1

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/zumech/backend/docs"
	billingapp "github.com/zumech/backend/internal/application/billing"
	challanapp "github.com/zumech/backend/internal/application/challan"
	gatepassapp "github.com/zumech/backend/internal/application/gatepass"
	messagingapp "github.com/zumech/backend/internal/application/messaging"
	printapp "github.com/zumech/backend/internal/application/printing"
	quotationapp "github.com/zumech/backend/internal/application/quotation"
	"github.com/zumech/backend/internal/infrastructure/auth"
	"github.com/zumech/backend/internal/infrastructure/cache"
	"github.com/zumech/backend/internal/infrastructure/config"
	"github.com/zumech/backend/internal/infrastructure/llm"
	"github.com/zumech/backend/internal/infrastructure/logger"
	"github.com/zumech/backend/internal/infrastructure/ocr"
	"github.com/zumech/backend/internal/infrastructure/persistence"
	"github.com/zumech/backend/internal/infrastructure/printing"
	"github.com/zumech/backend/internal/infrastructure/telemetry"
	"github.com/zumech/backend/internal/interfaces/http/handler"
	"github.com/zumech/backend/internal/interfaces/http/middleware"
	"github.com/zumech/backend/internal/interfaces/http/router"
)

//	@title			Zumech Backend API
//	@version		1.0
//	@description	Delivery challans, bills, quotations, gate-pass extraction and the WhatsApp message log.

//	@contact.name	Zumech
//	@contact.email	z.ushahid@gmail.com

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := &logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}
	log, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx := context.Background()

	providers, err := telemetry.Setup(ctx, telemetry.ConfigFrom(cfg), log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	if level, err := zapcore.ParseLevel(cfg.Log.Level); err == nil {
		// Rebuild with the OTLP core so log records reach the collector too
		if withOTLP, err := logger.New(logCfg, providers.LogCore(level)); err == nil {
			log = withOTLP
		}
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Zumech backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	profiler, err := telemetry.StartProfiler(telemetry.ProfilerConfig{
		Enabled:         cfg.Profiling.Enabled,
		ServerAddress:   cfg.Profiling.ServerAddress,
		ApplicationName: cfg.Telemetry.ServiceName,
		Environment:     cfg.App.Env,
	}, log)
	if err != nil {
		log.Fatal("Failed to start profiler", zap.Error(err))
	}
	if profiler.Enabled() && cfg.Profiling.SpanProfiles {
		providers.EnableSpanProfiles()
	}

	dbOpts := []persistence.Option{persistence.WithLogger(log)}
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		dbOpts = append(dbOpts, persistence.WithPlugin(telemetry.NewDBTracing(telemetry.DBTracingConfig{
			DBName:        cfg.Database.DBName,
			WithVariables: cfg.App.Env == "development",
			SlowThreshold: cfg.Database.SlowThreshold,
		})))
	}
	db, err := persistence.NewDatabase(&cfg.Database, dbOpts...)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected", zap.String("driver", db.Driver()))

	challanRepo := persistence.NewGormChallanRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	quotationRepo := persistence.NewGormQuotationRepository(db.DB)
	extractionRepo := persistence.NewGormExtractionRepository(db.DB)
	contactRepo := persistence.NewGormContactRepository(db.DB)
	messageRepo := persistence.NewGormMessageRepository(db.DB)

	companyCache, redisClient := cache.NewFactory(cfg.Redis, cache.WithLogger(log)).CompanyCache()

	uploads, archive, err := newStorage(ctx, &cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize storage", zap.Error(err))
	}

	model, err := llm.New(ctx, cfg.LLM, log)
	if err != nil {
		log.Fatal("Failed to initialize language model", zap.Error(err))
	}
	if model == nil {
		log.Warn("No LLM API key configured, gate-pass extraction is unavailable")
	}

	renderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		DefaultTimeout: cfg.Printing.RenderTimeout,
		RemoteURL:      cfg.Printing.ChromeRemoteURL,
		NoSandbox:      cfg.Printing.NoSandbox,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
	}
	templates, err := printing.NewTemplateEngine(printing.LetterheadFrom(cfg.Printing))
	if err != nil {
		log.Fatal("Failed to load document templates", zap.Error(err))
	}

	// Application services
	challanService := challanapp.NewService(challanRepo,
		challanapp.WithCompanyCache(companyCache),
		challanapp.WithLogger(log),
	)
	billingService := billingapp.NewService(invoiceRepo, challanRepo, log)
	quotationService := quotationapp.NewService(quotationRepo, log)
	messagingService := messagingapp.NewService(contactRepo, messageRepo, log)

	gatepassOpts := []gatepassapp.Option{gatepassapp.WithLogger(log)}
	if model != nil {
		gatepassOpts = append(gatepassOpts, gatepassapp.WithLanguageModel(model))
	}
	if uploads != nil {
		gatepassOpts = append(gatepassOpts, gatepassapp.WithObjectStore(uploads))
	}
	if cfg.OCR.URL != "" {
		ocrClient, err := ocr.NewClient(cfg.OCR.URL, cfg.OCR.Timeout, ocr.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize OCR client", zap.Error(err))
		}
		gatepassOpts = append(gatepassOpts, gatepassapp.WithOCR(ocrClient))
	}
	gatepassService := gatepassapp.NewService(extractionRepo, gatepassOpts...)

	printOpts := []printapp.Option{
		printapp.WithLogger(log),
		printapp.WithMaxConcurrent(cfg.Printing.MaxConcurrent),
	}
	if archive != nil && cfg.Storage.ArchiveDocuments {
		printOpts = append(printOpts, printapp.WithArchive(archive))
	}
	printService := printapp.NewPrintService(challanRepo, invoiceRepo, quotationRepo, templates, renderer, printOpts...)

	var httpMetrics *telemetry.HTTPMetrics
	if providers.MetricsEnabled() {
		meter := providers.Meter(telemetry.TracerName)
		bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{Meter: meter, Logger: log})
		if err != nil {
			log.Fatal("Failed to create business metrics", zap.Error(err))
		}
		challanService.SetBusinessMetrics(bm)
		billingService.SetBusinessMetrics(bm)
		gatepassService.SetBusinessMetrics(bm)
		messagingService.SetBusinessMetrics(bm)
		printService.SetBusinessMetrics(bm)

		httpMetrics, err = telemetry.NewHTTPMetrics(meter)
		if err != nil {
			log.Fatal("Failed to create HTTP metrics", zap.Error(err))
		}
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(logger.Recovery(log))
	engine.Use(middleware.RequestID())
	if providers.TracesEnabled() {
		engine.Use(middleware.Tracing(cfg.Telemetry.ServiceName, "/health", "/ready", "/swagger"))
		engine.Use(middleware.SpanEnricher())
	}
	engine.Use(logger.GinMiddleware(log, "/health", "/ready"))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORS(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	var rateLimiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}
	if httpMetrics != nil {
		engine.Use(middleware.Metrics(httpMetrics))
	}
	if profiler.Enabled() {
		engine.Use(middleware.Profiling())
	}

	checks := map[string]handler.Pinger{"database": db}
	if redisClient != nil {
		checks["redis"] = handler.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}
	handler.NewSystemHandler(checks).RegisterRoutes(&engine.RouterGroup)

	if cfg.Swagger.Enabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	var apiMiddleware []gin.HandlerFunc
	if cfg.JWT.Enabled {
		tokens, err := auth.NewTokenService(cfg.JWT)
		if err != nil {
			log.Fatal("Failed to initialize token service", zap.Error(err))
		}
		webhookSecret := cfg.Webhook.WhatsAppSecret
		apiMiddleware = append(apiMiddleware, middleware.BearerAuth(middleware.BearerAuthConfig{
			Validator: tokens,
			Skip: func(c *gin.Context) bool {
				// The WhatsApp bridge authenticates with the webhook secret
				return webhookSecret != "" &&
					c.Request.Method == http.MethodPost &&
					c.FullPath() == "/api/v1/whatsapp"
			},
		}))
	}

	handlers := handler.Handlers{
		Challan:   handler.NewChallanHandler(challanService),
		Invoice:   handler.NewInvoiceHandler(billingService),
		Quotation: handler.NewQuotationHandler(quotationService),
		GatePass:  handler.NewGatePassHandler(gatepassService),
		Messaging: handler.NewMessagingHandler(messagingService, middleware.WebhookSecret(cfg.Webhook.WhatsAppSecret)),
		Document:  handler.NewDocumentHandler(printService),
	}
	router.NewRouter(engine,
		router.WithAPIVersion("v1"),
		router.WithMiddleware(apiMiddleware...),
	).Register(handlers.Registrars()...).Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	timeout := cfg.HTTP.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if rateLimiter != nil {
		rateLimiter.Stop()
	}
	if err := renderer.Close(); err != nil {
		log.Error("Error closing PDF renderer", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing redis", zap.Error(err))
		}
	}
	if err := db.Close(); err != nil {
		log.Error("Error closing database", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Error("Error stopping profiler", zap.Error(err))
	}
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down telemetry", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
