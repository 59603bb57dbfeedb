package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/edificio/backend/internal/application/billing"
	identityapp "github.com/edificio/backend/internal/application/identity"
	notificationapp "github.com/edificio/backend/internal/application/notification"
	paymentapp "github.com/edificio/backend/internal/application/payment"
	propertyapp "github.com/edificio/backend/internal/application/property"
	"github.com/edificio/backend/internal/infrastructure/auth"
	"github.com/edificio/backend/internal/infrastructure/cache"
	"github.com/edificio/backend/internal/infrastructure/config"
	"github.com/edificio/backend/internal/infrastructure/logger"
	"github.com/edificio/backend/internal/infrastructure/mail"
	"github.com/edificio/backend/internal/infrastructure/persistence"
	"github.com/edificio/backend/internal/infrastructure/storage"
	"github.com/edificio/backend/internal/interfaces/http/handler"
	"github.com/edificio/backend/internal/interfaces/http/middleware"
	"github.com/edificio/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Edificio Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with GORM logging routed through zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	apartmentRepo := persistence.NewGormApartmentRepository(db.DB)
	residentRepo := persistence.NewGormResidentRepository(db.DB)
	priceSheetRepo := persistence.NewGormPriceSheetRepository(db.DB)
	receiptRepo := persistence.NewGormReceiptRepository(db.DB)
	laundryRepo := persistence.NewGormLaundryRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)

	// Debt cache: Redis when reachable, in-process otherwise
	var debtCache paymentapp.DebtCache
	if redisCache, err := cache.NewRedisDebtCache(cfg.Redis, 0); err != nil {
		log.Warn("Redis unavailable, using in-memory debt cache", zap.Error(err))
		debtCache = cache.NewInMemoryDebtCache(0)
	} else {
		defer redisCache.Close()
		debtCache = redisCache
		log.Info("Redis debt cache connected", zap.String("addr", cfg.Redis.Addr()))
	}

	// Object storage for vouchers and rendered receipts
	var voucherStore paymentapp.ObjectStorageService
	var receiptStore notificationapp.ObjectStorageService
	var documentStore propertyapp.ObjectStorageService
	if cfg.Storage.Bucket != "" {
		s3Store, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := s3Store.EnsureBucket(ctx); err != nil {
			cancel()
			log.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
		cancel()
		voucherStore = s3Store
		receiptStore = s3Store
		documentStore = s3Store
		log.Info("Object storage ready", zap.String("bucket", s3Store.GetBucket()))
	} else {
		log.Warn("No storage bucket configured, using in-memory object storage")
		memStore := storage.NewMemoryObjectStorage()
		voucherStore = memStore
		receiptStore = memStore
		documentStore = memStore
	}

	// Outbound mail: SMTP when configured, log-only otherwise
	var sender mail.Sender
	if cfg.Mail.Host != "" {
		sender = mail.NewSMTPSender(cfg.Mail, log)
		log.Info("SMTP sender configured", zap.String("host", cfg.Mail.Host))
	} else {
		log.Warn("No SMTP host configured, outbound mail will only be logged")
		sender = mail.NewNopSender(log)
	}

	// JWT service
	jwtService := auth.NewJWTService(cfg.JWT)

	// Application services
	apartmentService := propertyapp.NewApartmentService(apartmentRepo, residentRepo)
	residentService := propertyapp.NewResidentService(residentRepo, apartmentRepo)
	priceService := propertyapp.NewPriceService(priceSheetRepo)
	documentService := propertyapp.NewDocumentService(residentRepo, documentStore, log)
	receiptService := billingapp.NewReceiptService(receiptRepo, laundryRepo, paymentRepo, apartmentRepo, residentRepo, priceSheetRepo, log)
	laundryService := billingapp.NewLaundryService(laundryRepo, residentRepo)
	paymentService := paymentapp.NewPaymentService(paymentRepo, receiptRepo, residentRepo, voucherStore, debtCache, log)
	authService := identityapp.NewAuthService(residentRepo, jwtService, log)
	emailService := notificationapp.NewEmailService(residentRepo, receiptRepo, paymentRepo, receiptStore, sender, log)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	middleware.SetupValidator()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Handlers and routes
	systemHandler := handler.NewSystemHandler(db)
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(systemHandler).
		Register(handler.NewAuthHandler(authService)).
		Register(handler.NewApartmentHandler(apartmentService)).
		Register(handler.NewResidentHandler(residentService)).
		Register(handler.NewPriceHandler(priceService)).
		Register(handler.NewDocumentHandler(documentService)).
		Register(handler.NewReceiptHandler(receiptService)).
		Register(handler.NewLaundryHandler(laundryService)).
		Register(handler.NewPaymentHandler(paymentService)).
		Register(handler.NewMailHandler(emailService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
