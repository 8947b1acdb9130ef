package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"swift-parcel.backend/internal/config"
	"swift-parcel.backend/internal/infrastructure/billing"
	"swift-parcel.backend/internal/infrastructure/repositories"
	"swift-parcel.backend/internal/interfaces/http/handlers"
	"swift-parcel.backend/internal/interfaces/http/middleware"
	"swift-parcel.backend/internal/usecases"
	"swift-parcel.backend/pkg/jwt"
	"swift-parcel.backend/pkg/logger"
	"swift-parcel.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			TranslateError: true,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("connected to PostgreSQL via GORM")
	}

	// Identity verification and payment provider
	verifier := jwt.NewVerifier(cfg.Identity.TokenSecret)
	provider := billing.NewClient(cfg.Billing.BaseURL, cfg.Billing.SecretKey, cfg.Billing.Timeout)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	parcelRepo := repositories.NewParcelRepository(db)
	riderRepo := repositories.NewRiderRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	// Usecases
	userUsecase := usecases.NewUserUsecase(userRepo)
	parcelUsecase := usecases.NewParcelUsecase(parcelRepo)
	riderUsecase := usecases.NewRiderUsecase(riderRepo, userRepo)
	paymentUsecase := usecases.NewPaymentUsecase(paymentRepo, parcelRepo, provider, cfg.Billing.Currency)

	// Handlers
	userHandler := handlers.NewUserHandler(userUsecase)
	parcelHandler := handlers.NewParcelHandler(parcelUsecase)
	riderHandler := handlers.NewRiderHandler(riderUsecase)
	paymentHandler := handlers.NewPaymentHandler(paymentUsecase)

	authMiddleware := middleware.AuthMiddleware(verifier, userRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerRoutes(r, routeDeps{
		userHandler:    userHandler,
		parcelHandler:  parcelHandler,
		riderHandler:   riderHandler,
		paymentHandler: paymentHandler,
		authMiddleware: authMiddleware,
	})

	log.Println("registered routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	log.Printf("swift-parcel backend starting on port %s", cfg.Server.Port)
	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
