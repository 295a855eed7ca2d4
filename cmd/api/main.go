package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/teampulse/team-pulse/pkg/validator"

	"github.com/teampulse/team-pulse/internal/adapter/handler"
	"github.com/teampulse/team-pulse/internal/adapter/repository"
	"github.com/teampulse/team-pulse/internal/infrastructure/cache"
	"github.com/teampulse/team-pulse/internal/infrastructure/database"
	httpmw "github.com/teampulse/team-pulse/internal/infrastructure/http/middleware"
	agendaUsecase "github.com/teampulse/team-pulse/internal/usecase/agenda"
	directoryUsecase "github.com/teampulse/team-pulse/internal/usecase/directory"
	meetingUsecase "github.com/teampulse/team-pulse/internal/usecase/meeting"
	"github.com/teampulse/team-pulse/pkg/config"
	"github.com/teampulse/team-pulse/pkg/jwt"
)

// @title           Team Pulse API
// @version         1.0
// @description     Agenda cross-reference engine for the team management dashboard

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate from CI.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Running migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize name cache. Redis is an optimization here; a missing
	// Redis degrades to an in-process cache, not a dead API.
	log.Println("📦 Connecting to Redis...")
	var nameCache cache.Store
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Printf("⚠️  Redis unavailable, falling back to in-memory cache: %v", err)
		nameCache = cache.NewMemoryStore()
	} else {
		defer redisClient.Close()
		nameCache = cache.NewRedisStore(redisClient)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	directoryRepo := repository.NewDirectoryRepository(db)

	// Initialize services
	log.Println("📋 Initializing services...")
	agendaService := agendaUsecase.NewService(meetingRepo, logger, cfg.Agenda.RecentItems)
	meetingService := meetingUsecase.NewService(meetingRepo, logger)
	directoryService := directoryUsecase.NewService(directoryRepo, nameCache, logger, cfg.Agenda.NameCacheTTL)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	agendaHandler := handler.NewAgendaHandler(agendaService, directoryService, logger)
	meetingHandler := handler.NewMeetingHandler(meetingService, logger)
	directoryHandler := handler.NewDirectoryHandler(directoryService, agendaService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	authEchoMW := httpmw.EchoAuth(jwtManager)

	router := handler.NewRouter(cfg, agendaHandler, meetingHandler, directoryHandler, authEchoMW)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
