package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/haiminhdev/meeting-relay/internal/adapter/handler"
	"github.com/haiminhdev/meeting-relay/internal/infrastructure/external/notion"
	"github.com/haiminhdev/meeting-relay/internal/infrastructure/external/zapi"
	"github.com/haiminhdev/meeting-relay/internal/usecase/relay"
	"github.com/haiminhdev/meeting-relay/pkg/config"
	pkgvalidator "github.com/haiminhdev/meeting-relay/pkg/validator"
)

// @title           Meeting Relay API
// @version         1.0
// @description     Relays meeting-end webhook events into knowledge-base updates and chat notifications

// @host      localhost:8080
// @BasePath  /

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
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize external API clients
	log.Println("📚 Initializing Notion client...")
	notionClient := notion.NewClient(&cfg.Notion)

	log.Println("📱 Initializing Z-API client...")
	zapiClient := zapi.NewClient(&cfg.ZAPI)
	if len(cfg.Notify.AdminPhones) == 0 {
		log.Println("⚠️  No ADMIN_PHONES configured; notifications will be skipped")
	}

	// Initialize relay service
	log.Println("🔁 Initializing relay service...")
	relayService := relay.NewService(
		notionClient,
		zapiClient,
		cfg.Notify.AdminPhones,
		cfg.Notify.Location,
		logger,
	)

	// Initialize webhook handler
	log.Println("🪝 Initializing webhook handler...")
	webhookHandler := handler.NewWebhookHandler(relayService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, webhookHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.Addr()
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
