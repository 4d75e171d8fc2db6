package main

import (
	"context"
	"log"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"nexthire/config"
	"nexthire/middleware"
	"nexthire/routes"
	"nexthire/utils"
	"nexthire/worker"
)

func main() {
	// Initialize logger
	logger := log.New(os.Stdout, "NEXTHIRE: ", log.Ldate|log.Ltime|log.Lshortfile)

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	if err := config.ConnectDB(); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize Redis (optional; features degrade without it)
	if err := config.ConnectRedis(); err != nil {
		logger.Printf("Redis unavailable, continuing without cache: %v", err)
	}

	// Initialize Sentry for error reporting
	if config.AppConfig.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         config.AppConfig.SentryDSN,
			Environment: config.AppConfig.Environment,
		}); err != nil {
			logger.Printf("Sentry initialization failed: %v", err)
		}
	}

	// Create Fiber app
	app := fiber.New()

	// Add CORS middleware
	app.Use(middleware.CORS())

	streakCache := utils.NewStreakCache(config.Redis)

	// Initialize and start background workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reminderWorker := worker.NewReminderWorker(config.DB, log.New(os.Stdout, "REMINDER: ", log.LstdFlags))
	go reminderWorker.Start(ctx)

	digestWorker := worker.NewDigestWorker(config.DB, streakCache, log.New(os.Stdout, "DIGEST: ", log.LstdFlags))
	go digestWorker.Start(ctx)

	// Setup routes
	routes.SetupRoutes(app, config.DB, streakCache)

	// Health check endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "running",
			"version": "1.0.0",
		})
	})

	// Start server
	logger.Printf("🚀 Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
