package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
	"gorm.io/gorm"

	controller "nexthire/controllers"
	"nexthire/middleware"
	"nexthire/utils"
)

func SetupAPIRoutes(app *fiber.App, db *gorm.DB, streak *utils.StreakCache) {
	// Initialize controllers with their respective loggers
	dashboardController := controller.NewDashboardController(db, streak, log.New(os.Stdout, "DASHBOARD: ", log.LstdFlags))
	contactController := controller.NewContactController(db, log.New(os.Stdout, "CONTACT: ", log.LstdFlags))
	outreachController := controller.NewOutreachController(db, log.New(os.Stdout, "OUTREACH: ", log.LstdFlags))
	goalController := controller.NewGoalController(db, log.New(os.Stdout, "GOAL: ", log.LstdFlags))
	activityController := controller.NewActivityController(db, log.New(os.Stdout, "ACTIVITY: ", log.LstdFlags))

	// API group with versioning and protection
	api := app.Group("/api/v1", middleware.Protected(), logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Dashboard routes with rate limiting
	dashboard := api.Group("/dashboard", middleware.DashboardRateLimiter())
	dashboard.Get("/", dashboardController.GetDashboard)
	dashboard.Get("/follow-ups", dashboardController.GetFollowUps)
	dashboard.Get("/quick-wins", dashboardController.GetQuickWins)
	dashboard.Get("/streak", dashboardController.GetStreak)
	dashboard.Get("/weekly-summary", dashboardController.GetWeeklySummary)

	// WebSocket route for live dashboard updates. Runs inside the
	// protected group so Locals("user") is set before the upgrade.
	api.Get("/dashboard/live", websocket.New(dashboardController.HandleLiveDashboard))

	// Contact routes
	contact := api.Group("/contacts")
	contact.Post("/", contactController.CreateContact)
	contact.Get("/", contactController.GetContacts)
	contact.Get("/:id", contactController.GetContact)
	contact.Put("/:id", contactController.UpdateContact)
	contact.Post("/:id/touch", contactController.TouchContact)
	contact.Delete("/:id", contactController.DeleteContact)

	// Outreach thread routes
	outreach := api.Group("/outreach")
	outreach.Post("/", outreachController.CreateThread)
	outreach.Get("/", outreachController.GetThreads)
	outreach.Put("/:id", outreachController.UpdateThread)
	outreach.Post("/:id/archive", outreachController.ArchiveThread)

	// Goal routes
	goal := api.Group("/goals")
	goal.Get("/", goalController.GetGoals)
	goal.Post("/", goalController.CreateGoal)
	goal.Put("/:id", goalController.UpdateGoal)
	goal.Get("/progress", goalController.GetGoalProgress)

	// Activity routes
	activity := api.Group("/activities")
	activity.Get("/", activityController.GetActivities)
	activity.Post("/", activityController.CreateActivity)

	// Log initialization
	log.Println("API routes initialized successfully")
}

func SetupRoutes(app *fiber.App, db *gorm.DB, streak *utils.StreakCache) {
	// Setup health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup API routes
	SetupAPIRoutes(app, db, streak)

	// Setup 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})
}
