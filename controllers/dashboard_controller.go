package controller

import (
	"context"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"gorm.io/gorm"

	"nexthire/engine"
	"nexthire/models"
	"nexthire/utils"
)

type DashboardController struct {
	DB     *gorm.DB
	Streak *utils.StreakCache
	Logger *log.Logger
}

func NewDashboardController(db *gorm.DB, streak *utils.StreakCache, logger *log.Logger) *DashboardController {
	return &DashboardController{
		DB:     db,
		Streak: streak,
		Logger: logger,
	}
}

// userNow returns the current time in the user's timezone so that day
// boundaries for streaks and weekly windows match what the user sees.
func userNow(user *models.User) time.Time {
	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		return time.Now().UTC()
	}
	return time.Now().In(loc)
}

// assembleSnapshot loads everything the dashboard computation needs.
// Each collection degrades to empty on a query error; a dashboard with
// a missing section beats a 500.
func (dc *DashboardController) assembleSnapshot(ctx context.Context, user *models.User) engine.Snapshot {
	var snap engine.Snapshot

	if err := dc.DB.Where("user_id = ?", user.ID).Find(&snap.Contacts).Error; err != nil {
		dc.Logger.Printf("failed to load contacts for user %d: %v", user.ID, err)
		sentry.CaptureException(err)
		snap.Contacts = nil
	}

	if err := dc.DB.Where("user_id = ?", user.ID).Find(&snap.Reminders).Error; err != nil {
		dc.Logger.Printf("failed to load reminders for user %d: %v", user.ID, err)
		sentry.CaptureException(err)
		snap.Reminders = nil
	}

	if err := dc.DB.Where("user_id = ?", user.ID).Find(&snap.Threads).Error; err != nil {
		dc.Logger.Printf("failed to load threads for user %d: %v", user.ID, err)
		sentry.CaptureException(err)
		snap.Threads = nil
	}

	if err := dc.DB.Where("user_id = ?", user.ID).Find(&snap.Goals).Error; err != nil {
		dc.Logger.Printf("failed to load goals for user %d: %v", user.ID, err)
		sentry.CaptureException(err)
		snap.Goals = nil
	}

	if err := dc.DB.Where("user_id = ?", user.ID).
		Order("occurred_at DESC").
		Limit(1000).
		Find(&snap.Activities).Error; err != nil {
		dc.Logger.Printf("failed to load activities for user %d: %v", user.ID, err)
		sentry.CaptureException(err)
		snap.Activities = nil
	}

	snap.CachedLongestStreak = dc.Streak.GetLongest(ctx, user.ID)

	return snap
}

func (dc *DashboardController) computeDashboard(ctx context.Context, user *models.User) engine.Dashboard {
	snap := dc.assembleSnapshot(ctx, user)
	dashboard := engine.Recompute(snap, userNow(user))

	// Persist the reconciled longest streak so it survives activity
	// retention.
	if dashboard.Streak.Longest > snap.CachedLongestStreak {
		dc.Streak.SetLongest(ctx, user.ID, dashboard.Streak.Longest)
	}

	return dashboard
}

// GetDashboard returns the full dashboard in one response.
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.JSON(utils.SuccessResponse(dc.computeDashboard(c.Context(), user)))
}

// GetFollowUps returns just the prioritized follow-up list.
func (dc *DashboardController) GetFollowUps(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	dashboard := dc.computeDashboard(c.Context(), user)
	return c.JSON(utils.SuccessResponse(dashboard.FollowUps))
}

// GetQuickWins returns the quick-win counters.
func (dc *DashboardController) GetQuickWins(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	dashboard := dc.computeDashboard(c.Context(), user)
	return c.JSON(utils.SuccessResponse(dashboard.QuickWins))
}

// GetStreak returns the current and longest activity streaks.
func (dc *DashboardController) GetStreak(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	dashboard := dc.computeDashboard(c.Context(), user)
	return c.JSON(utils.SuccessResponse(dashboard.Streak))
}

// GetWeeklySummary returns this week's activity counts.
func (dc *DashboardController) GetWeeklySummary(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	dashboard := dc.computeDashboard(c.Context(), user)
	return c.JSON(utils.SuccessResponse(dashboard.Weekly))
}

// HandleLiveDashboard streams dashboard recomputations over a websocket.
// The client gets a fresh dashboard immediately and then every 30
// seconds until it disconnects.
func (dc *DashboardController) HandleLiveDashboard(c *websocket.Conn) {
	defer c.Close()

	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return
	}

	ctx := context.Background()

	push := func() bool {
		dashboard := dc.computeDashboard(ctx, user)
		if err := c.WriteJSON(dashboard); err != nil {
			dc.Logger.Printf("live dashboard write failed for user %d: %v", user.ID, err)
			return false
		}
		return true
	}

	if !push() {
		return
	}

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	// Reads are discarded; the socket is push-only. The read loop exists
	// to notice the client going away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if !push() {
				return
			}
		}
	}
}
