package worker

import (
	"context"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"gorm.io/gorm"

	"nexthire/config"
	"nexthire/engine"
	"nexthire/models"
	"nexthire/utils"
)

// DigestWorker emails each active user a weekly recap of their
// dashboard. The send window is one configured hour on one configured
// weekday; the worker wakes every hour and checks whether it has
// arrived.
type DigestWorker struct {
	db     *gorm.DB
	streak *utils.StreakCache
	logger *log.Logger

	lastSent time.Time
}

func NewDigestWorker(db *gorm.DB, streak *utils.StreakCache, logger *log.Logger) *DigestWorker {
	return &DigestWorker{
		db:     db,
		streak: streak,
		logger: logger,
	}
}

func (dw *DigestWorker) Start(ctx context.Context) {
	dw.logger.Println("Starting digest worker...")
	ticker := time.NewTicker(1 * time.Hour)

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			if DigestDue(now, dw.lastSent, config.AppConfig.DigestWeekday, config.AppConfig.DigestHour) {
				dw.sendDigests(ctx, now)
				dw.lastSent = now
			}
		case <-ctx.Done():
			dw.logger.Println("Stopping digest worker...")
			ticker.Stop()
			return
		}
	}
}

// DigestDue reports whether the send window is open and no digest went
// out in the last day. The one-day guard keeps an hourly ticker from
// sending twice inside the same window.
func DigestDue(now, lastSent time.Time, weekday, hour int) bool {
	if int(now.Weekday()) != weekday || now.Hour() != hour {
		return false
	}
	return now.Sub(lastSent) > 24*time.Hour
}

func (dw *DigestWorker) sendDigests(ctx context.Context, now time.Time) {
	var users []models.User
	if err := dw.db.Where("is_active = ?", true).Find(&users).Error; err != nil {
		dw.logger.Printf("Failed to fetch users for digest: %v", err)
		sentry.CaptureException(err)
		return
	}

	sent := 0
	for i := range users {
		user := &users[i]

		dashboard, err := dw.buildDashboard(ctx, user, now)
		if err != nil {
			dw.logger.Printf("Failed to build digest for user %d: %v", user.ID, err)
			continue
		}

		if err := utils.SendWeeklyDigest(user, dashboard); err != nil {
			dw.logger.Printf("Failed to send digest to user %d: %v", user.ID, err)
			sentry.CaptureException(err)
			continue
		}
		sent++
	}

	dw.logger.Printf("Sent %d weekly digests", sent)
}

func (dw *DigestWorker) buildDashboard(ctx context.Context, user *models.User, now time.Time) (engine.Dashboard, error) {
	var snap engine.Snapshot

	if err := dw.db.Where("user_id = ?", user.ID).Find(&snap.Contacts).Error; err != nil {
		return engine.Dashboard{}, err
	}
	if err := dw.db.Where("user_id = ?", user.ID).Find(&snap.Reminders).Error; err != nil {
		return engine.Dashboard{}, err
	}
	if err := dw.db.Where("user_id = ?", user.ID).Find(&snap.Threads).Error; err != nil {
		return engine.Dashboard{}, err
	}
	if err := dw.db.Where("user_id = ?", user.ID).Find(&snap.Goals).Error; err != nil {
		return engine.Dashboard{}, err
	}
	if err := dw.db.Where("user_id = ?", user.ID).
		Order("occurred_at DESC").
		Limit(1000).
		Find(&snap.Activities).Error; err != nil {
		return engine.Dashboard{}, err
	}
	snap.CachedLongestStreak = dw.streak.GetLongest(ctx, user.ID)

	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		loc = time.UTC
	}

	return engine.Recompute(snap, now.In(loc)), nil
}
