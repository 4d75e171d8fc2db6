package worker

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nexthire/config"
	"nexthire/engine"
	"nexthire/models"
)

// ReminderWorker periodically rebuilds follow-up reminders from the
// contact table. A contact earns a reminder once its last touch is at
// least the configured threshold old; touching the contact again makes
// the row stale and it is removed on the next sweep.
type ReminderWorker struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewReminderWorker(db *gorm.DB, logger *log.Logger) *ReminderWorker {
	return &ReminderWorker{
		db:     db,
		logger: logger,
	}
}

func (rw *ReminderWorker) Start(ctx context.Context) {
	rw.logger.Println("Starting reminder worker...")
	ticker := time.NewTicker(config.AppConfig.ReminderInterval)

	// Sweep once at startup so a restarted service does not wait a full
	// interval before reminders exist.
	rw.sweep()

	for {
		select {
		case <-ticker.C:
			rw.sweep()
		case <-ctx.Done():
			rw.logger.Println("Stopping reminder worker...")
			ticker.Stop()
			return
		}
	}
}

// ContactDueForReminder reports whether a contact's last touch is old
// enough to warrant a follow-up. Contacts that have never been touched
// are not due; there is nothing to follow up on.
func ContactDueForReminder(contact *models.Contact, thresholdDays int, now time.Time) bool {
	if contact.LastContactedAt == nil {
		return false
	}
	return engine.DaysSince(contact.LastContactedAt, now) >= thresholdDays
}

// BuildReminder snapshots a due contact into a reminder row.
func BuildReminder(contact *models.Contact, now time.Time) models.Reminder {
	return models.Reminder{
		UserID:           contact.UserID,
		ContactID:        contact.ID,
		ContactName:      contact.FullName(),
		Firm:             contact.Company,
		DaysSinceContact: engine.DaysSince(contact.LastContactedAt, now),
		LastContactAt:    contact.LastContactedAt,
	}
}

func (rw *ReminderWorker) sweep() {
	now := time.Now()
	threshold := config.AppConfig.ReminderThresholdDays
	cutoff := now.Add(-time.Duration(threshold) * 24 * time.Hour)

	// Reminders for contacts touched since the cutoff are stale.
	res := rw.db.
		Where("contact_id IN (?)",
			rw.db.Model(&models.Contact{}).Select("id").Where("last_contacted_at > ?", cutoff),
		).
		Delete(&models.Reminder{})
	if res.Error != nil {
		rw.logger.Printf("Failed to clear stale reminders: %v", res.Error)
	} else if res.RowsAffected > 0 {
		rw.logger.Printf("Cleared %d stale reminders", res.RowsAffected)
	}

	var contacts []models.Contact
	if err := rw.db.
		Where("last_contacted_at IS NOT NULL AND last_contacted_at <= ?", cutoff).
		Find(&contacts).Error; err != nil {
		rw.logger.Printf("Failed to fetch due contacts: %v", err)
		return
	}

	if len(contacts) == 0 {
		return
	}

	reminders := make([]models.Reminder, 0, len(contacts))
	for i := range contacts {
		if !ContactDueForReminder(&contacts[i], threshold, now) {
			continue
		}
		reminders = append(reminders, BuildReminder(&contacts[i], now))
	}

	if len(reminders) == 0 {
		return
	}

	// Upsert so repeated sweeps refresh the day counter instead of
	// stacking duplicate rows.
	if err := rw.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "contact_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"contact_name", "firm", "days_since_contact", "last_contact_at", "updated_at",
		}),
	}).Create(&reminders).Error; err != nil {
		rw.logger.Printf("Failed to upsert reminders: %v", err)
		return
	}

	rw.logger.Printf("Refreshed %d reminders", len(reminders))
}
