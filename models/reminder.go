package models

import (
	"time"

	"gorm.io/gorm"
)

// Reminder is a follow-up suggestion keyed by a contact. Rows are
// produced and refreshed by the reminder worker; the engine treats each
// row as a point-in-time snapshot and never mutates it.
type Reminder struct {
	gorm.Model
	UserID    uint `gorm:"not null;uniqueIndex:idx_reminder_user_contact" json:"user_id"`
	ContactID uint `gorm:"not null;uniqueIndex:idx_reminder_user_contact" json:"contact_id"`

	ContactName      string     `json:"contact_name"`
	Firm             string     `json:"firm"`
	DaysSinceContact int        `gorm:"default:0" json:"days_since_contact"`
	LastContactAt    *time.Time `json:"last_contact_at"`

	// Relations
	User    User    `json:"-"`
	Contact Contact `json:"-"`
}
