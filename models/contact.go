package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Contact represents a networking contact owned by a user. Rows are
// created by the search/import flows and are read-only to the follow-up
// engine.
type Contact struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"user_id"`

	Email     string `gorm:"index" json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	JobTitle  string `json:"job_title"`

	LastContactedAt *time.Time `json:"last_contacted_at"`

	// Engagement signal. Older imports populated only one of these
	// fields, so they are kept side by side and collapsed by Engaged().
	EmailOpened    bool       `gorm:"default:false" json:"email_opened"`
	HasUnreadReply bool       `gorm:"default:false" json:"has_unread_reply"`
	EmailOpenedAt  *time.Time `json:"email_opened_at"`

	// Relations
	User      User       `json:"-"`
	Reminders []Reminder `gorm:"foreignKey:ContactID" json:"-"`
}

// Engaged reports whether any engagement signal is set: an open flag,
// an unread reply, or a recorded open timestamp. All three shapes occur
// in imported data and any one of them counts.
func (c *Contact) Engaged() bool {
	return c.EmailOpened || c.HasUnreadReply || c.EmailOpenedAt != nil
}

// FullName returns the structured name, or "" when both parts are empty.
func (c *Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
