package models

import (
	"gorm.io/gorm"
)

// User represents a job seeker account. Authentication and account
// provisioning live in a separate service; this backend only verifies
// bearer tokens and reads the row they reference.
type User struct {
	gorm.Model

	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Name     string `json:"name"`
	Timezone string `gorm:"default:'UTC'" json:"timezone"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	// Relations
	Contacts        []Contact        `gorm:"foreignKey:UserID" json:"contacts,omitempty"`
	Reminders       []Reminder       `gorm:"foreignKey:UserID" json:"reminders,omitempty"`
	OutreachThreads []OutreachThread `gorm:"foreignKey:UserID" json:"outreach_threads,omitempty"`
	Goals           []Goal           `gorm:"foreignKey:UserID" json:"goals,omitempty"`
	Activities      []Activity       `gorm:"foreignKey:UserID" json:"activities,omitempty"`
}
