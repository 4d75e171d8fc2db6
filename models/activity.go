package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity types. These feed the streak, weekly summary, and goal
// progress calculators.
const (
	ActivityContactAdded = "contact_added"
	ActivityFirmAdded    = "firm_added"
	ActivityCoffeeChat   = "coffee_chat"
	ActivityOutreachSent = "outreach_sent"
)

// Activity is one logged user action.
type Activity struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"user_id"`

	Type       string    `gorm:"not null;index" json:"type"`
	Summary    string    `json:"summary"`
	OccurredAt time.Time `gorm:"not null;index" json:"occurred_at"`

	// Relations
	User User `json:"-"`
}

// ValidActivityType reports whether t is a known activity type.
func ValidActivityType(t string) bool {
	switch t {
	case ActivityContactAdded, ActivityFirmAdded, ActivityCoffeeChat, ActivityOutreachSent:
		return true
	}
	return false
}

// GoalActivityType maps a goal type to the activity type that counts
// toward it.
func GoalActivityType(goalType string) string {
	switch goalType {
	case GoalContacts:
		return ActivityContactAdded
	case GoalFirms:
		return ActivityFirmAdded
	case GoalCoffeeChats:
		return ActivityCoffeeChat
	case GoalOutreach:
		return ActivityOutreachSent
	}
	return ""
}
