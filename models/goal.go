package models

import (
	"time"

	"gorm.io/gorm"
)

// Goal types.
const (
	GoalContacts    = "contacts"
	GoalFirms       = "firms"
	GoalCoffeeChats = "coffee_chats"
	GoalOutreach    = "outreach"
)

// Goal periods.
const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// Goal is a target definition for one activity type over one period.
// Goals are created once per period (auto-created with defaults when
// absent) and are read-only to the engine.
type Goal struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"user_id"`

	Type      string    `gorm:"not null;index" json:"type"`
	Target    int       `gorm:"not null" json:"target"`
	Period    string    `gorm:"not null;default:'weekly'" json:"period"`
	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`

	// Relations
	User User `json:"-"`
}

// ValidGoalType reports whether t is a known goal type.
func ValidGoalType(t string) bool {
	switch t {
	case GoalContacts, GoalFirms, GoalCoffeeChats, GoalOutreach:
		return true
	}
	return false
}

// DefaultGoals returns the default weekly goal set for a user over the
// given window.
func DefaultGoals(userID uint, start, end time.Time) []Goal {
	targets := map[string]int{
		GoalContacts:    10,
		GoalFirms:       5,
		GoalCoffeeChats: 2,
		GoalOutreach:    15,
	}
	goals := make([]Goal, 0, len(targets))
	for _, t := range []string{GoalContacts, GoalFirms, GoalCoffeeChats, GoalOutreach} {
		goals = append(goals, Goal{
			UserID:    userID,
			Type:      t,
			Target:    targets[t],
			Period:    PeriodWeekly,
			StartDate: start,
			EndDate:   end,
		})
	}
	return goals
}
