package engine

import (
	"nexthire/models"
)

// Priority is the three-tier urgency classification driving visual
// emphasis and sort order.
type Priority string

const (
	PriorityHot    Priority = "hot"
	PriorityWarm   Priority = "warm"
	PriorityNormal Priority = "normal"
)

// Rank returns the sort rank of the priority: hot sorts first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHot:
		return 0
	case PriorityWarm:
		return 1
	default:
		return 2
	}
}

// FollowUpCandidate is the unified follow-up recommendation consumed by
// the dashboard. Candidates are rebuilt from scratch on every
// recomputation and are never persisted; the ID is only reused across
// recomputations so the UI can keep list items stable.
type FollowUpCandidate struct {
	ID               string   `json:"id"`
	PersonName       string   `json:"person_name"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	DaysSinceContact int      `json:"days_since_contact"`
	Priority         Priority `json:"priority"`
	EmailOpened      bool     `json:"email_opened"`
}

// GoalProgress pairs a goal with its in-window activity count.
// Percentage is always clamped into [0,100].
type GoalProgress struct {
	Goal       models.Goal `json:"goal"`
	Current    int         `json:"current"`
	Percentage float64     `json:"percentage"`
}

// WeeklySummary counts each activity type inside the current
// Monday-Sunday week.
type WeeklySummary struct {
	ContactsAdded int `json:"contacts_added"`
	FirmsAdded    int `json:"firms_added"`
	CoffeeChats   int `json:"coffee_chats"`
	OutreachSent  int `json:"outreach_sent"`
}

// StreakData holds the consecutive-day activity run lengths.
type StreakData struct {
	Current int `json:"current_streak"`
	Longest int `json:"longest_streak"`
}

// QuickWins are low-effort actionable counts shown next to the
// follow-up queue. The highlight flags gate UI emphasis.
type QuickWins struct {
	EmailsReady          int  `json:"emails_ready"`
	CoffeeChatsNeedPrep  int  `json:"coffee_chats_need_prep"`
	NewMatches           int  `json:"new_matches"`
	HighlightEmails      bool `json:"highlight_emails"`
	HighlightCoffeeChats bool `json:"highlight_coffee_chats"`
	HighlightNewMatches  bool `json:"highlight_new_matches"`
}

// Snapshot is the point-in-time view of every raw collection the engine
// consumes. Each field is the last successfully fetched value; a failed
// fetch degrades to an empty slice upstream, never into an error here.
type Snapshot struct {
	Contacts            []models.Contact
	Reminders           []models.Reminder
	Threads             []models.OutreachThread
	Goals               []models.Goal
	Activities          []models.Activity
	CachedLongestStreak int
}

// Dashboard is the full derived view handed to the presentation layer.
type Dashboard struct {
	FollowUps      []FollowUpCandidate `json:"follow_ups"`
	GoalProgress   []GoalProgress      `json:"goal_progress"`
	Weekly         WeeklySummary       `json:"weekly_summary"`
	Streak         StreakData          `json:"streak"`
	QuickWins      QuickWins           `json:"quick_wins"`
	TimeSavedHours float64             `json:"time_saved_hours"`
}
