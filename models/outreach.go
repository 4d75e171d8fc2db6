package models

import (
	"time"

	"gorm.io/gorm"
)

// Outreach thread statuses.
const (
	ThreadNoReplyYet    = "no_reply_yet"    // draft/sent, unanswered
	ThreadWaitingOnThem = "waiting_on_them" // sent, no reply yet
	ThreadWaitingOnYou  = "waiting_on_you"  // they replied, action needed
	ThreadNewReply      = "new_reply"       // unread incoming reply
	ThreadArchived      = "archived"        // resolved, excluded from follow-ups
)

// OutreachThread represents one outreach conversation. PublicID is the
// thread's own identifier and is NOT in the contact id space; the two
// id spaces only collide by coincidence (see engine.MergeCandidates).
type OutreachThread struct {
	gorm.Model
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	PublicID string `gorm:"uniqueIndex;not null" json:"public_id"`

	ContactName string `json:"contact_name"`
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`

	Status         string     `gorm:"not null;default:'no_reply_yet';index" json:"status"`
	HasDraft       bool       `gorm:"default:false" json:"has_draft"`
	LastActivityAt *time.Time `json:"last_activity_at"`

	// Relations
	User User `json:"-"`
}

// ValidThreadStatus reports whether s is a known status value.
func ValidThreadStatus(s string) bool {
	switch s {
	case ThreadNoReplyYet, ThreadWaitingOnThem, ThreadWaitingOnYou, ThreadNewReply, ThreadArchived:
		return true
	}
	return false
}
