package engine

import (
	"strconv"
	"time"

	"nexthire/models"
)

// Placeholder values for records missing display fields. Missing data
// renders a placeholder, never a blank gap.
const (
	UnknownContactName = "Unknown Contact"
	DefaultTitle       = "Professional"
	DefaultCompany     = "Company"
)

// CandidatesFromReminders maps reminder rows into follow-up candidates,
// enriching each from its matching contact when one exists. A reminder
// whose contact is gone still produces a candidate with placeholder
// fields.
func CandidatesFromReminders(reminders []models.Reminder, contacts []models.Contact) []FollowUpCandidate {
	byID := make(map[uint]*models.Contact, len(contacts))
	for i := range contacts {
		byID[contacts[i].ID] = &contacts[i]
	}

	out := make([]FollowUpCandidate, 0, len(reminders))
	for _, r := range reminders {
		contact := byID[r.ContactID]

		name := r.ContactName
		title := DefaultTitle
		company := r.Firm
		opened := false
		if contact != nil {
			if full := contact.FullName(); full != "" {
				name = full
			}
			if contact.JobTitle != "" {
				title = contact.JobTitle
			}
			if company == "" {
				company = contact.Company
			}
			opened = contact.Engaged()
		}
		if name == "" {
			name = UnknownContactName
		}
		if company == "" {
			company = DefaultCompany
		}

		days := r.DaysSinceContact
		if days < 0 {
			days = 0
		}

		out = append(out, FollowUpCandidate{
			ID:               strconv.FormatUint(uint64(r.ContactID), 10),
			PersonName:       name,
			Title:            title,
			Company:          company,
			DaysSinceContact: days,
			Priority:         ClassifyAge(days),
			EmailOpened:      opened,
		})
	}
	return out
}

// CandidatesFromThreads maps open outreach threads into follow-up
// candidates. Archived threads are excluded; everything else still
// needs some action from the user.
func CandidatesFromThreads(threads []models.OutreachThread, now time.Time) []FollowUpCandidate {
	out := make([]FollowUpCandidate, 0, len(threads))
	for _, t := range threads {
		switch t.Status {
		case models.ThreadWaitingOnThem, models.ThreadNewReply, models.ThreadWaitingOnYou, models.ThreadNoReplyYet:
		default:
			continue
		}

		name := t.ContactName
		if name == "" {
			name = UnknownContactName
		}
		title := t.JobTitle
		if title == "" {
			title = DefaultTitle
		}
		company := t.Company
		if company == "" {
			company = DefaultCompany
		}

		days := DaysSince(t.LastActivityAt, now)

		out = append(out, FollowUpCandidate{
			ID:               t.PublicID,
			PersonName:       name,
			Title:            title,
			Company:          company,
			DaysSinceContact: days,
			Priority:         ClassifyThread(t.Status, days),
			EmailOpened:      t.Status == models.ThreadNewReply,
		})
	}
	return out
}
