package engine

import (
	"time"

	"nexthire/models"
)

// CountQuickWins derives the three low-effort task counts from the same
// snapshot the follow-up queue is built from, so the two always agree.
// These are presentation hints, not part of the priority queue.
func CountQuickWins(threads []models.OutreachThread, contacts []models.Contact, activities []models.Activity, now time.Time) QuickWins {
	var q QuickWins

	for _, t := range threads {
		if t.HasDraft {
			q.EmailsReady++
		}
	}

	start, end := WeekWindow(now)
	for _, a := range activities {
		if a.Type != models.ActivityCoffeeChat {
			continue
		}
		if a.OccurredAt.Before(start) || !a.OccurredAt.Before(end) {
			continue
		}
		q.CoffeeChatsNeedPrep++
	}

	q.NewMatches = DistinctFirms(contacts)

	q.HighlightEmails = q.EmailsReady > 0
	q.HighlightCoffeeChats = q.CoffeeChatsNeedPrep > 0
	q.HighlightNewMatches = q.NewMatches > 0
	return q
}
