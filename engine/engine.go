// Package engine derives the dashboard view from raw, independently
// fetched collections: reminders, contacts, outreach threads, goals,
// and the activity log. Every function is pure with respect to its
// explicit inputs — no I/O, no clocks, no hidden state — so a
// recomputation can be triggered from any input arrival and the last
// one simply wins.
package engine

import (
	"time"

	"nexthire/models"
)

// Recompute runs the full pipeline over one snapshot: normalize both
// candidate sources, merge and rank them, and derive every summary
// metric. Given the same snapshot and now, the output is identical.
func Recompute(s Snapshot, now time.Time) Dashboard {
	fromReminders := CandidatesFromReminders(s.Reminders, s.Contacts)
	fromThreads := CandidatesFromThreads(s.Threads, now)
	followUps := RankCandidates(MergeCandidates(fromReminders, fromThreads))

	coffeeChats := 0
	for _, a := range s.Activities {
		if a.Type == models.ActivityCoffeeChat {
			coffeeChats++
		}
	}
	firms := DistinctFirms(s.Contacts)

	return Dashboard{
		FollowUps:      followUps,
		GoalProgress:   ComputeGoalProgress(s.Goals, s.Activities),
		Weekly:         ComputeWeeklySummary(s.Activities, now),
		Streak:         ComputeStreak(s.Activities, s.CachedLongestStreak, now),
		QuickWins:      CountQuickWins(s.Threads, s.Contacts, s.Activities, now),
		TimeSavedHours: TimeSavedHours(len(s.Contacts), firms, coffeeChats),
	}
}
