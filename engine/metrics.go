package engine

import (
	"math"
	"sort"
	"time"

	"nexthire/models"
)

// Per-action minute weights behind the time-saved estimate. The numbers
// are illustrative, not billable, and changing them is a product
// decision.
const (
	minutesPerContact    = 20
	minutesPerFirm       = 2
	minutesPerCoffeeChat = 30
)

// TimeSavedHours estimates hours saved from raw counts, rounded to one
// decimal.
func TimeSavedHours(contacts, firms, coffeeChats int) float64 {
	minutes := contacts*minutesPerContact + firms*minutesPerFirm + coffeeChats*minutesPerCoffeeChat
	return math.Round(float64(minutes)/60*10) / 10
}

// DistinctFirms counts the distinct non-empty companies across contacts.
func DistinctFirms(contacts []models.Contact) int {
	seen := make(map[string]struct{})
	for _, c := range contacts {
		if c.Company == "" {
			continue
		}
		seen[c.Company] = struct{}{}
	}
	return len(seen)
}

// WeekWindow returns the Monday 00:00 start (inclusive) and next Monday
// 00:00 end (exclusive) of the week containing now, in now's location.
func WeekWindow(now time.Time) (time.Time, time.Time) {
	daysPastMonday := (int(now.Weekday()) + 6) % 7
	start := time.Date(now.Year(), now.Month(), now.Day()-daysPastMonday, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 7)
}

// ComputeWeeklySummary buckets activities into the current week and
// counts each type. Recomputed on every pass, never cached.
func ComputeWeeklySummary(activities []models.Activity, now time.Time) WeeklySummary {
	start, end := WeekWindow(now)
	var s WeeklySummary
	for _, a := range activities {
		if a.OccurredAt.Before(start) || !a.OccurredAt.Before(end) {
			continue
		}
		switch a.Type {
		case models.ActivityContactAdded:
			s.ContactsAdded++
		case models.ActivityFirmAdded:
			s.FirmsAdded++
		case models.ActivityCoffeeChat:
			s.CoffeeChats++
		case models.ActivityOutreachSent:
			s.OutreachSent++
		}
	}
	return s
}

// ComputeStreak derives the current and longest consecutive-day
// activity runs. The current streak is the maximal trailing run ending
// today or yesterday; a gap of two or more days resets it to zero.
// The longest streak reconciles the cached value against the run
// lengths found in the snapshot and keeps the larger, so it never
// decreases even when old activity rows age out of the snapshot.
func ComputeStreak(activities []models.Activity, cachedLongest int, now time.Time) StreakData {
	loc := now.Location()
	seen := make(map[time.Time]struct{}, len(activities))
	for _, a := range activities {
		t := a.OccurredAt.In(loc)
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		seen[day] = struct{}{}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	current := 0
	cursor := today
	if _, ok := seen[cursor]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}
	for {
		if _, ok := seen[cursor]; !ok {
			break
		}
		current++
		cursor = cursor.AddDate(0, 0, -1)
	}

	longest := longestRun(seen)
	if cachedLongest > longest {
		longest = cachedLongest
	}
	if current > longest {
		longest = current
	}

	return StreakData{Current: current, Longest: longest}
}

func longestRun(days map[time.Time]struct{}) int {
	if len(days) == 0 {
		return 0
	}
	sorted := make([]time.Time, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].AddDate(0, 0, 1).Equal(sorted[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// ComputeGoalProgress counts qualifying activities inside each goal's
// window. Percentage is clamped into [0,100]; a zero or negative target
// yields 0 rather than dividing by zero.
func ComputeGoalProgress(goals []models.Goal, activities []models.Activity) []GoalProgress {
	out := make([]GoalProgress, 0, len(goals))
	for _, g := range goals {
		want := models.GoalActivityType(g.Type)
		current := 0
		for _, a := range activities {
			if a.Type != want {
				continue
			}
			if a.OccurredAt.Before(g.StartDate) || a.OccurredAt.After(g.EndDate) {
				continue
			}
			current++
		}

		pct := 0.0
		if g.Target > 0 {
			pct = 100 * float64(current) / float64(g.Target)
			if pct > 100 {
				pct = 100
			}
			if pct < 0 {
				pct = 0
			}
		}
		out = append(out, GoalProgress{Goal: g, Current: current, Percentage: pct})
	}
	return out
}
