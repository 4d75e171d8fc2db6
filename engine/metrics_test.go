package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexthire/models"
)

func activityAt(kind string, t time.Time) models.Activity {
	return models.Activity{Type: kind, OccurredAt: t}
}

func TestTimeSavedHours(t *testing.T) {
	// 10*20 + 5*2 + 2*30 = 270 minutes = 4.5h
	assert.Equal(t, 4.5, TimeSavedHours(10, 5, 2))
	assert.Equal(t, 0.0, TimeSavedHours(0, 0, 0))
	// 1 contact = 20 minutes, rounds to 0.3
	assert.Equal(t, 0.3, TimeSavedHours(1, 0, 0))
}

func TestDistinctFirms(t *testing.T) {
	contacts := []models.Contact{
		{Company: "Acme"},
		{Company: "Acme"},
		{Company: "Globex"},
		{Company: ""},
	}
	assert.Equal(t, 2, DistinctFirms(contacts))
}

func TestWeekWindow(t *testing.T) {
	start, end := WeekWindow(testNow) // Wednesday Jan 17 2024
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC), end)

	// A Monday starts its own week.
	monday := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	start, _ = WeekWindow(monday)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), start)

	// A Sunday belongs to the week that started six days earlier.
	sunday := time.Date(2024, 1, 21, 23, 0, 0, 0, time.UTC)
	start, _ = WeekWindow(sunday)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), start)
}

func TestComputeWeeklySummary(t *testing.T) {
	activities := []models.Activity{
		activityAt(models.ActivityContactAdded, testNow),
		activityAt(models.ActivityContactAdded, testNow.Add(-24*time.Hour)),
		activityAt(models.ActivityFirmAdded, testNow),
		activityAt(models.ActivityCoffeeChat, testNow),
		activityAt(models.ActivityOutreachSent, testNow),
		// last week, excluded
		activityAt(models.ActivityContactAdded, testNow.Add(-8*24*time.Hour)),
	}

	s := ComputeWeeklySummary(activities, testNow)

	assert.Equal(t, 2, s.ContactsAdded)
	assert.Equal(t, 1, s.FirmsAdded)
	assert.Equal(t, 1, s.CoffeeChats)
	assert.Equal(t, 1, s.OutreachSent)
}

func TestComputeStreakTrailingRun(t *testing.T) {
	activities := []models.Activity{
		activityAt(models.ActivityOutreachSent, testNow),
		activityAt(models.ActivityContactAdded, testNow.Add(-24*time.Hour)),
		activityAt(models.ActivityCoffeeChat, testNow.Add(-48*time.Hour)),
	}

	s := ComputeStreak(activities, 0, testNow)

	assert.Equal(t, 3, s.Current)
	assert.Equal(t, 3, s.Longest)
}

// A run ending yesterday still counts; the streak has not broken yet.
func TestComputeStreakEndingYesterday(t *testing.T) {
	activities := []models.Activity{
		activityAt(models.ActivityOutreachSent, testNow.Add(-24*time.Hour)),
		activityAt(models.ActivityOutreachSent, testNow.Add(-48*time.Hour)),
	}

	s := ComputeStreak(activities, 0, testNow)

	assert.Equal(t, 2, s.Current)
}

// A gap of two or more days resets the current streak to zero.
func TestComputeStreakReset(t *testing.T) {
	activities := []models.Activity{
		activityAt(models.ActivityOutreachSent, testNow.Add(-2*24*time.Hour)),
		activityAt(models.ActivityOutreachSent, testNow.Add(-3*24*time.Hour)),
	}

	s := ComputeStreak(activities, 0, testNow)

	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 2, s.Longest)
}

func TestComputeStreakLongestReconciliation(t *testing.T) {
	activities := []models.Activity{
		activityAt(models.ActivityOutreachSent, testNow),
	}

	// Cached value larger than anything visible in the snapshot wins.
	s := ComputeStreak(activities, 10, testNow)
	assert.Equal(t, 1, s.Current)
	assert.Equal(t, 10, s.Longest)

	// Fresh computation larger than the cache wins.
	long := []models.Activity{
		activityAt(models.ActivityOutreachSent, testNow),
		activityAt(models.ActivityOutreachSent, testNow.Add(-24*time.Hour)),
		activityAt(models.ActivityOutreachSent, testNow.Add(-48*time.Hour)),
		activityAt(models.ActivityOutreachSent, testNow.Add(-72*time.Hour)),
	}
	s = ComputeStreak(long, 2, testNow)
	assert.Equal(t, 4, s.Longest)
}

func TestComputeStreakNoActivity(t *testing.T) {
	s := ComputeStreak(nil, 5, testNow)
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 5, s.Longest)
}

func TestComputeGoalProgress(t *testing.T) {
	start := testNow.Add(-3 * 24 * time.Hour)
	end := testNow.Add(3 * 24 * time.Hour)
	goal := models.Goal{Type: models.GoalContacts, Target: 10, StartDate: start, EndDate: end}

	activities := []models.Activity{
		activityAt(models.ActivityContactAdded, testNow),
		activityAt(models.ActivityContactAdded, testNow.Add(-24*time.Hour)),
		activityAt(models.ActivityContactAdded, testNow.Add(-10*24*time.Hour)), // out of window
		activityAt(models.ActivityCoffeeChat, testNow),                         // wrong type
	}

	out := ComputeGoalProgress([]models.Goal{goal}, activities)

	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].Current)
	assert.Equal(t, 20.0, out[0].Percentage)
}

// Overshooting the target clamps at 100 percent.
func TestComputeGoalProgressClamped(t *testing.T) {
	goal := models.Goal{
		Type:      models.GoalContacts,
		Target:    20,
		StartDate: testNow.Add(-7 * 24 * time.Hour),
		EndDate:   testNow.Add(7 * 24 * time.Hour),
	}
	activities := make([]models.Activity, 0, 25)
	for i := 0; i < 25; i++ {
		activities = append(activities, activityAt(models.ActivityContactAdded, testNow.Add(-time.Duration(i)*time.Hour)))
	}

	out := ComputeGoalProgress([]models.Goal{goal}, activities)

	require.Len(t, out, 1)
	assert.Equal(t, 25, out[0].Current)
	assert.Equal(t, 100.0, out[0].Percentage)
}

// A zero target is 0 percent, not a division by zero.
func TestComputeGoalProgressZeroTarget(t *testing.T) {
	goal := models.Goal{
		Type:      models.GoalOutreach,
		Target:    0,
		StartDate: testNow.Add(-24 * time.Hour),
		EndDate:   testNow.Add(24 * time.Hour),
	}
	activities := []models.Activity{activityAt(models.ActivityOutreachSent, testNow)}

	out := ComputeGoalProgress([]models.Goal{goal}, activities)

	require.Len(t, out, 1)
	assert.Equal(t, 0.0, out[0].Percentage)
}
