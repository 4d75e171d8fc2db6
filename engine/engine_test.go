package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexthire/models"
)

func fixtureSnapshot() Snapshot {
	last := testNow.Add(-8 * 24 * time.Hour)
	recent := testNow.Add(-3 * 24 * time.Hour)
	opened := testNow.Add(-2 * time.Hour)

	contacts := []models.Contact{
		{FirstName: "Ada", LastName: "Lovelace", Company: "Acme", JobTitle: "Engineer", EmailOpenedAt: &opened},
		{FirstName: "Grace", LastName: "Hopper", Company: "Globex"},
	}
	contacts[0].ID = 1
	contacts[1].ID = 2

	return Snapshot{
		Contacts: contacts,
		Reminders: []models.Reminder{
			{ContactID: 1, Firm: "Acme", DaysSinceContact: 8, LastContactAt: &last},
			{ContactID: 2, DaysSinceContact: 5, LastContactAt: &recent},
		},
		Threads: []models.OutreachThread{
			{PublicID: "t-1", ContactName: "Linus T", Company: "Initech", Status: models.ThreadNewReply, LastActivityAt: &recent},
			{PublicID: "t-2", ContactName: "Margaret H", Status: models.ThreadNoReplyYet, HasDraft: true, LastActivityAt: &recent},
			{PublicID: "t-3", ContactName: "Done Deal", Status: models.ThreadArchived, LastActivityAt: &recent},
		},
		Goals: []models.Goal{
			{Type: models.GoalContacts, Target: 10, StartDate: testNow.Add(-3 * 24 * time.Hour), EndDate: testNow.Add(3 * 24 * time.Hour)},
		},
		Activities: []models.Activity{
			{Type: models.ActivityContactAdded, OccurredAt: testNow},
			{Type: models.ActivityCoffeeChat, OccurredAt: testNow.Add(-24 * time.Hour)},
			{Type: models.ActivityOutreachSent, OccurredAt: testNow.Add(-48 * time.Hour)},
		},
		CachedLongestStreak: 4,
	}
}

// Running the pipeline twice on the same frozen inputs yields identical
// output.
func TestRecomputeIdempotent(t *testing.T) {
	snap := fixtureSnapshot()

	first := Recompute(snap, testNow)
	second := Recompute(snap, testNow)

	assert.Equal(t, first, second)
}

func TestRecomputeNoDuplicateIDs(t *testing.T) {
	out := Recompute(fixtureSnapshot(), testNow)

	seen := make(map[string]bool)
	for _, c := range out.FollowUps {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestRecomputeExcludesArchivedThreads(t *testing.T) {
	out := Recompute(fixtureSnapshot(), testNow)

	for _, c := range out.FollowUps {
		assert.NotEqual(t, "t-3", c.ID)
	}
}

func TestRecomputeOrdering(t *testing.T) {
	out := Recompute(fixtureSnapshot(), testNow)

	require.NotEmpty(t, out.FollowUps)
	// Reminder for contact 1 is 8 days old (hot); the new_reply thread
	// is hot too but only 3 days old, so the older one leads.
	assert.Equal(t, "1", out.FollowUps[0].ID)
	assert.Equal(t, PriorityHot, out.FollowUps[0].Priority)
	assert.Equal(t, "t-1", out.FollowUps[1].ID)
}

func TestRecomputeMetrics(t *testing.T) {
	out := Recompute(fixtureSnapshot(), testNow)

	// 2 contacts, 2 distinct firms, 1 coffee chat:
	// (2*20 + 2*2 + 1*30) / 60 = 74/60 -> 1.2
	assert.Equal(t, 1.2, out.TimeSavedHours)
	assert.Equal(t, 3, out.Streak.Current)
	assert.Equal(t, 4, out.Streak.Longest)
	assert.Equal(t, 1, out.QuickWins.EmailsReady)
	assert.Equal(t, 1, out.QuickWins.CoffeeChatsNeedPrep)
	assert.Equal(t, 2, out.QuickWins.NewMatches)
}

// A reminder with no matching contact still yields a candidate with
// placeholder fields.
func TestCandidateFromOrphanReminder(t *testing.T) {
	reminders := []models.Reminder{{ContactID: 42, DaysSinceContact: 8}}

	out := CandidatesFromReminders(reminders, nil)

	require.Len(t, out, 1)
	assert.Equal(t, "42", out[0].ID)
	assert.Equal(t, UnknownContactName, out[0].PersonName)
	assert.Equal(t, DefaultTitle, out[0].Title)
	assert.Equal(t, DefaultCompany, out[0].Company)
	assert.Equal(t, PriorityHot, out[0].Priority)
	assert.False(t, out[0].EmailOpened)
}

func TestCandidateEnrichedFromContact(t *testing.T) {
	contact := models.Contact{
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Company:        "Analytical Engines",
		JobTitle:       "Engineer",
		HasUnreadReply: true,
	}
	contact.ID = 7
	reminders := []models.Reminder{{ContactID: 7, ContactName: "A. L.", DaysSinceContact: 2}}

	out := CandidatesFromReminders(reminders, []models.Contact{contact})

	require.Len(t, out, 1)
	assert.Equal(t, "Ada Lovelace", out[0].PersonName)
	assert.Equal(t, "Engineer", out[0].Title)
	assert.Equal(t, "Analytical Engines", out[0].Company)
	assert.Equal(t, PriorityNormal, out[0].Priority)
	assert.True(t, out[0].EmailOpened, "any engagement signal counts")
}

// Reminder firm wins over the contact's company when both are present.
func TestCandidateCompanyFallbackOrder(t *testing.T) {
	contact := models.Contact{Company: "FromContact"}
	contact.ID = 7

	out := CandidatesFromReminders(
		[]models.Reminder{{ContactID: 7, ContactName: "X", Firm: "FromReminder"}},
		[]models.Contact{contact},
	)
	require.Len(t, out, 1)
	assert.Equal(t, "FromReminder", out[0].Company)

	out = CandidatesFromReminders(
		[]models.Reminder{{ContactID: 7, ContactName: "X"}},
		[]models.Contact{contact},
	)
	require.Len(t, out, 1)
	assert.Equal(t, "FromContact", out[0].Company)
}

// A three-day-old unsent draft is warm (age >= 2, draft rule).
func TestThreadCandidateDraftWarm(t *testing.T) {
	last := testNow.Add(-3 * 24 * time.Hour)
	threads := []models.OutreachThread{
		{PublicID: "t-9", ContactName: "Sam", Status: models.ThreadNoReplyYet, LastActivityAt: &last},
	}

	out := CandidatesFromThreads(threads, testNow)

	require.Len(t, out, 1)
	assert.Equal(t, PriorityWarm, out[0].Priority)
	assert.Equal(t, 3, out[0].DaysSinceContact)
}
