package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nexthire/models"
)

var testNow = time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC)

func TestContactDueForReminder(t *testing.T) {
	old := testNow.Add(-5 * 24 * time.Hour)
	fresh := testNow.Add(-24 * time.Hour)

	due := models.Contact{LastContactedAt: &old}
	assert.True(t, ContactDueForReminder(&due, 3, testNow))

	recent := models.Contact{LastContactedAt: &fresh}
	assert.False(t, ContactDueForReminder(&recent, 3, testNow))

	// Exactly at the threshold counts as due.
	edge := testNow.Add(-3 * 24 * time.Hour)
	boundary := models.Contact{LastContactedAt: &edge}
	assert.True(t, ContactDueForReminder(&boundary, 3, testNow))
}

// A contact that has never been touched has nothing to follow up on.
func TestContactDueForReminderNeverTouched(t *testing.T) {
	c := models.Contact{}
	assert.False(t, ContactDueForReminder(&c, 3, testNow))
}

func TestBuildReminder(t *testing.T) {
	last := testNow.Add(-8 * 24 * time.Hour)
	c := models.Contact{
		UserID:          9,
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Company:         "Acme",
		LastContactedAt: &last,
	}
	c.ID = 4

	r := BuildReminder(&c, testNow)

	assert.Equal(t, uint(9), r.UserID)
	assert.Equal(t, uint(4), r.ContactID)
	assert.Equal(t, "Ada Lovelace", r.ContactName)
	assert.Equal(t, "Acme", r.Firm)
	assert.Equal(t, 8, r.DaysSinceContact)
	assert.Equal(t, &last, r.LastContactAt)
}

func TestDigestDue(t *testing.T) {
	// testNow is a Wednesday at 12:00.
	weekday := int(time.Wednesday)

	assert.True(t, DigestDue(testNow, time.Time{}, weekday, 12))
	assert.False(t, DigestDue(testNow, time.Time{}, weekday, 8), "wrong hour")
	assert.False(t, DigestDue(testNow, time.Time{}, int(time.Monday), 12), "wrong weekday")

	// Already sent inside this window.
	assert.False(t, DigestDue(testNow, testNow.Add(-30*time.Minute), weekday, 12))

	// Last send a week ago does not block.
	assert.True(t, DigestDue(testNow, testNow.Add(-7*24*time.Hour), weekday, 12))
}
