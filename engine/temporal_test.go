package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC) // a Wednesday

func ago(d time.Duration) *time.Time {
	t := testNow.Add(-d)
	return &t
}

func TestElapsedLabel(t *testing.T) {
	tests := []struct {
		name string
		ts   *time.Time
		want string
	}{
		{"nil timestamp", nil, "Just now"},
		{"under a minute", ago(30 * time.Second), "Just now"},
		{"minutes", ago(5 * time.Minute), "5m ago"},
		{"hours", ago(3 * time.Hour), "3h ago"},
		{"days", ago(3 * 24 * time.Hour), "3d ago"},
		{"one week", ago(10 * 24 * time.Hour), "1w ago"},
		{"three weeks", ago(21 * 24 * time.Hour), "3w ago"},
		{"future timestamp", ago(-time.Hour), "Just now"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ElapsedLabel(tt.ts, testNow))
		})
	}
}

func TestDaysSince(t *testing.T) {
	assert.Equal(t, 0, DaysSince(nil, testNow))
	assert.Equal(t, 0, DaysSince(ago(time.Hour), testNow))
	assert.Equal(t, 1, DaysSince(ago(36*time.Hour), testNow))
	assert.Equal(t, 8, DaysSince(ago(8*24*time.Hour), testNow))
}

func TestDaysSinceNeverNegative(t *testing.T) {
	future := testNow.Add(48 * time.Hour)
	assert.Equal(t, 0, DaysSince(&future, testNow))
}
