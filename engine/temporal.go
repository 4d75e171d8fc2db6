package engine

import (
	"fmt"
	"time"
)

// ElapsedLabel renders the time since ts as a short human label.
// A nil timestamp (a record that never recorded one) reads as "Just
// now" rather than erroring; so does a timestamp in the future.
func ElapsedLabel(ts *time.Time, now time.Time) string {
	if ts == nil {
		return "Just now"
	}
	d := now.Sub(*ts)
	if d < time.Minute {
		return "Just now"
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
	days := int(d.Hours() / 24)
	if days < 7 {
		return fmt.Sprintf("%dd ago", days)
	}
	return fmt.Sprintf("%dw ago", days/7)
}

// DaysSince returns the number of whole days between ts and now. A nil
// timestamp is treated as "now" and yields 0. The result is never
// negative, so a clock-skewed future timestamp also yields 0.
func DaysSince(ts *time.Time, now time.Time) int {
	if ts == nil {
		return 0
	}
	d := now.Sub(*ts)
	if d < 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}
