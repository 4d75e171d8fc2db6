package engine

import (
	"nexthire/models"
)

// ClassifyAge assigns a priority from elapsed days alone. Used for
// reminder-derived candidates, which carry no thread status.
func ClassifyAge(days int) Priority {
	switch {
	case days >= 7:
		return PriorityHot
	case days >= 4:
		return PriorityWarm
	default:
		return PriorityNormal
	}
}

// ClassifyThread assigns a priority from a thread's status and elapsed
// days. An unanswered human reply always outranks age, so new_reply and
// waiting_on_you are hot unconditionally. A draft that was never sent
// (no_reply_yet) can age into warm after 2 days but is never hot: no
// outreach has actually happened yet.
func ClassifyThread(status string, days int) Priority {
	switch status {
	case models.ThreadNewReply, models.ThreadWaitingOnYou:
		return PriorityHot
	case models.ThreadNoReplyYet:
		if days >= 2 {
			return PriorityWarm
		}
		return PriorityNormal
	default:
		return ClassifyAge(days)
	}
}
