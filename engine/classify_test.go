package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nexthire/models"
)

func TestClassifyAge(t *testing.T) {
	tests := []struct {
		days int
		want Priority
	}{
		{0, PriorityNormal},
		{3, PriorityNormal},
		{4, PriorityWarm},
		{6, PriorityWarm},
		{7, PriorityHot},
		{30, PriorityHot},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyAge(tt.days), "days=%d", tt.days)
	}
}

// A human reply waiting on the user is always hot, no matter how fresh.
func TestClassifyThreadReplyAlwaysHot(t *testing.T) {
	for _, status := range []string{models.ThreadNewReply, models.ThreadWaitingOnYou} {
		for _, days := range []int{0, 1, 5, 100} {
			assert.Equal(t, PriorityHot, ClassifyThread(status, days), "status=%s days=%d", status, days)
		}
	}
}

// A never-sent draft can age into warm but is never hot.
func TestClassifyThreadDraftRule(t *testing.T) {
	assert.Equal(t, PriorityNormal, ClassifyThread(models.ThreadNoReplyYet, 0))
	assert.Equal(t, PriorityNormal, ClassifyThread(models.ThreadNoReplyYet, 1))
	assert.Equal(t, PriorityWarm, ClassifyThread(models.ThreadNoReplyYet, 2))
	assert.Equal(t, PriorityWarm, ClassifyThread(models.ThreadNoReplyYet, 3))
	assert.Equal(t, PriorityWarm, ClassifyThread(models.ThreadNoReplyYet, 365))
}

func TestClassifyThreadWaitingOnThemUsesAge(t *testing.T) {
	assert.Equal(t, PriorityNormal, ClassifyThread(models.ThreadWaitingOnThem, 2))
	assert.Equal(t, PriorityWarm, ClassifyThread(models.ThreadWaitingOnThem, 5))
	assert.Equal(t, PriorityHot, ClassifyThread(models.ThreadWaitingOnThem, 8))
}

func TestPriorityRankOrdering(t *testing.T) {
	assert.Less(t, PriorityHot.Rank(), PriorityWarm.Rank())
	assert.Less(t, PriorityWarm.Rank(), PriorityNormal.Rank())
}
