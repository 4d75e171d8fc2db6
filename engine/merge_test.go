package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cand(id string, p Priority, days int) FollowUpCandidate {
	return FollowUpCandidate{ID: id, PersonName: "P " + id, Priority: p, DaysSinceContact: days}
}

func TestMergeCandidatesUniqueIDs(t *testing.T) {
	a := []FollowUpCandidate{cand("1", PriorityWarm, 5), cand("2", PriorityNormal, 1)}
	b := []FollowUpCandidate{cand("2", PriorityHot, 9), cand("3", PriorityNormal, 0)}

	merged := MergeCandidates(a, b)

	seen := make(map[string]bool)
	for _, c := range merged {
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
	assert.Len(t, merged, 3)
}

func TestMergeCandidatesLastWriteWins(t *testing.T) {
	a := []FollowUpCandidate{cand("1", PriorityWarm, 5)}
	b := []FollowUpCandidate{cand("1", PriorityHot, 9)}

	merged := MergeCandidates(a, b)

	require.Len(t, merged, 1)
	assert.Equal(t, PriorityHot, merged[0].Priority)
	assert.Equal(t, 9, merged[0].DaysSinceContact)
}

func TestMergeCandidatesKeepsFirstSeenPosition(t *testing.T) {
	a := []FollowUpCandidate{cand("1", PriorityNormal, 0), cand("2", PriorityNormal, 0)}
	b := []FollowUpCandidate{cand("1", PriorityHot, 9)}

	merged := MergeCandidates(a, b)

	require.Len(t, merged, 2)
	assert.Equal(t, "1", merged[0].ID)
	assert.Equal(t, "2", merged[1].ID)
}

func TestRankCandidatesPriorityThenRecency(t *testing.T) {
	in := []FollowUpCandidate{
		cand("n", PriorityNormal, 2),
		cand("w-old", PriorityWarm, 6),
		cand("h-young", PriorityHot, 7),
		cand("h-old", PriorityHot, 12),
		cand("w-young", PriorityWarm, 4),
	}

	out := RankCandidates(in)

	ids := make([]string, len(out))
	for i, c := range out {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"h-old", "h-young", "w-old", "w-young", "n"}, ids)
}

// Candidates with equal priority and equal age keep their input order.
func TestRankCandidatesStable(t *testing.T) {
	in := []FollowUpCandidate{
		cand("first", PriorityWarm, 5),
		cand("second", PriorityWarm, 5),
		cand("third", PriorityWarm, 5),
	}

	out := RankCandidates(in)

	require.Len(t, out, 3)
	assert.Equal(t, "first", out[0].ID)
	assert.Equal(t, "second", out[1].ID)
	assert.Equal(t, "third", out[2].ID)
}
