package engine

import "sort"

// MergeCandidates combines the reminder-derived and thread-derived
// candidate lists into one list with unique ids. Deduplication is
// keyed on record identity with last-write-wins: a later entry in the
// concatenation replaces an earlier one sharing its id, at the earlier
// entry's position.
//
// The two sources use different id spaces (contact ids vs thread
// uuids), so a contact with both a stale reminder and an open thread
// appears twice unless the ids happen to coincide. That matches the
// product's current behavior; keying on contact identity instead would
// need a contact link on threads, which they do not all have.
func MergeCandidates(fromReminders, fromThreads []FollowUpCandidate) []FollowUpCandidate {
	merged := make([]FollowUpCandidate, 0, len(fromReminders)+len(fromThreads))
	pos := make(map[string]int, len(fromReminders)+len(fromThreads))

	for _, lists := range [][]FollowUpCandidate{fromReminders, fromThreads} {
		for _, c := range lists {
			if i, seen := pos[c.ID]; seen {
				merged[i] = c
				continue
			}
			pos[c.ID] = len(merged)
			merged = append(merged, c)
		}
	}
	return merged
}

// RankCandidates totally orders candidates for presentation: hot before
// warm before normal, and within a tier the most overdue first. The
// sort is stable so equal candidates keep their input order.
func RankCandidates(candidates []FollowUpCandidate) []FollowUpCandidate {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Priority.Rank() != candidates[j].Priority.Rank() {
			return candidates[i].Priority.Rank() < candidates[j].Priority.Rank()
		}
		return candidates[i].DaysSinceContact > candidates[j].DaysSinceContact
	})
	return candidates
}
