package utils

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// StreakCache persists each user's longest streak so it survives the
// activity retention window. Without the cache the longest streak would
// shrink whenever old activities age out of the snapshot.
type StreakCache struct {
	client *redis.Client
}

func NewStreakCache(client *redis.Client) *StreakCache {
	return &StreakCache{client: client}
}

func streakKey(userID uint) string {
	return fmt.Sprintf("streak:longest:%d", userID)
}

// GetLongest returns the cached longest streak for a user, or 0 when the
// cache is unavailable or has no entry.
func (s *StreakCache) GetLongest(ctx context.Context, userID uint) int {
	if s == nil || s.client == nil {
		return 0
	}

	val, err := s.client.Get(ctx, streakKey(userID)).Result()
	if err != nil {
		return 0
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return n
}

// SetLongest stores a user's longest streak. Failures are swallowed; the
// value is recomputed on the next dashboard load anyway.
func (s *StreakCache) SetLongest(ctx context.Context, userID uint, longest int) {
	if s == nil || s.client == nil {
		return
	}
	s.client.Set(ctx, streakKey(userID), longest, 90*24*time.Hour)
}
