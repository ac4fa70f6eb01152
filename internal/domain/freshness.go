package domain

import (
	"time"
)

// FreshnessLifetimeDays is the age at which a saved article is fully decayed.
const FreshnessLifetimeDays = 60.0

// Freshness computes how fresh an article saved at savedAt is at time now.
// The decay is linear: 1 at save time, 0 once the article is
// FreshnessLifetimeDays old, clamped to [0,1] on both sides.
func Freshness(savedAt, now time.Time) float64 {
	return clamp(1-daysSince(savedAt, now)/FreshnessLifetimeDays, 0, 1)
}

// ExpiryScore is the freshness decay read as "how far from going stale" for
// warnings in the reading list. It is the same signal as Freshness.
func ExpiryScore(savedAt, now time.Time) float64 {
	return Freshness(savedAt, now)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
