package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFreshness(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		savedAt  time.Time
		expected float64
	}{
		{
			name:     "saved_now_is_fully_fresh",
			savedAt:  now,
			expected: 1.0,
		},
		{
			name:     "half_lifetime",
			savedAt:  now.AddDate(0, 0, -30),
			expected: 0.5,
		},
		{
			name:     "fifteen_days",
			savedAt:  now.AddDate(0, 0, -15),
			expected: 0.75,
		},
		{
			name:     "twelve_hours",
			savedAt:  now.Add(-12 * time.Hour),
			expected: 1 - 0.5/60,
		},
		{
			name:     "exactly_sixty_days_is_zero",
			savedAt:  now.AddDate(0, 0, -60),
			expected: 0.0,
		},
		{
			name:     "beyond_sixty_days_stays_zero",
			savedAt:  now.AddDate(0, 0, -100),
			expected: 0.0,
		},
		{
			name:     "future_save_clamped_to_one",
			savedAt:  now.AddDate(0, 0, 3),
			expected: 1.0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Freshness(tc.savedAt, now)
			assert.InDelta(t, tc.expected, got, 0.0001)
			assert.InDelta(t, got, ExpiryScore(tc.savedAt, now), 0,
				"expiry score must be the same decay signal")
		})
	}
}

func TestFreshness_MonotonicallyNonIncreasing(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	previous := Freshness(now, now)
	for hours := 1; hours <= 24*80; hours++ {
		current := Freshness(now.Add(-time.Duration(hours)*time.Hour), now)
		assert.GreaterOrEqual(t, current, 0.0)
		assert.LessOrEqual(t, current, 1.0)
		assert.LessOrEqual(t, current, previous, "freshness increased at %d hours", hours)
		previous = current
	}
}
