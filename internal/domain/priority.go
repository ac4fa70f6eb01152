package domain

import (
	"math"
	"time"
)

// Priority weights. The sum of every bonus can exceed 1, the result is capped.
const (
	unreadWeight        = 0.4
	readingWeight       = 0.3
	freshnessWeight     = 0.3
	timeFitBonus        = 0.2
	popularityBonus     = 0.1
	popularityThreshold = 100
)

// Priority computes the composite "read next" score for a at time now.
// The time-fit bonus uses the hour of now in now's location.
func Priority(a Article, now time.Time) float64 {
	score := 0.0

	switch a.Status {
	case ArticleStatusUnread:
		score += unreadWeight
	case ArticleStatusReading:
		score += readingWeight
	}

	score += Freshness(a.SavedAt, now) * freshnessWeight

	if FitsReadingSlot(now.Hour(), a.ReadingTimeMinutes) {
		score += timeFitBonus
	}

	if a.LikeCount > popularityThreshold {
		score += popularityBonus
	}

	return math.Min(1, score)
}

// ApplyScores returns scored copies of articles. The input slice and the
// articles in it are left untouched.
func ApplyScores(articles []Article, now time.Time) []Article {
	scored := make([]Article, 0, len(articles))
	for _, a := range articles {
		s := a.Clone()
		s.FreshnessScore = Freshness(a.SavedAt, now)
		s.ExpiryScore = ExpiryScore(a.SavedAt, now)
		s.Priority = Priority(a, now)
		scored = append(scored, s)
	}
	return scored
}
