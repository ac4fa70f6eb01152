package domain

import (
	"time"
)

// ReadingViews holds every view derived from one reader's collection in a
// single pass. All fields are computed against the same instant.
type ReadingViews struct {
	Articles           []Article           `json:"articles"`
	Queue              []Article           `json:"queue"`
	ArchiveSuggestions []ArchiveSuggestion `json:"archive_suggestions"`
	Stats              ReadingStats        `json:"stats"`
	TimeSlot           TimeSlot            `json:"time_slot"`
	GeneratedAt        time.Time           `json:"generated_at"`
}

// DeriveViews recomputes every view from scratch. now must be sampled once by
// the caller and already be in the reader's location.
func DeriveViews(articles []Article, now time.Time) ReadingViews {
	scored := ApplyScores(articles, now)

	return ReadingViews{
		Articles:           scored,
		Queue:              DeriveQueue(scored),
		ArchiveSuggestions: DeriveArchiveSuggestions(scored),
		Stats:              ComputeStats(articles, now),
		TimeSlot:           TimeSlotForHour(now.Hour()),
		GeneratedAt:        now,
	}
}
