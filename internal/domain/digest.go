package domain

import "time"

// Digest is the daily summary sent to a reader: what to read next and how the
// reading habit is going.
type Digest struct {
	UserID             string    `json:"user_id"`
	Queue              []Article `json:"queue"`
	TimeSlot           TimeSlot  `json:"time_slot"`
	UnreadCount        int       `json:"unread_count"`
	ArchiveSuggestions int       `json:"archive_suggestions"`
	Streak             int       `json:"streak"`
	WeeklyRead         int       `json:"weekly_read"`
	GeneratedAt        time.Time `json:"generated_at"`
}

// NewDigest summarises views for userID.
func NewDigest(userID string, views ReadingViews) Digest {
	var weekly int
	for _, n := range views.Stats.WeeklyRead {
		weekly += n
	}

	return Digest{
		UserID:             userID,
		Queue:              views.Queue,
		TimeSlot:           views.TimeSlot,
		UnreadCount:        views.Stats.UnreadCount,
		ArchiveSuggestions: len(views.ArchiveSuggestions),
		Streak:             views.Stats.Streak,
		WeeklyRead:         weekly,
		GeneratedAt:        views.GeneratedAt,
	}
}

// IsEmpty reports whether there is nothing worth sending.
func (d Digest) IsEmpty() bool {
	return len(d.Queue) == 0 && d.ArchiveSuggestions == 0
}
