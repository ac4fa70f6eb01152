package domain

import (
	"time"
)

// ArticleStatus is where a saved article sits in the reading lifecycle.
type ArticleStatus string

const (
	ArticleStatusUnread   ArticleStatus = "unread"
	ArticleStatusReading  ArticleStatus = "reading"
	ArticleStatusRead     ArticleStatus = "read"
	ArticleStatusArchived ArticleStatus = "archived"
)

var ValidArticleStatuses = []ArticleStatus{
	ArticleStatusUnread,
	ArticleStatusReading,
	ArticleStatusRead,
	ArticleStatusArchived,
}

// Creator identifies the author of a saved article. URLName is the stable key
// used for aggregation, Nickname is for display only.
type Creator struct {
	URLName         string `json:"urlname"`
	Nickname        string `json:"nickname"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
}

// Article is a bookmarked article owned by exactly one reader.
//
// FreshnessScore, Priority and ExpiryScore are derived values. They are
// recomputed on every derivation pass and only ever persisted as a cache.
type Article struct {
	ID                 string        `json:"id"`
	UserID             string        `json:"-"`
	URL                string        `json:"url"`
	NoteID             string        `json:"note_id"`
	Title              string        `json:"title"`
	Excerpt            string        `json:"excerpt,omitempty"`
	CoverImageURL      string        `json:"cover_image_url,omitempty"`
	Creator            Creator       `json:"creator"`
	Hashtags           []string      `json:"hashtags"`
	IsPaid             bool          `json:"is_paid"`
	WordCount          int           `json:"word_count"`
	ReadingTimeMinutes int           `json:"reading_time_minutes"`
	LikeCount          int           `json:"like_count"`
	Status             ArticleStatus `json:"status"`
	Progress           float64       `json:"progress"`
	Memo               string        `json:"memo,omitempty"`
	SavedAt            time.Time     `json:"saved_at"`
	ReadAt             *time.Time    `json:"read_at,omitempty"`
	UpdatedAt          time.Time     `json:"updated_at"`

	FreshnessScore float64 `json:"freshness_score"`
	Priority       float64 `json:"priority"`
	ExpiryScore    float64 `json:"expiry_score"`
}

// IsActive reports whether the article still takes part in the active views.
func (a Article) IsActive() bool {
	return a.Status != ArticleStatusArchived
}

// Clone returns a copy that shares no slices or pointers with a.
func (a Article) Clone() Article {
	c := a
	if a.Hashtags != nil {
		c.Hashtags = make([]string, len(a.Hashtags))
		copy(c.Hashtags, a.Hashtags)
	}
	if a.ReadAt != nil {
		readAt := *a.ReadAt
		c.ReadAt = &readAt
	}
	return c
}

// ArchiveReason explains why an article was proposed for archiving.
type ArchiveReason string

const (
	ArchiveReasonUnread30Days ArchiveReason = "unread_30_days"
	ArchiveReasonLowFreshness ArchiveReason = "low_freshness"
)

// ArchiveSuggestion is a system-proposed, never automatic, archive candidate.
type ArchiveSuggestion struct {
	Article
	ArchiveReason ArchiveReason `json:"archive_reason"`
}

// ArticleMetadata is the best-effort result of looking up a source URL.
type ArticleMetadata struct {
	Title               string   `json:"title"`
	Excerpt             string   `json:"excerpt"`
	CoverImageURL       string   `json:"cover_image_url"`
	CreatorNickname     string   `json:"creator_nickname"`
	CreatorURLName      string   `json:"creator_urlname"`
	CreatorProfileImage string   `json:"creator_profile_image"`
	Hashtags            []string `json:"hashtags"`
	IsPaid              bool     `json:"is_paid"`
	WordCount           int      `json:"word_count"`
	ReadingTime         int      `json:"reading_time"`
}
