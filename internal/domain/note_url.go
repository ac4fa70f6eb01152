package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// UnknownCreator is used when no creator can be derived for a saved URL.
const UnknownCreator = "unknown"

// ParseNoteURL extracts the creator urlname and note id from a note.com style
// URL of the form https://note.com/{urlname}/n/{noteId}. ok is false when the
// path does not have that shape.
func ParseNoteURL(rawURL string) (urlName, noteID string, ok bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", "", false
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 3 || parts[1] != "n" || parts[0] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[0], parts[2], true
}

// FallbackMetadata builds the minimal metadata for rawURL used when the
// metadata fetch fails: creator from the URL path and the raw URL as title.
func FallbackMetadata(rawURL string) ArticleMetadata {
	urlName, _, ok := ParseNoteURL(rawURL)
	if !ok {
		urlName = UnknownCreator
	}

	return ArticleMetadata{
		Title:           rawURL,
		CreatorNickname: urlName,
		CreatorURLName:  urlName,
		Hashtags:        []string{},
	}
}

// NewArticle builds an unread article for rawURL from fetched metadata.
// Missing metadata fields fall back to values derived from the URL.
func NewArticle(id, userID, rawURL string, meta ArticleMetadata, now time.Time) Article {
	fallback := FallbackMetadata(rawURL)

	_, noteID, ok := ParseNoteURL(rawURL)
	if !ok {
		noteID = fmt.Sprintf("n%d", now.UnixMilli())
	}

	title := meta.Title
	if title == "" {
		title = fallback.Title
	}
	urlName := meta.CreatorURLName
	if urlName == "" {
		urlName = fallback.CreatorURLName
	}
	nickname := meta.CreatorNickname
	if nickname == "" {
		nickname = urlName
	}
	hashtags := meta.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}

	return Article{
		ID:     id,
		UserID: userID,
		URL:    rawURL,
		NoteID: noteID,
		Title:  title,
		Creator: Creator{
			URLName:         urlName,
			Nickname:        nickname,
			ProfileImageURL: meta.CreatorProfileImage,
		},
		Excerpt:            meta.Excerpt,
		CoverImageURL:      meta.CoverImageURL,
		Hashtags:           hashtags,
		IsPaid:             meta.IsPaid,
		WordCount:          max(meta.WordCount, 0),
		ReadingTimeMinutes: max(meta.ReadingTime, 0),
		Status:             ArticleStatusUnread,
		SavedAt:            now,
		UpdatedAt:          now,
		FreshnessScore:     1,
		ExpiryScore:        1,
	}
}
