package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseNoteURL(t *testing.T) {
	cases := []struct {
		name        string
		url         string
		wantURLName string
		wantNoteID  string
		wantOK      bool
	}{
		{
			name:        "note_url",
			url:         "https://note.com/alice/n/n1a2b3c4d5e6f",
			wantURLName: "alice",
			wantNoteID:  "n1a2b3c4d5e6f",
			wantOK:      true,
		},
		{
			name:        "trailing_slash_and_query",
			url:         "https://note.com/bob/n/nabc/?ref=top",
			wantURLName: "bob",
			wantNoteID:  "nabc",
			wantOK:      true,
		},
		{
			name:        "surrounding_whitespace",
			url:         "  https://note.com/carol/n/nxyz  ",
			wantURLName: "carol",
			wantNoteID:  "nxyz",
			wantOK:      true,
		},
		{name: "profile_page", url: "https://note.com/alice", wantOK: false},
		{name: "magazine", url: "https://note.com/alice/m/mabc", wantOK: false},
		{name: "not_a_url", url: "://bad", wantOK: false},
		{name: "empty", url: "", wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			urlName, noteID, ok := ParseNoteURL(tc.url)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantURLName, urlName)
			assert.Equal(t, tc.wantNoteID, noteID)
		})
	}
}

func TestFallbackMetadata(t *testing.T) {
	meta := FallbackMetadata("https://note.com/alice/n/nabc")
	assert.Equal(t, "https://note.com/alice/n/nabc", meta.Title)
	assert.Equal(t, "alice", meta.CreatorURLName)
	assert.Equal(t, "alice", meta.CreatorNickname)
	assert.Equal(t, []string{}, meta.Hashtags)

	meta = FallbackMetadata("https://example.com/post")
	assert.Equal(t, UnknownCreator, meta.CreatorURLName)
	assert.Equal(t, UnknownCreator, meta.CreatorNickname)
}

func TestNewArticle(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("full_metadata", func(t *testing.T) {
		a := NewArticle("id-1", "user-1", "https://note.com/alice/n/nabc", ArticleMetadata{
			Title:           "A title",
			Excerpt:         "Some text",
			CreatorNickname: "Alice A.",
			CreatorURLName:  "alice",
			Hashtags:        []string{"go"},
			IsPaid:          true,
			WordCount:       4000,
			ReadingTime:     8,
		}, now)

		assert.Equal(t, "id-1", a.ID)
		assert.Equal(t, "user-1", a.UserID)
		assert.Equal(t, "nabc", a.NoteID)
		assert.Equal(t, "A title", a.Title)
		assert.Equal(t, Creator{URLName: "alice", Nickname: "Alice A."}, a.Creator)
		assert.Equal(t, []string{"go"}, a.Hashtags)
		assert.True(t, a.IsPaid)
		assert.Equal(t, 8, a.ReadingTimeMinutes)
		assert.Equal(t, ArticleStatusUnread, a.Status)
		assert.Nil(t, a.ReadAt)
		assert.Equal(t, now, a.SavedAt)
		assert.Equal(t, now, a.UpdatedAt)
		assert.Equal(t, 1.0, a.FreshnessScore)
	})

	t.Run("empty_metadata_falls_back_to_url", func(t *testing.T) {
		a := NewArticle("id-2", "user-1", "https://note.com/bob/n/nxyz", ArticleMetadata{}, now)

		assert.Equal(t, "https://note.com/bob/n/nxyz", a.Title)
		assert.Equal(t, Creator{URLName: "bob", Nickname: "bob"}, a.Creator)
		assert.NotNil(t, a.Hashtags)
		assert.Empty(t, a.Hashtags)
		assert.Zero(t, a.ReadingTimeMinutes)
	})

	t.Run("non_note_url_gets_generated_note_id", func(t *testing.T) {
		a := NewArticle("id-3", "user-1", "https://example.com/post", ArticleMetadata{}, now)

		assert.Equal(t, "n1718452800000", a.NoteID)
		assert.Equal(t, UnknownCreator, a.Creator.URLName)
	})
}
