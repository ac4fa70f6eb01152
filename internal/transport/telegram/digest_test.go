package telegram

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jbeshir/reading-queue/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c)
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func TestFormatDigest(t *testing.T) {
	cases := []struct {
		name    string
		digest  domain.Digest
		want    []string
		notWant []string
	}{
		{
			name: "queue_and_suggestions",
			digest: domain.Digest{
				TimeSlot: domain.TimeSlotMorning,
				Queue: []domain.Article{
					{Title: "Tea & <tools>", URL: "https://note.com/a/n/n1", ReadingTimeMinutes: 4},
					{Title: "Untimed", URL: "https://note.com/b/n/n2"},
				},
				Streak:             1,
				WeeklyRead:         3,
				UnreadCount:        7,
				ArchiveSuggestions: 2,
			},
			want: []string{
				"Read next this morning",
				`1. <a href="https://note.com/a/n/n1">Tea &amp; &lt;tools&gt;</a> (4 min)`,
				`2. <a href="https://note.com/b/n/n2">Untimed</a>` + "\n",
				"Streak: 1 day · 📖 3 read this week · 7 unread",
				"2 articles ready to archive",
			},
		},
		{
			name:    "archive_only",
			digest:  domain.Digest{Streak: 3, ArchiveSuggestions: 1},
			want:    []string{"Nothing queued right now", "Streak: 3 days", "1 article ready to archive"},
			notWant: []string{"Read next"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatDigest(tc.digest)
			for _, s := range tc.want {
				assert.Contains(t, got, s)
			}
			for _, s := range tc.notWant {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestDigestNotifier_SendDigest(t *testing.T) {
	ctx := domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
	sender := &fakeSender{}
	notifier := &DigestNotifier{Bot: sender, ChatID: 42}

	require.NoError(t, notifier.SendDigest(ctx, domain.Digest{Streak: 2}))
	require.Len(t, sender.sent, 1)

	msg, ok := sender.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, tgbotapi.ModeHTML, msg.ParseMode)
	assert.True(t, msg.DisableWebPagePreview)
	assert.Contains(t, msg.Text, "Streak: 2 days")
}

func TestDigestNotifier_SendDigest_Error(t *testing.T) {
	ctx := domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
	notifier := &DigestNotifier{Bot: &fakeSender{err: errors.New("forbidden")}, ChatID: 42}

	err := notifier.SendDigest(ctx, domain.Digest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending telegram message")
}
