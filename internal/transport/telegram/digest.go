// Package telegram delivers reading digests to a Telegram chat.
package telegram

import (
	"context"
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jbeshir/reading-queue/internal/datasources"
	"github.com/jbeshir/reading-queue/internal/domain"
)

// MessageSender is satisfied by *tgbotapi.BotAPI.
type MessageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

var _ datasources.DigestSender = (*DigestNotifier)(nil)

// DigestNotifier sends digests as HTML messages to a single chat.
type DigestNotifier struct {
	Bot    MessageSender
	ChatID int64
}

// NewBot connects to the Telegram bot API with token.
func NewBot(token string) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connecting to telegram: %w", err)
	}
	return bot, nil
}

func (n *DigestNotifier) SendDigest(ctx context.Context, digest domain.Digest) error {
	msg := tgbotapi.NewMessage(n.ChatID, FormatDigest(digest))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	sent, err := n.Bot.Send(msg)
	if err != nil {
		return fmt.Errorf("sending telegram message: %w", err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "sent telegram digest",
		"chatID", n.ChatID, "messageID", sent.MessageID)
	return nil
}

// FormatDigest renders a digest as Telegram HTML.
func FormatDigest(d domain.Digest) string {
	var b strings.Builder

	if len(d.Queue) == 0 {
		b.WriteString("📚 <b>Nothing queued right now</b>\n")
	} else {
		fmt.Fprintf(&b, "📚 <b>Read next this %s</b>\n", d.TimeSlot)
		for i, a := range d.Queue {
			fmt.Fprintf(&b, "%d. <a href=\"%s\">%s</a>", i+1, html.EscapeString(a.URL), html.EscapeString(a.Title))
			if a.ReadingTimeMinutes > 0 {
				fmt.Fprintf(&b, " (%d min)", a.ReadingTimeMinutes)
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "\n🔥 Streak: %d %s · 📖 %d read this week · %d unread\n",
		d.Streak, plural(d.Streak, "day", "days"), d.WeeklyRead, d.UnreadCount)

	if d.ArchiveSuggestions > 0 {
		fmt.Fprintf(&b, "🗄 %d %s ready to archive\n",
			d.ArchiveSuggestions, plural(d.ArchiveSuggestions, "article", "articles"))
	}

	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
