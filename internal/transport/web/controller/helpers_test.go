package controller

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jbeshir/reading-queue/internal/domain"
)

var testTime = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func testContextWithUserID(userID string) func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		ctx = domain.ContextWithUserID(ctx, userID)
		return r.WithContext(ctx)
	}
}

func testViews(queue ...domain.Article) domain.ReadingViews {
	return domain.ReadingViews{
		Articles:           queue,
		Queue:              queue,
		ArchiveSuggestions: []domain.ArchiveSuggestion{},
		TimeSlot:           domain.TimeSlotAfternoon,
		GeneratedAt:        testTime,
	}
}
