package controller

import (
	"net/http"
	"time"

	"github.com/jbeshir/reading-queue/internal/command"
	"github.com/jbeshir/reading-queue/internal/domain"
)

// ViewKind selects which part of a reader's views a ViewsGet serves.
type ViewKind int

const (
	ViewKindQueue ViewKind = iota
	ViewKindArchiveSuggestions
	ViewKindStats
)

type ViewsGet struct {
	ViewsCmd command.Command[command.GetViewsRequest, domain.ReadingViews]
	Kind     ViewKind
}

type QueueResponse struct {
	Queue       []domain.Article `json:"queue"`
	TimeSlot    domain.TimeSlot  `json:"time_slot"`
	GeneratedAt time.Time        `json:"generated_at"`
}

type ArchiveSuggestionsResponse struct {
	ArchiveSuggestions []domain.ArchiveSuggestion `json:"archive_suggestions"`
	GeneratedAt        time.Time                  `json:"generated_at"`
}

func (c ViewsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	views, err := c.ViewsCmd.Execute(ctx, command.GetViewsRequest{
		UserID: domain.UserIDFromContext(ctx),
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to get reading views", err)
		return
	}

	switch c.Kind {
	case ViewKindArchiveSuggestions:
		writeJSON(ctx, w, http.StatusOK, ArchiveSuggestionsResponse{
			ArchiveSuggestions: views.ArchiveSuggestions,
			GeneratedAt:        views.GeneratedAt,
		})
	case ViewKindStats:
		writeJSON(ctx, w, http.StatusOK, views.Stats)
	default:
		writeJSON(ctx, w, http.StatusOK, QueueResponse{
			Queue:       views.Queue,
			TimeSlot:    views.TimeSlot,
			GeneratedAt: views.GeneratedAt,
		})
	}
}
