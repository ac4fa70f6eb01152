package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/gorilla/mux"
	"github.com/jbeshir/reading-queue/internal/command"
	"github.com/jbeshir/reading-queue/internal/domain"
)

// RSS serves a reader's "read next" queue as a feed, so it can be followed
// from any feed reader.
type RSS struct {
	FeedHostname    string
	FeedAuthorName  string
	FeedAuthorEmail string
	ViewsCmd        command.Command[command.GetViewsRequest, domain.ReadingViews]
	CacheMaxAge     time.Duration
	Tokens          FeedTokens
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["user_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("user_id", userID))

	// Unknown readers and bad tokens look the same to the caller.
	if !c.Tokens.Valid(userID, vars["feed_token"]) {
		logger.WarnContext(ctx, "queue feed requested with invalid token")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	views, err := c.ViewsCmd.Execute(ctx, command.GetViewsRequest{UserID: userID})
	if err != nil {
		writeCommandError(ctx, w, "unable to fetch queue for feed", err)
		return
	}

	feed := &feeds.Feed{
		Title:       "Reading queue",
		Link:        &feeds.Link{Href: c.FeedHostname + c.Tokens.FeedPath(userID)},
		Description: fmt.Sprintf("What to read next this %s", views.TimeSlot),
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     views.GeneratedAt,
	}

	for _, a := range views.Queue {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          a.ID,
			IsPermaLink: "false",
			Title:       a.Title,
			Link:        &feeds.Link{Href: a.URL},
			Description: a.Excerpt,
			Author: &feeds.Author{
				Name: a.Creator.Nickname,
			},
			Created: a.SavedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
