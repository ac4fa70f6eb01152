package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/reading-queue/internal/command"
	"github.com/jbeshir/reading-queue/internal/domain"
)

type ArticleSave struct {
	SaveCmd command.Command[command.SaveArticleRequest, command.SaveArticleResult]
}

type ArticleSaveRequest struct {
	URL string `json:"url"`
}

type ArticleSaveResponse struct {
	Article domain.Article      `json:"article"`
	Views   domain.ReadingViews `json:"views"`
}

func (c ArticleSave) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body ArticleSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.URL == "" {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "invalid save article request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	res, err := c.SaveCmd.Execute(ctx, command.SaveArticleRequest{
		UserID: domain.UserIDFromContext(ctx),
		URL:    body.URL,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to save article", err)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, ArticleSaveResponse{
		Article: res.Article,
		Views:   res.Views,
	})
}
