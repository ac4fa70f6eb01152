package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/reading-queue/internal/command"
	"github.com/jbeshir/reading-queue/internal/domain"
)

type ArticlesArchive struct {
	ArchiveCmd command.Command[command.ArchiveArticlesRequest, domain.ReadingViews]
}

type ArticlesArchiveRequest struct {
	IDs []string `json:"ids"`
}

func (c ArticlesArchive) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body ArticlesArchiveRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.IDs) == 0 {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "invalid archive request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	views, err := c.ArchiveCmd.Execute(ctx, command.ArchiveArticlesRequest{
		UserID:     domain.UserIDFromContext(ctx),
		ArticleIDs: body.IDs,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to archive articles", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, views)
}
