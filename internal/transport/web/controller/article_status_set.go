package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/reading-queue/internal/command"
	"github.com/jbeshir/reading-queue/internal/domain"
)

type ArticleStatusSet struct {
	SetStatusCmd command.Command[command.SetArticleStatusRequest, domain.ReadingViews]
}

func (c ArticleStatusSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	articleID := vars["article_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("article_id", articleID))

	status, err := domain.ParseArticleStatus(vars["status"])
	if err != nil {
		logger.WarnContext(ctx, "invalid status value", "value", vars["status"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	views, err := c.SetStatusCmd.Execute(ctx, command.SetArticleStatusRequest{
		UserID:    domain.UserIDFromContext(ctx),
		ArticleID: articleID,
		Status:    status,
	})
	if err != nil {
		writeCommandError(ctx, w, "failed to set article status", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, views)
}
