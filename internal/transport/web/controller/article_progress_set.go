package controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jbeshir/reading-queue/internal/command"
	"github.com/jbeshir/reading-queue/internal/domain"
)

type ArticleProgressSet struct {
	SetProgressCmd command.Command[command.SetArticleProgressRequest, domain.ReadingViews]
}

func (c ArticleProgressSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	articleID := vars["article_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("article_id", articleID))

	progress, err := strconv.ParseFloat(vars["progress"], 64)
	if err != nil || math.IsNaN(progress) || math.IsInf(progress, 0) {
		logger.WarnContext(ctx, "invalid progress value", "value", vars["progress"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	views, err := c.SetProgressCmd.Execute(ctx, command.SetArticleProgressRequest{
		UserID:    domain.UserIDFromContext(ctx),
		ArticleID: articleID,
		Progress:  progress,
	})
	if err != nil {
		writeCommandError(ctx, w, "failed to set article progress", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, views)
}
