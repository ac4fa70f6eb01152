package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/reading-queue/internal/command"
	"github.com/jbeshir/reading-queue/internal/domain"
)

// maxMemoBytes bounds the request body of a memo update.
const maxMemoBytes = 64 << 10

type ArticleMemoSet struct {
	SetMemoCmd command.Command[command.SetArticleMemoRequest, domain.ReadingViews]
}

type ArticleMemoSetRequest struct {
	Memo string `json:"memo"`
}

func (c ArticleMemoSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID := mux.Vars(r)["article_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("article_id", articleID))

	var body ArticleMemoSetRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMemoBytes)).Decode(&body); err != nil {
		logger.WarnContext(ctx, "invalid memo request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	views, err := c.SetMemoCmd.Execute(ctx, command.SetArticleMemoRequest{
		UserID:    domain.UserIDFromContext(ctx),
		ArticleID: articleID,
		Memo:      body.Memo,
	})
	if err != nil {
		writeCommandError(ctx, w, "failed to set article memo", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, views)
}
