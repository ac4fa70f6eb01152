package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/reading-queue/internal/command"
	"github.com/jbeshir/reading-queue/internal/domain"
)

type ArticleGet struct {
	GetCmd command.Command[command.GetArticleRequest, domain.Article]
}

func (c ArticleGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID := mux.Vars(r)["article_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("article_id", articleID))

	article, err := c.GetCmd.Execute(ctx, command.GetArticleRequest{
		UserID:    domain.UserIDFromContext(ctx),
		ArticleID: articleID,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to fetch article", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, article)
}
