package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/reading-queue/internal/command"
	"github.com/jbeshir/reading-queue/internal/domain"
)

type ArticleDelete struct {
	DeleteCmd command.Command[command.DeleteArticleRequest, domain.ReadingViews]
}

func (c ArticleDelete) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID := mux.Vars(r)["article_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("article_id", articleID))

	views, err := c.DeleteCmd.Execute(ctx, command.DeleteArticleRequest{
		UserID:    domain.UserIDFromContext(ctx),
		ArticleID: articleID,
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to delete article", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, views)
}

type ArticlesDeleteAll struct {
	DeleteAllCmd command.Command[command.DeleteAllArticlesRequest, domain.ReadingViews]
}

func (c ArticlesDeleteAll) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	views, err := c.DeleteAllCmd.Execute(ctx, command.DeleteAllArticlesRequest{
		UserID: domain.UserIDFromContext(ctx),
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to delete all articles", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, views)
}
