package controller

import (
	"net/http"

	"github.com/jbeshir/reading-queue/internal/command"
	"github.com/jbeshir/reading-queue/internal/domain"
)

type ArticlesList struct {
	ListCmd command.Command[command.ListArticlesRequest, []domain.Article]
}

type ArticlesListResponse struct {
	Data     []domain.Article     `json:"data"`
	Metadata ArticlesListMetadata `json:"metadata"`
}

type ArticlesListMetadata struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

func (c ArticlesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	q := r.URL.Query()

	var status domain.ArticleStatus
	if q.Has("status") {
		parsed, err := domain.ParseArticleStatus(q.Get("status"))
		if err != nil {
			logger.WarnContext(ctx, "unable to parse status filter in query string", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		status = parsed
	}

	page, err := pageFromQuery(q)
	if err != nil {
		logger.WarnContext(ctx, "unable to parse pagination in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	articles, err := c.ListCmd.Execute(ctx, command.ListArticlesRequest{
		UserID: domain.UserIDFromContext(ctx),
		Status: status,
		Query:  q.Get("q"),
	})
	if err != nil {
		writeCommandError(ctx, w, "unable to list articles", err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, ArticlesListResponse{
		Data: paginate(articles, page),
		Metadata: ArticlesListMetadata{
			Total:    len(articles),
			Page:     page.Page,
			PageSize: page.PageSize,
		},
	})
}
