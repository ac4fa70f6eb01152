package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/reading-queue/internal/domain"
	"github.com/jbeshir/reading-queue/internal/library"
)

type GetViewsRequest struct {
	UserID string
}

// GetViews returns a reader's current queue, archive suggestions and stats.
type GetViews struct {
	Library *library.Library
}

func (c *GetViews) Execute(ctx context.Context, req GetViewsRequest) (domain.ReadingViews, error) {
	views, err := c.Library.Views(ctx, req.UserID)
	if err != nil {
		return domain.ReadingViews{}, fmt.Errorf("getting views: %w", err)
	}
	return views, nil
}

type GetArticleRequest struct {
	UserID    string
	ArticleID string
}

type GetArticle struct {
	Library *library.Library
}

func (c *GetArticle) Execute(ctx context.Context, req GetArticleRequest) (domain.Article, error) {
	article, err := c.Library.Article(ctx, req.UserID, req.ArticleID)
	if err != nil {
		return domain.Article{}, fmt.Errorf("getting article: %w", err)
	}
	return article, nil
}

type ListArticlesRequest struct {
	UserID string
	// Status limits the result to one status when set.
	Status domain.ArticleStatus
	Query  string
}

// ListArticles lists a reader's scored articles, newest first, filtered by
// status and a free text query.
type ListArticles struct {
	Library *library.Library
}

func (c *ListArticles) Execute(ctx context.Context, req ListArticlesRequest) ([]domain.Article, error) {
	views, err := c.Library.Views(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}
	return domain.FilterArticles(views.Articles, req.Status, req.Query), nil
}
