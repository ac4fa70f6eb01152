package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/reading-queue/internal/domain"
	"github.com/jbeshir/reading-queue/internal/library"
)

type DeleteArticleRequest struct {
	UserID    string
	ArticleID string
}

type DeleteArticle struct {
	Library *library.Library
}

func (c *DeleteArticle) Execute(ctx context.Context, req DeleteArticleRequest) (domain.ReadingViews, error) {
	views, err := c.Library.Delete(ctx, req.UserID, req.ArticleID)
	if err != nil {
		return domain.ReadingViews{}, fmt.Errorf("deleting article: %w", err)
	}
	return views, nil
}

type DeleteAllArticlesRequest struct {
	UserID string
}

// DeleteAllArticles clears a reader's whole collection.
type DeleteAllArticles struct {
	Library *library.Library
}

func (c *DeleteAllArticles) Execute(ctx context.Context, req DeleteAllArticlesRequest) (domain.ReadingViews, error) {
	views, err := c.Library.DeleteAll(ctx, req.UserID)
	if err != nil {
		return domain.ReadingViews{}, fmt.Errorf("deleting all articles: %w", err)
	}

	domain.LoggerFromContext(ctx).InfoContext(ctx, "deleted all articles", "userID", req.UserID)
	return views, nil
}
