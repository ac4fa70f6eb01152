package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/reading-queue/internal/domain"
	"github.com/jbeshir/reading-queue/internal/library"
)

type SetArticleProgressRequest struct {
	UserID    string
	ArticleID string
	Progress  float64
}

type SetArticleProgress struct {
	Library *library.Library
}

func (c *SetArticleProgress) Execute(ctx context.Context, req SetArticleProgressRequest) (domain.ReadingViews, error) {
	views, err := c.Library.SetProgress(ctx, req.UserID, req.ArticleID, req.Progress)
	if err != nil {
		return domain.ReadingViews{}, fmt.Errorf("setting article progress: %w", err)
	}
	return views, nil
}
