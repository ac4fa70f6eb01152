package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/reading-queue/internal/domain"
	"github.com/jbeshir/reading-queue/internal/library"
)

type SetArticleStatusRequest struct {
	UserID    string
	ArticleID string
	Status    domain.ArticleStatus
}

// SetArticleStatus moves an article through unread, reading, read and archived.
type SetArticleStatus struct {
	Library *library.Library
}

func (c *SetArticleStatus) Execute(ctx context.Context, req SetArticleStatusRequest) (domain.ReadingViews, error) {
	views, err := c.Library.SetStatus(ctx, req.UserID, req.ArticleID, req.Status)
	if err != nil {
		return domain.ReadingViews{}, fmt.Errorf("setting article status: %w", err)
	}
	return views, nil
}
