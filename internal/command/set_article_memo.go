package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/reading-queue/internal/domain"
	"github.com/jbeshir/reading-queue/internal/library"
)

type SetArticleMemoRequest struct {
	UserID    string
	ArticleID string
	Memo      string
}

type SetArticleMemo struct {
	Library *library.Library
}

func (c *SetArticleMemo) Execute(ctx context.Context, req SetArticleMemoRequest) (domain.ReadingViews, error) {
	views, err := c.Library.SetMemo(ctx, req.UserID, req.ArticleID, req.Memo)
	if err != nil {
		return domain.ReadingViews{}, fmt.Errorf("setting article memo: %w", err)
	}
	return views, nil
}
