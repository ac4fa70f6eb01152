package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/reading-queue/internal/domain"
	"github.com/jbeshir/reading-queue/internal/library"
)

type ArchiveArticlesRequest struct {
	UserID     string
	ArticleIDs []string
}

// ArchiveArticles archives several articles at once, typically the accepted
// archive suggestions.
type ArchiveArticles struct {
	Library *library.Library
}

func (c *ArchiveArticles) Execute(ctx context.Context, req ArchiveArticlesRequest) (domain.ReadingViews, error) {
	views, err := c.Library.Archive(ctx, req.UserID, req.ArticleIDs)
	if err != nil {
		return domain.ReadingViews{}, fmt.Errorf("archiving articles: %w", err)
	}

	domain.LoggerFromContext(ctx).DebugContext(ctx, "archived articles", "count", len(req.ArticleIDs))
	return views, nil
}
