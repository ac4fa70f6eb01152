package command

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/jbeshir/reading-queue/internal/datasources"
	"github.com/jbeshir/reading-queue/internal/domain"
	"github.com/jbeshir/reading-queue/internal/library"
)

// ErrInvalidURL is returned when a saved URL is not an absolute http(s) URL.
var ErrInvalidURL = errors.New("invalid article URL")

type SaveArticleRequest struct {
	UserID string
	URL    string
}

type SaveArticleResult struct {
	Article domain.Article
	Views   domain.ReadingViews
}

// SaveArticle bookmarks a URL. Metadata is looked up first; if that fails the
// article is still saved with metadata derived from the URL alone.
type SaveArticle struct {
	MetadataFetcher datasources.MetadataFetcher
	Library         *library.Library
}

func NewSaveArticle(metadataFetcher datasources.MetadataFetcher, lib *library.Library) *SaveArticle {
	return &SaveArticle{
		MetadataFetcher: metadataFetcher,
		Library:         lib,
	}
}

func (c *SaveArticle) Execute(ctx context.Context, req SaveArticleRequest) (SaveArticleResult, error) {
	logger := domain.LoggerFromContext(ctx)

	rawURL := strings.TrimSpace(req.URL)
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return SaveArticleResult{}, fmt.Errorf("%w: %q", ErrInvalidURL, req.URL)
	}

	// Fetched without holding the library lock.
	meta, err := c.MetadataFetcher.FetchMetadata(ctx, rawURL)
	if err != nil {
		logger.WarnContext(ctx, "failed to fetch article metadata, using fallback",
			"error", err, "url", rawURL)
		meta = domain.FallbackMetadata(rawURL)
	}

	id := uuid.NewString()
	views, err := c.Library.Save(ctx, req.UserID, id, rawURL, meta)
	if err != nil {
		return SaveArticleResult{}, fmt.Errorf("saving article: %w", err)
	}

	logger.DebugContext(ctx, "saved article", "articleID", id, "url", rawURL)

	return SaveArticleResult{Article: views.Articles[0], Views: views}, nil
}
