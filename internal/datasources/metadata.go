package datasources

import (
	"context"
	"errors"

	"github.com/jbeshir/reading-queue/internal/domain"
)

var ErrMetadataUnavailable = errors.New("article metadata unavailable")

// MetadataFetcher looks up title, creator and reading time for a source URL.
// Lookups are best-effort, callers fall back to domain.FallbackMetadata.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, url string) (domain.ArticleMetadata, error)
}

// NullMetadataFetcher is a MetadataFetcher that never finds anything.
type NullMetadataFetcher struct{}

var _ MetadataFetcher = NullMetadataFetcher{}

func (NullMetadataFetcher) FetchMetadata(_ context.Context, _ string) (domain.ArticleMetadata, error) {
	return domain.ArticleMetadata{}, ErrMetadataUnavailable
}
