package datasources

import (
	"context"

	"github.com/jbeshir/reading-queue/internal/domain"
)

// ViewsPublisher makes freshly derived views available outside the process.
type ViewsPublisher interface {
	PublishViews(ctx context.Context, userID string, views domain.ReadingViews) error
}

// NullViewsPublisher is a null implementation of ViewsPublisher.
type NullViewsPublisher struct{}

var _ ViewsPublisher = NullViewsPublisher{}

func (NullViewsPublisher) PublishViews(_ context.Context, _ string, _ domain.ReadingViews) error {
	return nil
}
