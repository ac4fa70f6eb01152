package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/reading-queue/internal/datasources"
	"github.com/jbeshir/reading-queue/internal/domain"
	"github.com/jbeshir/reading-queue/internal/library"
)

type SendDigestRequest struct {
	UserID string
}

// SendDigest sends a reader their current queue and streak. Nothing is sent
// when there is nothing to read and nothing to archive.
type SendDigest struct {
	Library *library.Library
	Sender  datasources.DigestSender
}

func (c *SendDigest) Execute(ctx context.Context, req SendDigestRequest) (Empty, error) {
	logger := domain.LoggerFromContext(ctx)

	views, err := c.Library.Views(ctx, req.UserID)
	if err != nil {
		return Empty{}, fmt.Errorf("getting views: %w", err)
	}

	digest := domain.NewDigest(req.UserID, views)
	if digest.IsEmpty() {
		logger.DebugContext(ctx, "digest empty, not sending", "userID", req.UserID)
		return Empty{}, nil
	}

	if err := c.Sender.SendDigest(ctx, digest); err != nil {
		return Empty{}, fmt.Errorf("sending digest: %w", err)
	}

	logger.InfoContext(ctx, "sent digest", "userID", req.UserID, "queued", len(digest.Queue))
	return Empty{}, nil
}

// RefreshViews derives every loaded reader's views again at the current time.
type RefreshViews struct {
	Library *library.Library
}

func (c *RefreshViews) Execute(ctx context.Context, _ Empty) (Empty, error) {
	count := c.Library.Refresh(ctx)
	domain.LoggerFromContext(ctx).InfoContext(ctx, "refreshed reader views", "readers", count)
	return Empty{}, nil
}
