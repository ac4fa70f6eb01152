package datasources

import (
	"context"

	"github.com/jbeshir/reading-queue/internal/domain"
)

// DigestSender delivers a reader's daily digest.
type DigestSender interface {
	SendDigest(ctx context.Context, digest domain.Digest) error
}

// NullDigestSender drops every digest.
type NullDigestSender struct{}

var _ DigestSender = NullDigestSender{}

func (NullDigestSender) SendDigest(_ context.Context, _ domain.Digest) error {
	return nil
}
