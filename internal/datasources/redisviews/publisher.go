package redisviews

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jbeshir/reading-queue/internal/datasources"
	"github.com/jbeshir/reading-queue/internal/domain"
)

const (
	keyPrefix      = "reading-queue:views:"
	UpdatesChannel = "reading-queue:views-updated"
)

var _ datasources.ViewsPublisher = (*Publisher)(nil)

// Client is the subset of the redis client the publisher needs.
type Client interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Publisher stores each reader's latest views as JSON and announces the
// update on UpdatesChannel with the reader's ID as the message.
type Publisher struct {
	client Client
	ttl    time.Duration
}

func NewPublisher(client Client, ttl time.Duration) *Publisher {
	return &Publisher{client: client, ttl: ttl}
}

// Connect creates a redis client for addr and checks it responds.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("checking redis connection: %w", err)
	}
	return client, nil
}

// ViewsKey is where the views for userID are stored.
func ViewsKey(userID string) string {
	return keyPrefix + userID
}

func (p *Publisher) PublishViews(ctx context.Context, userID string, views domain.ReadingViews) error {
	encoded, err := json.Marshal(views)
	if err != nil {
		return fmt.Errorf("encoding views: %w", err)
	}

	if err := p.client.Set(ctx, ViewsKey(userID), encoded, p.ttl).Err(); err != nil {
		return fmt.Errorf("storing views: %w", err)
	}
	if err := p.client.Publish(ctx, UpdatesChannel, userID).Err(); err != nil {
		return fmt.Errorf("announcing views update: %w", err)
	}
	return nil
}
