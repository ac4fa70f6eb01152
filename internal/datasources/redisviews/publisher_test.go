package redisviews

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jbeshir/reading-queue/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	values    map[string][]byte
	ttls      map[string]time.Duration
	published []string
	setErr    error
}

func (f *fakeClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.values[key] = value.([]byte)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeClient) Publish(_ context.Context, channel string, message interface{}) *redis.IntCmd {
	f.published = append(f.published, channel+"|"+message.(string))
	return redis.NewIntResult(1, nil)
}

func newFakeClient() *fakeClient {
	return &fakeClient{values: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func TestPublisher_PublishViews(t *testing.T) {
	now := time.Date(2024, 6, 15, 15, 0, 0, 0, time.UTC)
	views := domain.DeriveViews([]domain.Article{
		{ID: "a", Status: domain.ArticleStatusUnread, SavedAt: now, Hashtags: []string{}},
	}, now)

	client := newFakeClient()
	publisher := NewPublisher(client, time.Hour)

	require.NoError(t, publisher.PublishViews(context.Background(), "user-1", views))

	stored, ok := client.values["reading-queue:views:user-1"]
	require.True(t, ok)
	assert.Equal(t, time.Hour, client.ttls["reading-queue:views:user-1"])

	var decoded domain.ReadingViews
	require.NoError(t, json.Unmarshal(stored, &decoded))
	require.Len(t, decoded.Queue, 1)
	assert.Equal(t, "a", decoded.Queue[0].ID)
	assert.Equal(t, domain.TimeSlotAfternoon, decoded.TimeSlot)

	assert.Equal(t, []string{UpdatesChannel + "|user-1"}, client.published)
}

func TestPublisher_SetFailureSkipsAnnouncement(t *testing.T) {
	client := newFakeClient()
	client.setErr = errors.New("connection refused")
	publisher := NewPublisher(client, time.Hour)

	err := publisher.PublishViews(context.Background(), "user-1", domain.ReadingViews{})

	assert.ErrorContains(t, err, "storing views")
	assert.Empty(t, client.published)
}
