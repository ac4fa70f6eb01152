package scheduler

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jbeshir/reading-queue/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySpec(t *testing.T) {
	cases := []struct {
		name    string
		at      string
		want    string
		wantErr bool
	}{
		{name: "after_midnight", at: "00:05", want: "5 0 * * *"},
		{name: "morning", at: "07:30", want: "30 7 * * *"},
		{name: "evening", at: "21:00", want: "0 21 * * *"},
		{name: "invalid_hour", at: "25:00", wantErr: true},
		{name: "not_a_time", at: "soon", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DailySpec(tc.at)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestScheduler_Run_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())

	s := &Scheduler{
		Location: time.UTC,
		Jobs: []Job{
			{Name: "refresh", At: "00:05", Run: func(context.Context) error { return nil }},
		},
	}

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_Run_InvalidJob(t *testing.T) {
	s := &Scheduler{
		Jobs: []Job{
			{Name: "digest", At: "7am", Run: func(context.Context) error { return nil }},
		},
	}

	err := s.Run(testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheduling digest")
}
