// Package scheduler runs daily jobs at fixed wall clock times in the
// reader's timezone.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/reading-queue/internal/domain"
	"github.com/robfig/cron/v3"
)

// Job runs once a day at At, given as "15:04".
type Job struct {
	Name string
	At   string
	Run  func(ctx context.Context) error
}

// Scheduler is a component running its jobs until its context is cancelled.
type Scheduler struct {
	Location *time.Location
	Jobs     []Job
}

// DailySpec converts a "15:04" time of day into a five field cron spec.
func DailySpec(at string) (string, error) {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return "", fmt.Errorf("invalid time of day %q: %w", at, err)
	}
	return fmt.Sprintf("%d %d * * *", t.Minute(), t.Hour()), nil
}

func (s *Scheduler) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	location := s.Location
	if location == nil {
		location = time.UTC
	}
	c := cron.New(cron.WithLocation(location))

	for _, job := range s.Jobs {
		spec, err := DailySpec(job.At)
		if err != nil {
			return fmt.Errorf("scheduling %s: %w", job.Name, err)
		}

		if _, err := c.AddFunc(spec, func() {
			jobCtx := domain.ContextWithLogger(ctx, logger.With("job", job.Name))
			if err := job.Run(jobCtx); err != nil {
				logger.ErrorContext(jobCtx, "scheduled job failed", "error", err)
			}
		}); err != nil {
			return fmt.Errorf("scheduling %s: %w", job.Name, err)
		}

		logger.InfoContext(ctx, "scheduled daily job", "job", job.Name, "at", job.At, "location", location.String())
	}

	c.Start()
	<-ctx.Done()

	// Wait for running jobs to finish.
	<-c.Stop().Done()
	return nil
}
