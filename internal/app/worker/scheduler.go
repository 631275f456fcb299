package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

// Scheduler enqueues a reconciliation cycle on a cron schedule (UTC).
type Scheduler struct {
	scheduler *asynq.Scheduler
	cron      string
	queue     string
	uniqueFor time.Duration
}

func NewScheduler(opt asynq.RedisConnOpt, cron, queue string, uniqueFor time.Duration) *Scheduler {
	if queue == "" {
		queue = "default"
	}

	return &Scheduler{
		scheduler: asynq.NewScheduler(opt, &asynq.SchedulerOpts{Location: time.UTC}),
		cron:      cron,
		queue:     queue,
		uniqueFor: uniqueFor,
	}
}

func (s *Scheduler) Run(ctx context.Context) error {
	opts := []asynq.Option{asynq.Queue(s.queue), asynq.MaxRetry(0)}
	if s.uniqueFor > 0 {
		opts = append(opts, asynq.Unique(s.uniqueFor))
	}

	entryID, err := s.scheduler.Register(s.cron, NewReconciliationCycleTask(), opts...)
	if err != nil {
		return fmt.Errorf("register reconciliation cron %q: %w", s.cron, err)
	}

	slog.InfoContext(ctx, "reconciliation cycle scheduled",
		slog.String("cron", s.cron),
		slog.String("entry_id", entryID))

	if err := s.scheduler.Start(); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	<-ctx.Done()
	s.scheduler.Shutdown()

	return nil
}
