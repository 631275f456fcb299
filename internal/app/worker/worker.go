package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/ijalalfrz/flight-price-watch-service/internal/app/dto"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/logger"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/notification"
)

type CycleRunner interface {
	RunCycle(ctx context.Context) (dto.CycleReport, error)
}

type Sender interface {
	Notify(ctx context.Context, pushToken, title, body string) error
}

type Config struct {
	Queue       string
	Concurrency int
}

// Worker processes reconciliation cycles and push deliveries.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	cycles CycleRunner
	sender Sender
}

func NewWorker(opt asynq.RedisConnOpt, cfg Config, cycles CycleRunner, sender Sender) *Worker {
	queue := cfg.Queue
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server: server,
		mux:    mux,
		cycles: cycles,
		sender: sender,
	}

	mux.HandleFunc(TaskReconciliationCycle, w.handleReconciliationCycle)
	mux.HandleFunc(TaskNotificationSend, w.handleNotificationSend)

	return w
}

// Run processes tasks until ctx is done.
func (w *Worker) Run(ctx context.Context) error {
	if err := w.server.Start(w.mux); err != nil {
		return fmt.Errorf("start worker: %w", err)
	}

	slog.InfoContext(ctx, "worker started")

	<-ctx.Done()
	w.server.Shutdown()

	slog.InfoContext(ctx, "worker shutdown gracefully")

	return nil
}

// failed cycles are not retried, the next scheduled run picks them up
func (w *Worker) handleReconciliationCycle(ctx context.Context, task *asynq.Task) error {
	if id, ok := asynq.GetTaskID(ctx); ok {
		ctx = logger.WithTaskID(ctx, id)
	}

	report, err := w.cycles.RunCycle(ctx)
	if err != nil {
		return fmt.Errorf("reconciliation cycle: %v: %w", err, asynq.SkipRetry)
	}

	slog.InfoContext(ctx, "reconciliation task done",
		slog.Int("reconciled", report.Reconciled),
		slog.Int("failed", report.Failed))

	return nil
}

func (w *Worker) handleNotificationSend(ctx context.Context, task *asynq.Task) error {
	if id, ok := asynq.GetTaskID(ctx); ok {
		ctx = logger.WithTaskID(ctx, id)
	}

	payload, err := ParseNotificationPayload(task)
	if err != nil {
		return fmt.Errorf("parse notification payload: %v: %w", err, asynq.SkipRetry)
	}

	err = w.sender.Notify(ctx, payload.PushToken, payload.Title, payload.Body)

	switch {
	case errors.Is(err, notification.ErrEmptyToken):
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	case err != nil:
		slog.WarnContext(ctx, "push delivery failed", slog.String("error", err.Error()))
		return err
	}

	return nil
}
