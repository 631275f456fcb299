package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const notificationMaxRetry = 3

// Client enqueues background tasks. It satisfies the reconciliation
// Notifier so that push delivery happens outside the cycle.
type Client struct {
	client *asynq.Client
	queue  string
}

func NewClient(opt asynq.RedisConnOpt, queue string) *Client {
	if queue == "" {
		queue = "default"
	}

	return &Client{
		client: asynq.NewClient(opt),
		queue:  queue,
	}
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}

	return c.client.Close()
}

func (c *Client) Notify(ctx context.Context, pushToken, title, body string) error {
	task, err := NewNotificationTask(NotificationPayload{
		PushToken: pushToken,
		Title:     title,
		Body:      body,
	})
	if err != nil {
		return fmt.Errorf("build notification task: %w", err)
	}

	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(c.queue),
		asynq.MaxRetry(notificationMaxRetry))
	if err != nil {
		return fmt.Errorf("enqueue notification: %w", err)
	}

	return nil
}

// EnqueueCycle requests a reconciliation cycle now. A cycle that is already
// queued within uniqueFor is not enqueued twice.
func (c *Client) EnqueueCycle(ctx context.Context, uniqueFor time.Duration) error {
	opts := []asynq.Option{asynq.Queue(c.queue), asynq.MaxRetry(0)}
	if uniqueFor > 0 {
		opts = append(opts, asynq.Unique(uniqueFor))
	}

	if _, err := c.client.EnqueueContext(ctx, NewReconciliationCycleTask(), opts...); err != nil {
		return fmt.Errorf("enqueue reconciliation cycle: %w", err)
	}

	return nil
}
