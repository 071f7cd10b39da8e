package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"bookstore-web/pkg/logger"
)

// Enqueuer schedules background tasks.
type Enqueuer interface {
	Enqueue(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error
}

// Client is the asynq-backed Enqueuer.
type Client struct {
	client *asynq.Client
}

var _ Enqueuer = (*Client)(nil)

func NewClient(redisAddr, password string, db int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: password,
			DB:       db,
		}),
	}
}

func (c *Client) Enqueue(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}

	info, err := c.client.EnqueueContext(ctx, asynq.NewTask(taskType, data), opts...)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}

	logger.Debug("task enqueued", map[string]interface{}{
		"type":  taskType,
		"id":    info.ID,
		"queue": info.Queue,
	})
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
