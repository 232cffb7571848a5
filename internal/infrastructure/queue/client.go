package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"bookworm-backend/internal/config"
	"bookworm-backend/internal/shared"
)

// Client enqueues background tasks. Cover cleanup is the only producer
// today; failures are the caller's to log and swallow since cleanup is
// best-effort.
type Client struct {
	client *asynq.Client
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// EnqueueDeleteCover schedules removal of a stored cover image.
func (c *Client) EnqueueDeleteCover(ctx context.Context, coverURL string) error {
	payload, err := json.Marshal(shared.DeleteCoverPayload{CoverURL: coverURL})
	if err != nil {
		return fmt.Errorf("marshal delete cover payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeDeleteBookCover, payload)
	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue("low"),
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", shared.TypeDeleteBookCover, err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
