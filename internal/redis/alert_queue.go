package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Fouss011/ayii-ratp/internal/domain"
	"github.com/Fouss011/ayii-ratp/pkg/e"
)

// AlertQueue buffers flagged alert zones for the webhook sender. LPUSH on the
// write side, BRPOP on the worker side.
type AlertQueue struct {
	client *redis.Client
	key    string
}

func NewAlertQueue(client *redis.Client, key string) *AlertQueue {
	return &AlertQueue{client: client, key: key}
}

func (q *AlertQueue) Enqueue(ctx context.Context, zone domain.AlertZone) error {
	b, err := json.Marshal(zone)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *AlertQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.AlertZone, error) {
	var z domain.AlertZone

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return z, e.ErrQueueEmpty
		}
		return z, err
	}
	if len(res) < 2 {
		return z, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &z); err != nil {
		return z, err
	}
	return z, nil
}
