package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pharmacy_store/internal/platform/config"
)

// Connect opens the Redis client used by the order queue and verifies it.
func Connect(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to Redis: %w", err)
	}
	return rdb, nil
}

// OrderQueue is a FIFO of placed order ids backed by a Redis list.
// Producers LPUSH, consumers BRPOP.
type OrderQueue struct {
	rdb  redis.Cmdable
	name string
}

func NewOrderQueue(rdb redis.Cmdable, name string) *OrderQueue {
	return &OrderQueue{rdb: rdb, name: name}
}

func (q *OrderQueue) Name() string {
	return q.name
}

// Publish pushes orderID onto the queue.
func (q *OrderQueue) Publish(ctx context.Context, orderID string) error {
	if err := q.rdb.LPush(ctx, q.name, orderID).Err(); err != nil {
		return fmt.Errorf("failed to push order %s to queue %s: %w", orderID, q.name, err)
	}
	return nil
}

// Pop blocks up to timeout for the next order id. It returns "" and a nil
// error when the timeout expires with the queue empty.
func (q *OrderQueue) Pop(ctx context.Context, timeout time.Duration) (string, error) {
	res, err := q.rdb.BRPop(ctx, timeout, q.name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	// res is [queueName, value]
	if len(res) < 2 {
		return "", nil
	}
	return res[1], nil
}
