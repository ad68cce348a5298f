package queue

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/isipark/siteapi/config"
)

const redisJobsKey = "siteapi:queue:jobs"

// RedisDriver stores jobs in a Redis list so queued work survives
// restarts and can be processed by a separate worker process.
type RedisDriver struct {
	client *redis.Client
}

func NewRedisDriver() *RedisDriver {
	return &RedisDriver{
		client: redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr(),
			Password: config.RedisPassword(),
		}),
	}
}

func (d *RedisDriver) Push(payload []byte) error {
	return d.client.RPush(context.Background(), redisJobsKey, payload).Err()
}

func (d *RedisDriver) Pop(ctx context.Context) ([]byte, error) {
	res, err := d.client.BLPop(ctx, 5*time.Second, redisJobsKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // timeout, no job available
		}
		return nil, err
	}
	// BLPop returns [key, value]
	if len(res) < 2 {
		return nil, nil
	}
	return []byte(res[1]), nil
}

func (d *RedisDriver) Close() error {
	return d.client.Close()
}
