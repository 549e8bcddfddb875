package redissvc

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/sales-analytics/internal/config"
)

type RedisService struct {
	rdb *redis.Client
}

// New connects to Redis and checks the connection. It returns nil and no
// error when no address is configured.
func New(ctx context.Context, cfg config.RedisConfig) (*RedisService, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", cfg.Addr, err)
	}
	return NewRedisService(rdb), nil
}

func NewRedisService(rdb *redis.Client) *RedisService {
	return &RedisService{rdb: rdb}
}

func (a *RedisService) Rdb() *redis.Client {
	return a.rdb
}

func (a *RedisService) Close() error {
	return a.rdb.Close()
}
