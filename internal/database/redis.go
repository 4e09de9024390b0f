package database

import (
	"fmt"

	"github.com/go-redis/redis"

	"github.com/quickfixlabs/receptionist/internal/config"
)

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Pass,
	})
	if _, err := client.Ping().Result(); err != nil {
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}
