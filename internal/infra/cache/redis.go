package cache

import (
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/founderflow/founderflow/internal/config"
)

// New returns a client, or nil when no redis address is configured.
func New(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
}

func RegisterOpenTelemetryPlugin(rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}
	return redisotel.InstrumentTracing(rdb)
}
