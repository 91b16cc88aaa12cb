package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// RevocationStore remembers signed-out token ids until the token would have expired anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

const revokedPrefix = "revoked:"

type redisRevocations struct {
	rdb *redis.Client
}

func NewRedisRevocations(rdb *redis.Client) RevocationStore {
	return &redisRevocations{rdb: rdb}
}

func (r *redisRevocations) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return r.rdb.Set(ctx, revokedPrefix+jti, 1, ttl).Err()
}

func (r *redisRevocations) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.rdb.Exists(ctx, revokedPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// memoryRevocations is the single-process fallback used when redis is not configured.
type memoryRevocations struct {
	c *gocache.Cache
}

func NewMemoryRevocations() RevocationStore {
	return &memoryRevocations{c: gocache.New(30*time.Minute, 10*time.Minute)}
}

func (m *memoryRevocations) Revoke(_ context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	m.c.Set(revokedPrefix+jti, struct{}{}, ttl)
	return nil
}

func (m *memoryRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, found := m.c.Get(revokedPrefix + jti)
	return found, nil
}
