package cache

import (
	"context"
	"errors"
	"time"

	"github.com/ayush-verma790/question-gen-sub001/internal/utils"
	"github.com/redis/go-redis/v9"
)

const xmlKeyPrefix = "qti:xml:"

// XMLCache caches generated QTI documents keyed by question identifier so
// repeat downloads skip regeneration. A miss is not an error.
type XMLCache interface {
	Set(ctx context.Context, identifier, xml string, ttl time.Duration) error
	Get(ctx context.Context, identifier string) (string, bool, error)
	Delete(ctx context.Context, identifier string) error
}

type redisCache struct {
	client *redis.Client
	logger utils.Logger
}

func NewRedisCache(client *redis.Client, logger utils.Logger) XMLCache {
	return &redisCache{
		client: client,
		logger: logger,
	}
}

func (r *redisCache) Set(ctx context.Context, identifier, xml string, ttl time.Duration) error {
	if err := r.client.Set(ctx, xmlKeyPrefix+identifier, xml, ttl).Err(); err != nil {
		r.logger.Warn("cache set failed", "identifier", identifier, "error", err)
		return err
	}
	return nil
}

func (r *redisCache) Get(ctx context.Context, identifier string) (string, bool, error) {
	val, err := r.client.Get(ctx, xmlKeyPrefix+identifier).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		r.logger.Warn("cache get failed", "identifier", identifier, "error", err)
		return "", false, err
	}
	return val, true, nil
}

func (r *redisCache) Delete(ctx context.Context, identifier string) error {
	return r.client.Del(ctx, xmlKeyPrefix+identifier).Err()
}
