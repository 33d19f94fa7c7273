package redis

import (
	"context"
	"errors"
	"time"

	"github.com/JMURv/go-attractions/internal/cache"
	"github.com/JMURv/go-attractions/internal/config"
	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

const scanBatch = 100

type Cache struct {
	cli *redis.Client
}

func New(conf config.RedisConfig) *Cache {
	cli := redis.NewClient(
		&redis.Options{
			Addr:     conf.Addr,
			Password: conf.Pass,
			DB:       conf.DB,
		},
	)

	if _, err := cli.Ping(context.Background()).Result(); err != nil {
		zap.L().Fatal("Failed to connect to Redis", zap.String("addr", conf.Addr), zap.Error(err))
	}

	return &Cache{cli: cli}
}

func (c *Cache) Close() error {
	return c.cli.Close()
}

// GetToStruct decodes the JSON value stored under key into dest.
func (c *Cache) GetToStruct(ctx context.Context, key string, dest any) error {
	const op = "cache.GetToStruct.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	val, err := c.cli.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return cache.ErrNotFoundInCache
	} else if err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Debug("Failed to get from cache", zap.String("op", op), zap.String("key", key), zap.Error(err))
		return err
	}

	if err = json.Unmarshal(val, dest); err != nil {
		zap.L().Debug("Failed to decode cached value", zap.String("op", op), zap.String("key", key), zap.Error(err))
		return err
	}

	return nil
}

func (c *Cache) Set(ctx context.Context, t time.Duration, key string, val any) {
	const op = "cache.Set.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.cli.Set(ctx, key, val, t).Err(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Debug("Failed to set to cache", zap.String("op", op), zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) Delete(ctx context.Context, key string) {
	const op = "cache.Delete.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.cli.Del(ctx, key).Err(); err != nil {
		span.SetTag(config.ErrorSpanTag, true)
		zap.L().Debug("Failed to delete from cache", zap.String("op", op), zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) InvalidateKeysByPattern(ctx context.Context, pattern string) {
	const op = "cache.InvalidateKeysByPattern.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var cursor uint64
	for {
		keys, next, err := c.cli.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			span.SetTag(config.ErrorSpanTag, true)
			zap.L().Debug("Failed to scan keys", zap.String("op", op), zap.String("pattern", pattern), zap.Error(err))
			return
		}

		if len(keys) > 0 {
			if err = c.cli.Del(ctx, keys...).Err(); err != nil {
				span.SetTag(config.ErrorSpanTag, true)
				zap.L().Debug("Failed to delete keys", zap.String("op", op), zap.Strings("keys", keys), zap.Error(err))
			}
		}

		cursor = next
		if cursor == 0 {
			return
		}
	}
}
