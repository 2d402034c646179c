package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisPriceCache implements cache.PriceCache using Redis.
// Amounts are stored as plain integers under prefix+priceID.
type RedisPriceCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisPriceCache creates a RedisPriceCache from a redis:// URL.
func NewRedisPriceCache(url, prefix string, logger *slog.Logger) (*RedisPriceCache, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return NewRedisPriceCacheWithOptions(opt, prefix, logger), nil
}

// NewRedisPriceCacheWithOptions creates a RedisPriceCache from redis.Options.
func NewRedisPriceCacheWithOptions(
	opt *redis.Options,
	prefix string,
	logger *slog.Logger,
) *RedisPriceCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisPriceCache{
		client: redis.NewClient(opt),
		prefix: prefix,
		logger: logger,
	}
}

func (r *RedisPriceCache) key(priceID string) string {
	return r.prefix + priceID
}

func (r *RedisPriceCache) Get(ctx context.Context, priceID string) (int64, bool, error) {
	amount, err := r.client.Get(ctx, r.key(priceID)).Int64()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis cache miss", "price_id", priceID)
		return 0, false, nil
	}
	if err != nil {
		r.logger.Error("Redis cache get error", "price_id", priceID, "error", err)
		return 0, false, err
	}
	r.logger.Debug("Redis cache hit", "price_id", priceID, "amount", amount)
	return amount, true, nil
}

func (r *RedisPriceCache) Set(
	ctx context.Context,
	priceID string,
	amount int64,
	ttl time.Duration,
) error {
	if err := r.client.Set(ctx, r.key(priceID), amount, ttl).Err(); err != nil {
		r.logger.Error("Redis cache set error", "price_id", priceID, "error", err)
		return err
	}
	r.logger.Debug("Redis cache set", "price_id", priceID, "amount", amount, "ttl", ttl)
	return nil
}

func (r *RedisPriceCache) Delete(ctx context.Context, priceID string) error {
	if err := r.client.Del(ctx, r.key(priceID)).Err(); err != nil {
		r.logger.Error("Redis cache delete error", "price_id", priceID, "error", err)
		return err
	}
	r.logger.Debug("Redis cache delete", "price_id", priceID)
	return nil
}

// Ping checks connectivity.
func (r *RedisPriceCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisPriceCache) Close() error {
	return r.client.Close()
}
