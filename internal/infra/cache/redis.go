package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"raffle-core/internal/pkg/config"
	"raffle-core/internal/pkg/errs"
	"raffle-core/internal/usecase/queries"
)

const raffleKeyPrefix = "raffle:view:"

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, nil, errs.Wrap(err, "failed to ping redis")
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
	return client, cleanup, nil
}

// RaffleCache fronts catalog reads with Redis. Every failure degrades to a
// cache miss; the database stays the source of truth.
type RaffleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRaffleCache(client *redis.Client, cfg config.RedisConfig) queries.CatalogCache {
	return &RaffleCache{client: client, ttl: cfg.CacheTTL}
}

func (c *RaffleCache) GetRaffle(ctx context.Context, id uuid.UUID) (*queries.RaffleView, bool) {
	data, err := c.client.Get(ctx, raffleKeyPrefix+id.String()).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("raffle cache read failed", "raffle_id", id, "error", err.Error())
		}
		return nil, false
	}

	var view queries.RaffleView
	if err := json.Unmarshal(data, &view); err != nil {
		slog.Warn("raffle cache entry corrupt", "raffle_id", id, "error", err.Error())
		return nil, false
	}
	return &view, true
}

func (c *RaffleCache) SetRaffle(ctx context.Context, view *queries.RaffleView) {
	data, err := json.Marshal(view)
	if err != nil {
		slog.Warn("failed to marshal raffle view for cache", "raffle_id", view.ID, "error", err.Error())
		return
	}
	if err := c.client.Set(ctx, raffleKeyPrefix+view.ID.String(), data, c.ttl).Err(); err != nil {
		slog.Warn("raffle cache write failed", "raffle_id", view.ID, "error", err.Error())
	}
}

func (c *RaffleCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if err := c.client.Del(ctx, raffleKeyPrefix+id.String()).Err(); err != nil {
		slog.Warn("raffle cache invalidation failed", "raffle_id", id, "error", err.Error())
	}
}
