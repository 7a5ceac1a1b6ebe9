package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/sitekit-labs/sitekit-api/internal/models"
)

const settingsKey = "reservation:settings"

// SettingsCache keeps the settings singleton in redis between writes. The
// store stays authoritative: every mutation invalidates the key. A nil
// client turns every method into a no-op.
type SettingsCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewSettingsCache(rdb *redis.Client, ttl time.Duration, logger zerolog.Logger) *SettingsCache {
	return &SettingsCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *SettingsCache) Get(ctx context.Context) *models.ReservationSettings {
	if c == nil || c.rdb == nil {
		return nil
	}

	b, err := c.rdb.Get(ctx, settingsKey).Bytes()
	if err != nil {
		return nil
	}

	var settings models.ReservationSettings
	if err := json.Unmarshal(b, &settings); err != nil {
		c.logger.Warn().Err(err).Msg("corrupt settings cache entry, dropping")
		c.Invalidate(ctx)
		return nil
	}

	return &settings
}

func (c *SettingsCache) Set(ctx context.Context, settings *models.ReservationSettings) {
	if c == nil || c.rdb == nil || settings == nil {
		return
	}

	b, err := json.Marshal(settings)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, settingsKey, b, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("failed to cache settings")
	}
}

func (c *SettingsCache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, settingsKey).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("failed to invalidate settings cache")
	}
}
