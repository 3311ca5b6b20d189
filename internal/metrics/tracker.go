// Package metrics tracks transformation outcomes in Redis. Counters
// are best-effort: a Redis failure is logged and never surfaces to the
// transform call that triggered it.
package metrics

import (
	"context"
	"time"

	"github.com/jonesrussell/north-cloud/social-publisher/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Stats represents aggregated transformation statistics
type Stats struct {
	TotalTemplated int64           `json:"total_templated"`
	TotalDefault   int64           `json:"total_default"`
	Platforms      []PlatformStats `json:"platforms"`
}

// PlatformStats represents statistics for a specific platform
type PlatformStats struct {
	Name      string `json:"name"`
	Templated int64  `json:"templated"`
	Default   int64  `json:"default"`
}

// Tracker counts transformations per platform using Redis
type Tracker struct {
	client    redis.UniversalClient
	keys      *RedisKeys
	logger    logger.Logger
	platforms []string // for GetStats aggregation
}

// NewTracker creates a new metrics tracker
func NewTracker(client redis.UniversalClient, platforms []string, log logger.Logger) *Tracker {
	return &Tracker{
		client:    client,
		keys:      NewRedisKeys(KeyPrefixMetrics),
		logger:    log,
		platforms: platforms,
	}
}

// RecordTransformation increments the counter for a platform and path.
// Implements the transformer's Recorder interface.
func (t *Tracker) RecordTransformation(ctx context.Context, platform string, defaultPath bool) {
	key := t.keys.Templated(platform)
	if defaultPath {
		key = t.keys.Default(platform)
	}
	ttl := MetricsTTLDays * HoursPerDay * time.Hour

	// Pipeline the increment with its TTL refresh
	pipe := t.client.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		t.logger.Warn("Failed to record transformation",
			logger.String("platform", platform),
			logger.String("redis_key", key),
			logger.Error(err),
		)
	}
}

// GetStats returns aggregated statistics across all known platforms
func (t *Tracker) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{Platforms: make([]PlatformStats, 0, len(t.platforms))}

	for _, platform := range t.platforms {
		templated, err := t.getCounter(ctx, t.keys.Templated(platform))
		if err != nil {
			return nil, err
		}
		defaulted, err := t.getCounter(ctx, t.keys.Default(platform))
		if err != nil {
			return nil, err
		}

		stats.Platforms = append(stats.Platforms, PlatformStats{
			Name:      platform,
			Templated: templated,
			Default:   defaulted,
		})
		stats.TotalTemplated += templated
		stats.TotalDefault += defaulted
	}

	return stats, nil
}

func (t *Tracker) getCounter(ctx context.Context, key string) (int64, error) {
	val, err := t.client.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return val, nil
}
