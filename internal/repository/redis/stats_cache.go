package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fleetDispatch/business/scoring"
	"fleetDispatch/domain"
	"fleetDispatch/pkg/apperror"

	"github.com/redis/go-redis/v9"
)

// StatsCache holds the learner's per-driver aggregates for inspection and for
// the scorer's feature lookups. It is a cache, never the source of truth; the
// event log is.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{
		client: client,
		ttl:    ttl,
	}
}

func statsKey(driverID string) string {
	return fmt.Sprintf("driver:stats:%s", driverID)
}

func (c *StatsCache) SaveStats(ctx context.Context, stat domain.DriverStat) error {
	raw, err := json.Marshal(stat)
	if err != nil {
		return fmt.Errorf("failed to marshal driver stats: %w", err)
	}

	if err := c.client.Set(ctx, statsKey(stat.DriverID), raw, c.ttl).Err(); err != nil {
		return apperror.NewUpstream("stats cache", err)
	}

	return nil
}

func (c *StatsCache) GetStats(ctx context.Context, driverID string) (domain.DriverStat, error) {
	val, err := c.client.Get(ctx, statsKey(driverID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// clean miss: driver with no learned history yet
			return domain.DriverStat{}, fmt.Errorf("%w: %s", scoring.ErrStatsMiss, driverID)
		}
		return domain.DriverStat{}, apperror.NewUpstream("stats cache", err)
	}

	var stat domain.DriverStat
	if err := json.Unmarshal([]byte(val), &stat); err != nil {
		return domain.DriverStat{}, fmt.Errorf("failed to unmarshal driver stats: %w", err)
	}

	return stat, nil
}
