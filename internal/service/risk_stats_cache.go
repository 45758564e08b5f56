package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"maternal-care-backend/internal/domain/careplan"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// RedisRiskStatsKeyPrefix namespaces the per-midwife statistics snapshot
	RedisRiskStatsKeyPrefix = "risk:stats:"

	// Timeout for individual Redis operations
	redisCacheTimeout = 2 * time.Second
)

// RiskStatsCache keeps the last computed risk statistics per midwife.
// Misses and Redis failures fall through to the database; they are never fatal.
type RiskStatsCache interface {
	Get(ctx context.Context, midwifeID uuid.UUID) (*careplan.RiskStats, bool)
	Set(ctx context.Context, midwifeID uuid.UUID, stats careplan.RiskStats)
	Invalidate(ctx context.Context, midwifeID uuid.UUID)
}

type redisRiskStatsCache struct {
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

func NewRiskStatsCache(redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) RiskStatsCache {
	return &redisRiskStatsCache{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

func (c *redisRiskStatsCache) Get(ctx context.Context, midwifeID uuid.UUID) (*careplan.RiskStats, bool) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := c.redisClient.Get(ctx, riskStatsKey(midwifeID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read risk stats cache for midwife %s: %+v", midwifeID, err)
		}
		return nil, false
	}

	var stats careplan.RiskStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		c.log.Warnf("Discarding corrupt risk stats cache for midwife %s: %+v", midwifeID, err)
		c.Invalidate(ctx, midwifeID)
		return nil, false
	}
	return &stats, true
}

func (c *redisRiskStatsCache) Set(ctx context.Context, midwifeID uuid.UUID, stats careplan.RiskStats) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := json.Marshal(stats)
	if err != nil {
		c.log.Warnf("Failed to encode risk stats for midwife %s: %+v", midwifeID, err)
		return
	}
	if err := c.redisClient.Set(ctx, riskStatsKey(midwifeID), raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write risk stats cache for midwife %s: %+v", midwifeID, err)
		return
	}
	c.log.Debugf("Cached risk stats for midwife %s, TTL=%v", midwifeID, c.ttl)
}

func (c *redisRiskStatsCache) Invalidate(ctx context.Context, midwifeID uuid.UUID) {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := c.redisClient.Del(ctx, riskStatsKey(midwifeID)).Err(); err != nil {
		c.log.Warnf("Failed to invalidate risk stats cache for midwife %s: %+v", midwifeID, err)
	}
}

func riskStatsKey(midwifeID uuid.UUID) string {
	return fmt.Sprintf("%s%s", RedisRiskStatsKeyPrefix, midwifeID)
}
