package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/team-modeni/modeni-backend/internal/logger"
)

// RecommendationCache fronts the per-user recommendation list reads.
// Keys are explicitly scoped per user and invalidated on every write;
// a cache outage degrades to the database read path.
type RecommendationCache interface {
	Get(ctx context.Context, userID uuid.UUID) ([]WelfareRecommendationResponse, bool)
	Set(ctx context.Context, userID uuid.UUID, recs []WelfareRecommendationResponse)
	Invalidate(ctx context.Context, userID uuid.UUID)
}

type redisRecommendationCache struct {
	log *logger.Logger
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRecommendationCache(log *logger.Logger) (RecommendationCache, error) {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &redisRecommendationCache{
		log: log.With("service", "RedisRecommendationCache"),
		rdb: rdb,
		ttl: 10 * time.Minute,
	}, nil
}

func recommendationCacheKey(userID uuid.UUID) string {
	return "welfare:recs:" + userID.String()
}

func (c *redisRecommendationCache) Get(ctx context.Context, userID uuid.UUID) ([]WelfareRecommendationResponse, bool) {
	raw, err := c.rdb.Get(ctx, recommendationCacheKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("Cache read failed", "user_id", userID, "error", err)
		}
		return nil, false
	}

	var recs []WelfareRecommendationResponse
	if err := json.Unmarshal(raw, &recs); err != nil {
		c.log.Warn("Cache entry corrupt, dropping", "user_id", userID, "error", err)
		c.Invalidate(ctx, userID)
		return nil, false
	}
	return recs, true
}

func (c *redisRecommendationCache) Set(ctx context.Context, userID uuid.UUID, recs []WelfareRecommendationResponse) {
	raw, err := json.Marshal(recs)
	if err != nil {
		c.log.Warn("Cache encode failed", "user_id", userID, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, recommendationCacheKey(userID), raw, c.ttl).Err(); err != nil {
		c.log.Warn("Cache write failed", "user_id", userID, "error", err)
	}
}

func (c *redisRecommendationCache) Invalidate(ctx context.Context, userID uuid.UUID) {
	if err := c.rdb.Del(ctx, recommendationCacheKey(userID)).Err(); err != nil {
		c.log.Warn("Cache invalidation failed", "user_id", userID, "error", err)
	}
}
