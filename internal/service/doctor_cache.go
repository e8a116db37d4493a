package service

import (
	"context"
	"encoding/json"
	"time"

	"healthlink/internal/delivery/dto"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const doctorCacheKeyPrefix = "doctors:"

// DoctorCache is a read-through cache for the public doctor listing,
// keyed per specialization filter. Profile mutations invalidate every
// key; a cold or failing Redis degrades to the database path.
type DoctorCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewDoctorCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *DoctorCache {
	return &DoctorCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (c *DoctorCache) key(specialization string) string {
	if specialization == "" {
		return doctorCacheKeyPrefix + "all"
	}
	return doctorCacheKeyPrefix + specialization
}

// Get returns the cached listing for the filter, or ok=false on miss.
func (c *DoctorCache) Get(ctx context.Context, specialization string) ([]dto.DoctorSummary, bool) {
	raw, err := c.redisClient.Get(ctx, c.key(specialization)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read doctor cache: %+v", err)
		}
		return nil, false
	}

	var doctors []dto.DoctorSummary
	if err := json.Unmarshal(raw, &doctors); err != nil {
		c.log.Warnf("Failed to decode doctor cache entry: %+v", err)
		return nil, false
	}

	return doctors, true
}

// Set stores the listing for the filter with the configured TTL.
func (c *DoctorCache) Set(ctx context.Context, specialization string, doctors []dto.DoctorSummary) {
	raw, err := json.Marshal(doctors)
	if err != nil {
		c.log.Warnf("Failed to encode doctor cache entry: %+v", err)
		return
	}

	if err := c.redisClient.Set(ctx, c.key(specialization), raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write doctor cache: %+v", err)
	}
}

// Invalidate drops every cached listing. Called after any doctor profile
// mutation so stale availability or fees never outlive a change.
func (c *DoctorCache) Invalidate(ctx context.Context) {
	keys, err := c.redisClient.Keys(ctx, doctorCacheKeyPrefix+"*").Result()
	if err != nil {
		c.log.Warnf("Failed to list doctor cache keys: %+v", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		c.log.Warnf("Failed to invalidate doctor cache: %+v", err)
	}
}
