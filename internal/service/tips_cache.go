package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/nutri-app/nutri/backend/internal/normalizer"
)

// TipsTTL is how long a generated recipe/exercise batch is reused for the
// same BMI and risk level.
const TipsTTL = 24 * time.Hour

const tipsKeyPrefix = "ai_tips"

// TipsCache stores validated recommendation payloads. Misses and backend
// failures both report ok=false; the caller just regenerates.
type TipsCache interface {
	Get(ctx context.Context, key string) (*normalizer.RecommendationPayload, bool)
	Set(ctx context.Context, key string, payload *normalizer.RecommendationPayload)
}

func tipsCacheKey(bmi, obesityRisk string) string {
	return fmt.Sprintf("%s:%s:%s", tipsKeyPrefix,
		strings.TrimSpace(bmi), strings.ToLower(strings.TrimSpace(obesityRisk)))
}

// RedisTipsCache shares generated tips between API instances.
type RedisTipsCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisTipsCache(client *redis.Client, ttl time.Duration) *RedisTipsCache {
	return &RedisTipsCache{redis: client, ttl: ttl}
}

func (c *RedisTipsCache) Get(ctx context.Context, key string) (*normalizer.RecommendationPayload, bool) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("tips cache read failed")
		}
		return nil, false
	}
	var payload normalizer.RecommendationPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding undecodable cached tips")
		return nil, false
	}
	return &payload, true
}

func (c *RedisTipsCache) Set(ctx context.Context, key string, payload *normalizer.RecommendationPayload) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Warn().Err(err).Msg("failed to marshal tips for cache")
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("tips cache write failed")
	}
}

// MemoryTipsCache is the single-process fallback used when redis is not configured.
type MemoryTipsCache struct {
	lru *expirable.LRU[string, *normalizer.RecommendationPayload]
}

func NewMemoryTipsCache(size int, ttl time.Duration) *MemoryTipsCache {
	return &MemoryTipsCache{
		lru: expirable.NewLRU[string, *normalizer.RecommendationPayload](size, nil, ttl),
	}
}

func (c *MemoryTipsCache) Get(_ context.Context, key string) (*normalizer.RecommendationPayload, bool) {
	return c.lru.Get(key)
}

func (c *MemoryTipsCache) Set(_ context.Context, key string, payload *normalizer.RecommendationPayload) {
	c.lru.Add(key, payload)
}
