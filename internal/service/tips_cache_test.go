package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutri-app/nutri/backend/internal/normalizer"
	"github.com/nutri-app/nutri/backend/internal/testhelpers"
)

func TestTipsCacheKey(t *testing.T) {
	assert.Equal(t, "ai_tips:27.5:overweight_level_i", tipsCacheKey(" 27.5 ", "Overweight_Level_I"))
}

func TestMemoryTipsCacheExpires(t *testing.T) {
	cache := NewMemoryTipsCache(4, 20*time.Millisecond)
	payload, err := normalizer.NormalizeStrict(validTipsJSON)
	require.NoError(t, err)

	cache.Set(context.Background(), "k", payload)
	got, ok := cache.Get(context.Background(), "k")
	require.True(t, ok)
	assert.Equal(t, payload, got)

	time.Sleep(60 * time.Millisecond)
	_, ok = cache.Get(context.Background(), "k")
	assert.False(t, ok)
}

func TestRedisTipsCache(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	cache := NewRedisTipsCache(client, time.Minute)
	ctx := context.Background()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	payload, err := normalizer.NormalizeStrict(validTipsJSON)
	require.NoError(t, err)
	cache.Set(ctx, "k", payload)

	got, ok := cache.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, payload, got)

	ttl, err := client.TTL(ctx, "k").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
