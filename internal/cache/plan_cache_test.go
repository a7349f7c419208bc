package cache

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlanKey_StableAndNormalized(t *testing.T) {
	key := buildPlanKey("North-Yard")
	assert.True(t, strings.HasPrefix(key, planKeyPrefix+":"))

	// Case and surrounding whitespace never split the cache.
	assert.Equal(t, key, buildPlanKey("  north-yard  "))
	assert.NotEqual(t, key, buildPlanKey("south-yard"))
}

func TestNoopPlanCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoopPlanCache()

	result, ok, err := c.Get(ctx, "north-yard")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, result)

	require.NoError(t, c.Set(ctx, "north-yard", nil))
	require.NoError(t, c.Invalidate(ctx, "north-yard"))
	require.NoError(t, c.InvalidateAll(ctx))
}
