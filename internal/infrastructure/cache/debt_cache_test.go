package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryDebtCache(t *testing.T) {
	ctx := context.Background()
	residentID := uuid.New()

	t.Run("miss on empty cache", func(t *testing.T) {
		c := NewInMemoryDebtCache(time.Minute)
		_, hit, err := c.Get(ctx, residentID)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("set then get", func(t *testing.T) {
		c := NewInMemoryDebtCache(time.Minute)
		require.NoError(t, c.Set(ctx, residentID, decimal.NewFromInt(500)))

		debt, hit, err := c.Get(ctx, residentID)
		require.NoError(t, err)
		assert.True(t, hit)
		assert.True(t, debt.Equal(decimal.NewFromInt(500)))
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		c := NewInMemoryDebtCache(time.Minute)
		require.NoError(t, c.Set(ctx, residentID, decimal.NewFromInt(500)))
		require.NoError(t, c.Invalidate(ctx, residentID))

		_, hit, err := c.Get(ctx, residentID)
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("expired entries are misses", func(t *testing.T) {
		c := NewInMemoryDebtCache(time.Nanosecond)
		require.NoError(t, c.Set(ctx, residentID, decimal.NewFromInt(500)))
		time.Sleep(time.Millisecond)

		_, hit, err := c.Get(ctx, residentID)
		require.NoError(t, err)
		assert.False(t, hit)
	})
}
