package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chuckle-chow/internal/infrastructure/config"
)

func testConfig(maxSize int, ttl time.Duration) *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			MaxSize:         maxSize,
			TTL:             ttl,
			CleanupInterval: time.Minute,
		},
	}
}

func TestManagerSetAndGet(t *testing.T) {
	m := NewManager(testConfig(10, time.Minute))
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "key-a", "value-a"))

	got, err := m.Get(ctx, "key-a")
	require.NoError(t, err)
	assert.Equal(t, "value-a", got)

	_, err = m.Get(ctx, "key-b")
	assert.Error(t, err)
}

func TestManagerExpiry(t *testing.T) {
	m := NewManager(testConfig(10, 10*time.Millisecond))
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "key-a", "value-a"))
	time.Sleep(25 * time.Millisecond)

	_, err := m.Get(ctx, "key-a")
	assert.Error(t, err)
}

func TestManagerLRUEviction(t *testing.T) {
	m := NewManager(testConfig(2, time.Minute))
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "key-a", "value-a"))
	require.NoError(t, m.Set(ctx, "key-b", "value-b"))

	// touch key-a so key-b becomes the LRU victim
	_, err := m.Get(ctx, "key-a")
	require.NoError(t, err)

	require.NoError(t, m.Set(ctx, "key-c", "value-c"))

	_, err = m.Get(ctx, "key-b")
	assert.Error(t, err)
	got, err := m.Get(ctx, "key-a")
	require.NoError(t, err)
	assert.Equal(t, "value-a", got)
}

func TestManagerDisabled(t *testing.T) {
	cfg := testConfig(10, time.Minute)
	cfg.Cache.Enabled = false
	m := NewManager(cfg)
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "key-a", "value-a"))
	_, err := m.Get(ctx, "key-a")
	assert.Error(t, err)
}

func TestManagerStats(t *testing.T) {
	m := NewManager(testConfig(10, time.Minute))
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "key-a", "value-a"))
	m.Get(ctx, "key-a")
	m.Get(ctx, "missing")

	stats := m.Stats()
	assert.Equal(t, 1, stats["size"])
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
}
