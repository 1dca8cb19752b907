package twilio_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialkit-io/twilio-client/pkg/twilio"
)

func TestNewCacheFromConfig_Memory(t *testing.T) {
	t.Parallel()

	cache, err := twilio.NewCacheFromConfig(&twilio.CacheConfig{
		Type:   twilio.CacheTypeMemory,
		Memory: &twilio.MemoryCacheConfig{MaxSize: 5},
	})
	require.NoError(t, err)
	assert.IsType(t, &twilio.MemoryCache{}, cache)
}

func TestNewCacheFromConfig_NilUsesDefaults(t *testing.T) {
	t.Parallel()

	cache, err := twilio.NewCacheFromConfig(nil)
	require.NoError(t, err)
	assert.IsType(t, &twilio.MemoryCache{}, cache)
}

func TestNewCacheFromConfig_NATSRequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := twilio.NewCacheFromConfig(&twilio.CacheConfig{Type: twilio.CacheTypeNATS})
	require.Error(t, err)
	assert.ErrorIs(t, err, twilio.ErrNATSConfigRequired)
}

func TestNewCacheFromConfig_None(t *testing.T) {
	t.Parallel()

	cache, err := twilio.NewCacheFromConfig(&twilio.CacheConfig{Type: twilio.CacheTypeNone})
	require.NoError(t, err)
	assert.IsType(t, &twilio.NoOpCache{}, cache)
}

func TestNewCacheFromConfig_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := twilio.NewCacheFromConfig(&twilio.CacheConfig{Type: "redis"})
	require.Error(t, err)
	assert.ErrorIs(t, err, twilio.ErrUnsupportedCacheType)
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	cache := twilio.NewNoOpCache()
	ctx := context.Background()

	entry := &twilio.CacheEntry{
		Data:      []byte("data"),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	require.NoError(t, cache.Set(ctx, "key", entry))
	assert.False(t, cache.Has(ctx, "key"))

	_, err := cache.Get(ctx, "key")
	require.Error(t, err)
	assert.ErrorIs(t, err, twilio.ErrCacheDisabled)

	require.NoError(t, cache.Delete(ctx, "key"))
	require.NoError(t, cache.Clear(ctx))
}

func TestCacheBuilder(t *testing.T) {
	t.Parallel()

	t.Run("defaults to memory cache", func(t *testing.T) {
		t.Parallel()

		cache, err := twilio.NewCacheBuilder().Build()
		require.NoError(t, err)
		assert.IsType(t, &twilio.MemoryCache{}, cache)
	})

	t.Run("builds configured memory cache", func(t *testing.T) {
		t.Parallel()

		builder := twilio.NewCacheBuilder().
			WithMemoryConfig(50).
			WithOptions(&twilio.CacheOptions{DefaultTTL: time.Minute})

		config := builder.Config()
		assert.Equal(t, twilio.CacheTypeMemory, config.Type)
		require.NotNil(t, config.Memory)
		assert.Equal(t, 50, config.Memory.MaxSize)
		assert.Equal(t, time.Minute, config.Options.DefaultTTL)

		cache, err := builder.Build()
		require.NoError(t, err)
		assert.IsType(t, &twilio.MemoryCache{}, cache)
	})

	t.Run("builds no-op cache", func(t *testing.T) {
		t.Parallel()

		cache, err := twilio.NewCacheBuilder().WithType(twilio.CacheTypeNone).Build()
		require.NoError(t, err)
		assert.IsType(t, &twilio.NoOpCache{}, cache)
	})

	t.Run("propagates backend errors", func(t *testing.T) {
		t.Parallel()

		_, err := twilio.NewCacheBuilder().WithType(twilio.CacheTypeNATS).Build()
		require.Error(t, err)
		assert.ErrorIs(t, err, twilio.ErrNATSConfigRequired)
	})
}

func TestDefaultCacheConfig(t *testing.T) {
	t.Parallel()

	config := twilio.DefaultCacheConfig()
	assert.Equal(t, twilio.CacheTypeMemory, config.Type)
	require.NotNil(t, config.Memory)
	assert.Positive(t, config.Memory.MaxSize)
}
