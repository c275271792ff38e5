// AngelaMos | 2026
// redis_test.go

package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/talentbook/internal/config"
)

func TestRedisOptions(t *testing.T) {
	opts, err := redisOptions(config.RedisConfig{
		URL:             "redis://:secret@cache.internal:6380/2",
		PoolSize:        10,
		MinIdleConns:    5,
		PoolTimeout:     30 * time.Second,
		ConnMaxIdleTime: 5 * time.Minute,
	})
	require.NoError(t, err)

	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 10, opts.PoolSize)
	assert.Equal(t, 5, opts.MinIdleConns)
	assert.Equal(t, 30*time.Second, opts.PoolTimeout)
	assert.Equal(t, 5*time.Minute, opts.ConnMaxIdleTime)
}

func TestRedisOptions_BadURL(t *testing.T) {
	_, err := redisOptions(config.RedisConfig{URL: "http://localhost:6379"})
	assert.ErrorContains(t, err, "parse redis url")
}
