package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/creditrisk/pkg/config"
)

func disabledClient(t *testing.T) *Client {
	t.Helper()
	client, err := New(&config.Config{Redis: config.RedisConfig{Enabled: false}})
	require.NoError(t, err)
	return client
}

func TestNewClient_Disabled(t *testing.T) {
	client := disabledClient(t)

	assert.False(t, client.Enabled())
	assert.Empty(t, client.Addr())
	assert.Nil(t, client.SharedLimiter("creditrisk"), "no shared limiter without a connection")
	assert.NoError(t, client.Close())
}

func TestNewClient_Unreachable(t *testing.T) {
	// port 1 on loopback refuses connections
	_, err := New(&config.Config{Redis: config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: "1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}

func TestClient_NilSafe(t *testing.T) {
	var client *Client
	assert.False(t, client.Enabled())
	assert.NoError(t, client.Close())
}

func TestRateLimiter_Disabled(t *testing.T) {
	limiter := NewRateLimiter(disabledClient(t), "test")

	allowed, remaining, err := limiter.Allow(context.Background(), YahooRateLimit)
	require.NoError(t, err)
	assert.True(t, allowed, "requests pass through when Redis is disabled")
	assert.Equal(t, YahooRateLimit.Limit, remaining)
}

func TestRateLimiter_WaitDisabled(t *testing.T) {
	limiter := NewRateLimiter(disabledClient(t), "test")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, limiter.Wait(ctx, YahooRateLimit))
}

func TestYahooRateLimit(t *testing.T) {
	assert.Equal(t, "yahoo", YahooRateLimit.Key)
	assert.Greater(t, YahooRateLimit.Limit, 0)
	assert.Equal(t, time.Second, YahooRateLimit.Window)
}
