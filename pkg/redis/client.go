package redis

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wonny/creditrisk/pkg/config"
)

const pingTimeout = 3 * time.Second

// Client is the optional connection behind the shared Yahoo rate limit.
// Only limiter windows live in Redis; fetched statements, prices and reports never do.
// ⭐ SSOT: Redis 연결은 여기서만 관리
type Client struct {
	rdb  *redis.Client
	addr string
}

// New connects when REDIS_ENABLED is set, otherwise returns a disabled client
func New(cfg *config.Config) (*Client, error) {
	if !cfg.Redis.Enabled {
		return &Client{}, nil
	}

	addr := net.JoinHostPort(cfg.Redis.Host, cfg.Redis.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis %s unreachable: %w", addr, err)
	}

	return &Client{rdb: rdb, addr: addr}, nil
}

// Enabled reports whether a connection is open
func (c *Client) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Addr host:port, empty when disabled
func (c *Client) Addr() string {
	if !c.Enabled() {
		return ""
	}
	return c.addr
}

// SharedLimiter returns the cross-process Yahoo limiter, nil when Redis is disabled.
// Callers then fall back to the in-process token bucket alone.
func (c *Client) SharedLimiter(prefix string) *RateLimiter {
	if !c.Enabled() {
		return nil
	}
	return NewRateLimiter(c, prefix)
}

// Close closes the connection; a disabled client is a no-op
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Close()
}

func (c *Client) conn() *redis.Client {
	return c.rdb
}
