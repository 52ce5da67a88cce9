// Package redis builds the shared Redis client. The API stores nothing in
// Redis itself; the client exists so the readiness probe can report on the
// dependency.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect refuses to hand back a client it could not ping within this window.
const pingTimeout = 5 * time.Second

// Config carries the connection settings for the Redis server.
type Config struct {
	Addr string
	DB   int
}

// Connect builds a client and confirms the server is reachable before
// returning it. An unreachable server fails here, at startup, instead of on
// the first probe.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return client, nil
}
