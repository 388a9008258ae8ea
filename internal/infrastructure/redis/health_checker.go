package redis

import (
	"context"
	"fmt"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker はRedisへの疎通を確認します
type HealthChecker struct {
	client pinger
}

func NewHealthChecker(client pinger) *HealthChecker {
	return &HealthChecker{client: client}
}

func (c *HealthChecker) Name() string {
	return "redis"
}

func (c *HealthChecker) Check(ctx context.Context) error {
	if err := c.client.Ping(ctx); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}
