package s3

import (
	"context"
	"fmt"
)

type bucketHeader interface {
	HeadBucket(ctx context.Context) error
}

// HealthChecker は画像バケットへの到達性を確認します
type HealthChecker struct {
	client bucketHeader
}

func NewHealthChecker(client bucketHeader) *HealthChecker {
	return &HealthChecker{client: client}
}

func (c *HealthChecker) Name() string {
	return "s3"
}

func (c *HealthChecker) Check(ctx context.Context) error {
	if err := c.client.HeadBucket(ctx); err != nil {
		return fmt.Errorf("s3 health check failed: %w", err)
	}
	return nil
}
