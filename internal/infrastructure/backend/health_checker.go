package backend

import (
	"context"
	"fmt"
	"net/http"
)

// HealthChecker はバックエンドの /healthz に到達できるかを確認します
type HealthChecker struct {
	httpClient *http.Client
	baseURL    string
}

func NewHealthChecker(f *Factory) *HealthChecker {
	return &HealthChecker{httpClient: f.httpClient, baseURL: f.baseURL}
}

func (c *HealthChecker) Name() string {
	return "backend"
}

func (c *HealthChecker) Check(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("リクエストの作成に失敗しました: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend health check failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend health check failed: status=%d", resp.StatusCode)
	}
	return nil
}
