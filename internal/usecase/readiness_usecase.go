package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrHealthCheckFailed はヘルスチェックが失敗したことを示すエラー
var ErrHealthCheckFailed = errors.New("health check failed")

const defaultHealthCheckTimeout = 3 * time.Second

// HealthCheckResult は個々のヘルスチェック結果を表す
type HealthCheckResult struct {
	Name    string
	Healthy bool
	Error   error
}

// ReadinessUseCase は依存先（Redis、S3、バックエンド）の疎通を確認するUseCase
type ReadinessUseCase struct {
	checkers []HealthChecker
	timeout  time.Duration
}

func NewReadinessUseCase(checkers ...HealthChecker) *ReadinessUseCase {
	return &ReadinessUseCase{
		checkers: checkers,
		timeout:  defaultHealthCheckTimeout,
	}
}

// WithTimeout は各チェッカーに与える時間を変更したコピーを返す
func (uc *ReadinessUseCase) WithTimeout(d time.Duration) *ReadinessUseCase {
	return &ReadinessUseCase{checkers: uc.checkers, timeout: d}
}

// Execute はすべてのヘルスチェッカーを実行し、1つでも失敗した場合はエラーを返す
func (uc *ReadinessUseCase) Execute(ctx context.Context) error {
	_, err := uc.ExecuteDetails(ctx)
	return err
}

// ExecuteDetails はすべてのヘルスチェッカーを並行に実行し、登録順に結果を返す
func (uc *ReadinessUseCase) ExecuteDetails(ctx context.Context) ([]HealthCheckResult, error) {
	results := make([]HealthCheckResult, len(uc.checkers))

	var g errgroup.Group
	for i, checker := range uc.checkers {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, uc.timeout)
			defer cancel()

			err := checker.Check(cctx)
			results[i] = HealthCheckResult{
				Name:    checker.Name(),
				Healthy: err == nil,
				Error:   err,
			}
			return nil
		})
	}
	_ = g.Wait()

	var failedCheckers []string
	for _, r := range results {
		if r.Error != nil {
			failedCheckers = append(failedCheckers, fmt.Sprintf("%s: %v", r.Name, r.Error))
		}
	}
	if len(failedCheckers) > 0 {
		return results, fmt.Errorf("%w: %s", ErrHealthCheckFailed, strings.Join(failedCheckers, "; "))
	}
	return results, nil
}
