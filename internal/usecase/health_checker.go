//go:generate mockgen -source=$GOFILE -destination=mock_usecase/mock_health_checker.go -package=mock_usecase
package usecase

import (
	"context"
)

// HealthChecker は /readyz で疎通を確認する依存先です。
// Name は応答の checks のキーになるため、backend、redis、s3 のように依存先ごとに一意にします
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
