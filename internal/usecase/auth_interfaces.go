//go:generate mockgen -source=$GOFILE -destination=mock_usecase/mock_auth_interfaces.go -package=mock_usecase
package usecase

import (
	"context"
	"time"

	"github.com/na2na-p/eventsync/internal/domain"
)

const SessionTTL = 24 * time.Hour

type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*domain.UserInfo, error)
}

type SessionStoreInterface interface {
	CreateSession(ctx context.Context, userInfo *domain.UserInfo, ttl time.Duration) (string, error)
	GetSession(ctx context.Context, sessionID string) (*domain.UserInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
