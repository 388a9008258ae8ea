package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/usecase"
)

var _ usecase.SessionStoreInterface = (*SessionStore)(nil)

type SessionClient interface {
	SetSession(ctx context.Context, sessionID string, userInfo *domain.UserInfo, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*domain.UserInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// IDGenerator はセッションIDを払い出します
type IDGenerator func() string

func NewUUID() string {
	return uuid.NewString()
}

// SessionStore はセッションIDを払い出してRedisにログイン情報を保存します
type SessionStore struct {
	client SessionClient
	newID  IDGenerator
}

func NewSessionStore(client SessionClient, newID IDGenerator) *SessionStore {
	if newID == nil {
		newID = NewUUID
	}
	return &SessionStore{client: client, newID: newID}
}

func (s *SessionStore) CreateSession(ctx context.Context, userInfo *domain.UserInfo, ttl time.Duration) (string, error) {
	sessionID := s.newID()
	if err := s.client.SetSession(ctx, sessionID, userInfo, ttl); err != nil {
		return "", err
	}
	return sessionID, nil
}

func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (*domain.UserInfo, error) {
	return s.client.GetSession(ctx, sessionID)
}

func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return s.client.DeleteSession(ctx, sessionID)
}
