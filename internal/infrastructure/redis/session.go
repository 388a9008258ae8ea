package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/na2na-p/eventsync/internal/domain"
)

func (c *Client) SetSession(ctx context.Context, sessionID string, userInfo *domain.UserInfo, ttl time.Duration) error {
	if userInfo == nil {
		return ErrNilUserInfo
	}
	if ttl <= 0 {
		ttl = SessionTTL
	}

	data, err := c.serializer.Serialize(userInfo)
	if err != nil {
		return fmt.Errorf("セッション情報のシリアライズに失敗しました: %w", err)
	}
	if err := c.Set(ctx, SessionKey(sessionID), data, ttl); err != nil {
		return fmt.Errorf("セッション情報の保存に失敗しました: %w", err)
	}
	return nil
}

// GetSession はセッションが存在しない場合domain.ErrNotFoundを返します
func (c *Client) GetSession(ctx context.Context, sessionID string) (*domain.UserInfo, error) {
	data, err := c.Get(ctx, SessionKey(sessionID))
	if errors.Is(err, ErrCacheMiss) {
		return nil, fmt.Errorf("session %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("セッション情報の取得に失敗しました: %w", err)
	}

	userInfo, err := c.serializer.Deserialize([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("セッション情報のデシリアライズに失敗しました: %w", err)
	}
	return userInfo, nil
}

func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	if err := c.Delete(ctx, SessionKey(sessionID)); err != nil {
		return fmt.Errorf("セッション情報の削除に失敗しました: %w", err)
	}
	return nil
}
