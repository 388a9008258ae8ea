package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/na2na-p/eventsync/internal/domain"
)

var ErrNilUserInfo = errors.New("userInfo is nil")

type UserInfoSerializer interface {
	Serialize(userInfo *domain.UserInfo) ([]byte, error)
	Deserialize(data []byte) (*domain.UserInfo, error)
}

type userInfoDTO struct {
	Principal string    `json:"principal"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type userInfoSerializer struct{}

func NewUserInfoSerializer() UserInfoSerializer {
	return userInfoSerializer{}
}

func (userInfoSerializer) Serialize(userInfo *domain.UserInfo) ([]byte, error) {
	if userInfo == nil {
		return nil, ErrNilUserInfo
	}
	data, err := json.Marshal(userInfoDTO{
		Principal: userInfo.Principal().String(),
		Email:     userInfo.Email(),
		Name:      userInfo.Name(),
		Token:     userInfo.Token(),
		ExpiresAt: userInfo.ExpiresAt().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal UserInfo: %w", err)
	}
	return data, nil
}

func (userInfoSerializer) Deserialize(data []byte) (*domain.UserInfo, error) {
	var dto userInfoDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("failed to unmarshal UserInfo: %w", err)
	}
	principal, err := domain.NewPrincipal(dto.Principal)
	if err != nil {
		return nil, err
	}
	return domain.NewUserInfo(principal, dto.Email, dto.Name, dto.Token, dto.ExpiresAt)
}
