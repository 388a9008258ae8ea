package domain

import "time"

// UserInfo はIDトークンを検証して得たログイン中の利用者の情報です
type UserInfo struct {
	principal Principal
	email     string
	name      string
	token     string
	expiresAt time.Time
}

func NewUserInfo(principal Principal, email, name, token string, expiresAt time.Time) (*UserInfo, error) {
	if principal.IsZero() {
		return nil, ErrEmptyPrincipal
	}
	if token == "" {
		return nil, ErrEmptyToken
	}
	return &UserInfo{
		principal: principal,
		email:     email,
		name:      name,
		token:     token,
		expiresAt: expiresAt,
	}, nil
}

func (u *UserInfo) Principal() Principal {
	return u.principal
}

func (u *UserInfo) Email() string {
	return u.email
}

func (u *UserInfo) Name() string {
	return u.name
}

// Token はバックエンド呼び出しに付与するBearerトークンです
func (u *UserInfo) Token() string {
	return u.token
}

func (u *UserInfo) ExpiresAt() time.Time {
	return u.expiresAt
}

func (u *UserInfo) IsExpired(now time.Time) bool {
	if u.expiresAt.IsZero() {
		return false
	}
	return !now.Before(u.expiresAt)
}

func (u *UserInfo) String() string {
	return "UserInfo{principal: " + u.principal.String() + ", email: " + u.email + ", token: [REDACTED]}"
}
