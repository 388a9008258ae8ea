package oidc

import (
	"context"
	"time"
)

// CacheClient はJWKSの共有キャッシュです
type CacheClient interface {
	GetJSON(ctx context.Context, key string, dest any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
