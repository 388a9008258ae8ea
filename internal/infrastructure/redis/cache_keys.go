// Package redis はセッションとJWKSの保存先としてRedisを扱います。
// キーのプレフィックスとTTLはこのファイルにまとめて定義します
package redis

import "time"

const (
	// SessionKeyPrefix はログインセッションのキーのプレフィックスです
	// Format: eventsync:session:{session_id}
	SessionKeyPrefix = "eventsync:session:"

	// JWKSKeyPrefix はIDトークン検証用の公開鍵セットのキーのプレフィックスです
	// Format: eventsync:jwks:{issuer}
	JWKSKeyPrefix = "eventsync:jwks:"
)

const (
	// SessionTTL はセッションの既定の有効期間です。実際の期間はトークンの有効期限で短くなります
	SessionTTL = 24 * time.Hour

	JWKSTTL = 6 * time.Hour
)

func SessionKey(sessionID string) string {
	return SessionKeyPrefix + sessionID
}

func JWKSKey(issuer string) string {
	return JWKSKeyPrefix + issuer
}
