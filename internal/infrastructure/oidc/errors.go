package oidc

import "errors"

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrExpiredToken    = errors.New("token expired")
	ErrInvalidIssuer   = errors.New("invalid issuer")
	ErrInvalidAudience = errors.New("invalid audience")
	ErrMissingClaim    = errors.New("missing required claim")
	// ErrJWKSFetchFailed はJWKSエンドポイントから鍵セットを取得できなかった場合に返されます
	ErrJWKSFetchFailed = errors.New("failed to fetch JWKS")
	ErrKeyIDNotFound   = errors.New("key ID not found")
	ErrMissingKeyID    = errors.New("missing key ID in token header")
	// ErrExponentOutOfRange は指数値がプラットフォームのint範囲外の場合に返されます
	ErrExponentOutOfRange = errors.New("exponent out of range")
)
