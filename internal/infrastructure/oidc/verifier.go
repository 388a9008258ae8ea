package oidc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/usecase"
	"github.com/newmo-oss/ctxtime"
)

var _ usecase.TokenVerifier = (*Verifier)(nil)

type Config struct {
	JWKSURL  string
	Issuer   string
	Audience string
}

type idTokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Verifier はアイデンティティプロバイダが発行したIDトークンを検証し、ログイン情報に変換します
type Verifier struct {
	keys     *JWKSFetcher
	issuer   string
	audience string
}

func NewVerifier(cfg Config, keys *JWKSFetcher) (*Verifier, error) {
	if strings.TrimSpace(cfg.Issuer) == "" {
		return nil, errors.New("issuer is required")
	}
	if strings.TrimSpace(cfg.Audience) == "" {
		return nil, errors.New("audience is required")
	}
	if keys == nil {
		return nil, errors.New("jwks fetcher is required")
	}
	return &Verifier{keys: keys, issuer: cfg.Issuer, audience: cfg.Audience}, nil
}

// VerifyIDToken は署名、issuer、audience、有効期限を検証します。subがPrincipalになります
func (v *Verifier) VerifyIDToken(ctx context.Context, idToken string) (*domain.UserInfo, error) {
	var claims idTokenClaims
	_, err := jwt.ParseWithClaims(idToken, &claims, func(token *jwt.Token) (any, error) {
		keyID, ok := token.Header["kid"].(string)
		if !ok || keyID == "" {
			return nil, ErrMissingKeyID
		}
		key, err := v.keys.PublicKey(ctx, keyID)
		if err != nil {
			return nil, fmt.Errorf("公開鍵の取得に失敗しました: %w", err)
		}
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return ctxtime.Now(ctx) }),
	)
	if err != nil {
		return nil, classify(err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: sub", ErrMissingClaim)
	}
	principal, err := domain.NewPrincipal(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return domain.NewUserInfo(principal, claims.Email, claims.Name, idToken, claims.ExpiresAt.Time)
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return fmt.Errorf("%w: %v", ErrInvalidIssuer, err)
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return fmt.Errorf("%w: %v", ErrInvalidAudience, err)
	case errors.Is(err, ErrMissingKeyID):
		return ErrMissingKeyID
	default:
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
}
