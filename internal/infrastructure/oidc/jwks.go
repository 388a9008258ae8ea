package oidc

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/big"
	"net/http"
	"time"

	"github.com/na2na-p/eventsync/internal/infrastructure/redis"
)

const maxJWKSBodySize = 1 << 20

type JWK struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type JWKSet struct {
	Keys []JWK `json:"keys"`
}

// JWKSFetcher はissuerの公開鍵セットを取得し、Redisに共有キャッシュします
type JWKSFetcher struct {
	cache      CacheClient
	httpClient *http.Client
	jwksURL    string
	cacheKey   string
	ttl        time.Duration
}

func NewJWKSFetcher(cache CacheClient, httpClient *http.Client, jwksURL, issuer string) *JWKSFetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &JWKSFetcher{
		cache:      cache,
		httpClient: httpClient,
		jwksURL:    jwksURL,
		cacheKey:   redis.JWKSKey(issuer),
		ttl:        redis.JWKSTTL,
	}
}

// PublicKey はKey IDに対応する公開鍵を返します。
// キャッシュにKey IDが無い場合は鍵のローテーションとみなして取得し直します
func (f *JWKSFetcher) PublicKey(ctx context.Context, keyID string) (*rsa.PublicKey, error) {
	var cached JWKSet
	if err := f.cache.GetJSON(ctx, f.cacheKey, &cached); err == nil {
		if key, err := findPublicKey(cached, keyID); err == nil {
			return key, nil
		}
	}

	set, err := f.fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := f.cache.SetJSON(ctx, f.cacheKey, set, f.ttl); err != nil {
		slog.WarnContext(ctx, "failed to cache JWKS", "error", err)
	}
	return findPublicKey(set, keyID)
}

func (f *JWKSFetcher) fetch(ctx context.Context) (JWKSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.jwksURL, nil)
	if err != nil {
		return JWKSet{}, fmt.Errorf("HTTPリクエストの作成に失敗しました: %w", err)
	}
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return JWKSet{}, fmt.Errorf("%w: %v", ErrJWKSFetchFailed, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return JWKSet{}, fmt.Errorf("%w: status code %d", ErrJWKSFetchFailed, resp.StatusCode)
	}

	var set JWKSet
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxJWKSBodySize)).Decode(&set); err != nil {
		return JWKSet{}, fmt.Errorf("JWK Setのパースに失敗しました: %w", err)
	}
	return set, nil
}

func findPublicKey(set JWKSet, keyID string) (*rsa.PublicKey, error) {
	for _, jwk := range set.Keys {
		if jwk.Kid == keyID && jwk.Kty == "RSA" {
			return parseRSAPublicKey(jwk)
		}
	}
	return nil, fmt.Errorf("%w: key ID '%s'", ErrKeyIDNotFound, keyID)
}

func parseRSAPublicKey(jwk JWK) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(jwk.N)
	if err != nil {
		return nil, fmt.Errorf("modulus のデコードに失敗しました: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(jwk.E)
	if err != nil {
		return nil, fmt.Errorf("exponent のデコードに失敗しました: %w", err)
	}

	e := new(big.Int).SetBytes(eBytes)
	if !e.IsInt64() || e.Int64() <= 0 || e.Int64() > int64(math.MaxInt) {
		return nil, fmt.Errorf("%w: %v", ErrExponentOutOfRange, e)
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(e.Int64()),
	}, nil
}
