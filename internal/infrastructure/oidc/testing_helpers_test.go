package oidc_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/na2na-p/eventsync/internal/infrastructure/oidc"
	"github.com/na2na-p/eventsync/internal/infrastructure/redis"
	"github.com/newmo-oss/ctxtime/ctxtimetest"
	"github.com/newmo-oss/testid"
)

const (
	testIssuer   = "https://id.example.com"
	testAudience = "eventsync"
	testKeyID    = "key-2025-03"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestContext(t *testing.T) context.Context {
	t.Helper()
	ctx := testid.WithValue(context.Background(), uuid.NewString())
	ctxtimetest.SetFixedNow(t, ctx, testNow)
	return ctx
}

func setupRedisMock(t *testing.T) (*redis.Client, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	t.Cleanup(func() { _ = db.Close() })
	return redis.NewClient(db), mock
}

func generateTestRSAKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("RSA鍵の生成に失敗しました: %v", err)
	}
	return privateKey
}

func newJWKSet(keyID string, publicKey *rsa.PublicKey) oidc.JWKSet {
	return oidc.JWKSet{
		Keys: []oidc.JWK{
			{
				Kid: keyID,
				Kty: "RSA",
				Use: "sig",
				N:   base64.RawURLEncoding.EncodeToString(publicKey.N.Bytes()),
				E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(publicKey.E)).Bytes()),
			},
		},
	}
}

// newJWKSServer はJWKSを返すサーバーを起動し、リクエスト回数を数えます
func newJWKSServer(t *testing.T, set oidc.JWKSet, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(set)
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func signToken(t *testing.T, key *rsa.PrivateKey, keyID string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if keyID != "" {
		token.Header["kid"] = keyID
	}
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("トークンの署名に失敗しました: %v", err)
	}
	return signed
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return b
}
