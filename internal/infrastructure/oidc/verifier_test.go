package oidc_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/infrastructure/oidc"
	"github.com/na2na-p/eventsync/internal/infrastructure/redis"
)

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"iss":   testIssuer,
		"aud":   testAudience,
		"sub":   "2vxsx-fae",
		"email": "ana@example.com",
		"name":  "Ana",
		"iat":   testNow.Add(-time.Minute).Unix(),
		"exp":   testNow.Add(time.Hour).Unix(),
	}
}

func TestVerifier_VerifyIDToken(t *testing.T) {
	privateKey := generateTestRSAKey(t)
	otherKey := generateTestRSAKey(t)
	set := newJWKSet(testKeyID, &privateKey.PublicKey)

	with := func(k string, v any) jwt.MapClaims {
		c := validClaims()
		if v == nil {
			delete(c, k)
		} else {
			c[k] = v
		}
		return c
	}

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name: "正常系: 有効なトークンからログイン情報を作る",
			token: func(t *testing.T) string {
				return signToken(t, privateKey, testKeyID, validClaims())
			},
		},
		{
			name: "正常系: audienceが配列でも一致すれば受け付ける",
			token: func(t *testing.T) string {
				return signToken(t, privateKey, testKeyID, with("aud", []string{"other", testAudience}))
			},
		},
		{
			name: "異常系: 期限切れ",
			token: func(t *testing.T) string {
				return signToken(t, privateKey, testKeyID, with("exp", testNow.Add(-time.Second).Unix()))
			},
			wantErr: oidc.ErrExpiredToken,
		},
		{
			name: "異常系: 有効期限なし",
			token: func(t *testing.T) string {
				return signToken(t, privateKey, testKeyID, with("exp", nil))
			},
			wantErr: oidc.ErrInvalidToken,
		},
		{
			name: "異常系: issuerが異なる",
			token: func(t *testing.T) string {
				return signToken(t, privateKey, testKeyID, with("iss", "https://evil.example.com"))
			},
			wantErr: oidc.ErrInvalidIssuer,
		},
		{
			name: "異常系: audienceが異なる",
			token: func(t *testing.T) string {
				return signToken(t, privateKey, testKeyID, with("aud", "another-app"))
			},
			wantErr: oidc.ErrInvalidAudience,
		},
		{
			name: "異常系: subがない",
			token: func(t *testing.T) string {
				return signToken(t, privateKey, testKeyID, with("sub", nil))
			},
			wantErr: oidc.ErrMissingClaim,
		},
		{
			name: "異常系: kidがない",
			token: func(t *testing.T) string {
				return signToken(t, privateKey, "", validClaims())
			},
			wantErr: oidc.ErrMissingKeyID,
		},
		{
			name: "異常系: 別の鍵で署名されている",
			token: func(t *testing.T) string {
				return signToken(t, otherKey, testKeyID, validClaims())
			},
			wantErr: oidc.ErrInvalidToken,
		},
		{
			name: "異常系: HS256は受け付けない",
			token: func(t *testing.T) string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims())
				token.Header["kid"] = testKeyID
				s, err := token.SignedString([]byte("shared-secret"))
				if err != nil {
					t.Fatal(err)
				}
				return s
			},
			wantErr: oidc.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t)
			client, mock := setupRedisMock(t)
			mock.ExpectGet(redis.JWKSKey(testIssuer)).SetVal(string(mustJSON(t, set)))
			server, _ := newJWKSServer(t, set, http.StatusOK)

			verifier, err := oidc.NewVerifier(oidc.Config{
				JWKSURL:  server.URL,
				Issuer:   testIssuer,
				Audience: testAudience,
			}, oidc.NewJWKSFetcher(client, server.Client(), server.URL, testIssuer))
			if err != nil {
				t.Fatalf("NewVerifier() error = %v", err)
			}

			token := tt.token(t)
			got, err := verifier.VerifyIDToken(ctx, token)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, but got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			p, _ := domain.NewPrincipal("2vxsx-fae")
			want, _ := domain.NewUserInfo(p, "ana@example.com", "Ana", token, time.Unix(testNow.Add(time.Hour).Unix(), 0))
			if diff := cmp.Diff(want, got, cmp.AllowUnexported(domain.UserInfo{}, domain.Principal{})); diff != "" {
				t.Errorf("VerifyIDToken() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewVerifier(t *testing.T) {
	fetcher := oidc.NewJWKSFetcher(nil, nil, "https://id.example.com/jwks", testIssuer)

	tests := []struct {
		name    string
		cfg     oidc.Config
		keys    *oidc.JWKSFetcher
		wantErr bool
	}{
		{name: "正常系: 必須項目が揃っている", cfg: oidc.Config{Issuer: testIssuer, Audience: testAudience}, keys: fetcher},
		{name: "異常系: issuerが空", cfg: oidc.Config{Audience: testAudience}, keys: fetcher, wantErr: true},
		{name: "異常系: audienceが空白のみ", cfg: oidc.Config{Issuer: testIssuer, Audience: " "}, keys: fetcher, wantErr: true},
		{name: "異常系: fetcherがnil", cfg: oidc.Config{Issuer: testIssuer, Audience: testAudience}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := oidc.NewVerifier(tt.cfg, tt.keys)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewVerifier() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
