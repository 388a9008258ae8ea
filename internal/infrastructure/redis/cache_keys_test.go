package redis_test

import (
	"testing"

	"github.com/na2na-p/eventsync/internal/infrastructure/redis"
)

func TestKeys(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "正常系: セッションIDからセッションキーが生成される",
			got:  redis.SessionKey("8f14e45f-ceea-467f-a0e6-2c9d5f3b1a7e"),
			want: "eventsync:session:8f14e45f-ceea-467f-a0e6-2c9d5f3b1a7e",
		},
		{
			name: "正常系: issuerからJWKSキーが生成される",
			got:  redis.JWKSKey("https://id.example.com"),
			want: "eventsync:jwks:https://id.example.com",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("key = %q, want %q", tt.got, tt.want)
			}
		})
	}
}
