package redis_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/na2na-p/eventsync/internal/domain"
)

var (
	testExpiry  = time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC)
	userInfoCmp = cmp.AllowUnexported(domain.UserInfo{}, domain.Principal{})
)

func mustUserInfo(t *testing.T, principal string) *domain.UserInfo {
	t.Helper()
	p, err := domain.NewPrincipal(principal)
	if err != nil {
		t.Fatalf("NewPrincipal() failed: %v", err)
	}
	u, err := domain.NewUserInfo(p, "ana@example.com", "Ana", "id-token-"+principal, testExpiry)
	if err != nil {
		t.Fatalf("NewUserInfo() failed: %v", err)
	}
	return u
}
