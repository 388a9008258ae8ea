package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/identity"
	"github.com/na2na-p/eventsync/internal/query"
	"github.com/na2na-p/eventsync/internal/usecase"
	"github.com/newmo-oss/ctxtime/ctxtimetest"
	"github.com/newmo-oss/testid"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

var domainOpts = cmp.AllowUnexported(
	domain.Principal{},
	domain.TicketStatus{},
	domain.UserRole{},
	domain.AnnouncementPriority{},
)

func newTestContext(t *testing.T) context.Context {
	t.Helper()
	ctx := testid.WithValue(context.Background(), uuid.NewString())
	ctxtimetest.SetFixedNow(t, ctx, fixedNow)
	return ctx
}

func mustPrincipal(t *testing.T, s string) domain.Principal {
	t.Helper()
	p, err := domain.NewPrincipal(s)
	if err != nil {
		t.Fatalf("NewPrincipal(%q) failed: %v", s, err)
	}
	return p
}

func newUserInfo(t *testing.T, principal string) *domain.UserInfo {
	t.Helper()
	u, err := domain.NewUserInfo(mustPrincipal(t, principal), principal+"@example.com", principal, "token-"+principal, fixedNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("NewUserInfo() failed: %v", err)
	}
	return u
}

// newUnboundSession はバインディングもログインもない状態のSessionを作ります
func newUnboundSession(t *testing.T, opts ...usecase.SessionOption) *usecase.Session {
	t.Helper()
	s := usecase.NewSession("session-"+uuid.NewString(), identity.NewContext(), query.NewClient(query.WithRetryDelay(0)), opts...)
	t.Cleanup(s.Close)
	return s
}

// newLoggedInSession は指定したPrincipalでログイン済みのSessionを作ります
func newLoggedInSession(t *testing.T, principal string, b usecase.RemoteBinding, opts ...usecase.SessionOption) *usecase.Session {
	t.Helper()
	s := newUnboundSession(t, opts...)
	if err := s.Login(newUserInfo(t, principal), b); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	return s
}

func waitResult[T any](t *testing.T, o *query.Observer[T], accept func(query.Result[T]) bool) query.Result[T] {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case r, ok := <-o.Updates():
			if !ok {
				t.Fatal("observer closed")
			}
			if accept(r) {
				return r
			}
		case <-timeout:
			t.Fatalf("no matching result; current = %+v", o.Current())
		}
	}
}

func invalidatedFlags(c *query.Client) map[string]bool {
	got := make(map[string]bool)
	for _, s := range c.Cache().Snapshot() {
		got[s.Key] = s.Invalidated
	}
	return got
}

func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
