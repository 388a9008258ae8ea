package backend

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/na2na-p/eventsync/internal/domain"
)

const testToken = "id-token-alice"

var domainOpts = cmp.AllowUnexported(domain.Principal{}, domain.TicketStatus{}, domain.UserRole{}, domain.AnnouncementPriority{})

type rpcCall struct {
	Path          string
	Authorization string
	Body          map[string]any
}

func mustPrincipal(t *testing.T, s string) domain.Principal {
	t.Helper()
	p, err := domain.NewPrincipal(s)
	if err != nil {
		t.Fatalf("NewPrincipal(%q): %v", s, err)
	}
	return p
}

// newRPCServer は1回の呼び出しを記録し、status と body をそのまま返すサーバーを立てます
func newRPCServer(t *testing.T, status int, body string) (*Client, *rpcCall) {
	t.Helper()
	got := &rpcCall{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		got.Path = r.URL.Path
		got.Authorization = r.Header.Get("Authorization")
		if err := json.Unmarshal(raw, &got.Body); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	f, err := NewFactory(Config{BaseURL: srv.URL + "/"}, srv.Client())
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}
	user, err := domain.NewUserInfo(mustPrincipal(t, "alice"), "", "", testToken, time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewUserInfo: %v", err)
	}
	b, err := f.Bind(user)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	return b.(*Client), got
}
