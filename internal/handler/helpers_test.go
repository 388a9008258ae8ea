package handler_test

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/handler/middleware"
	"github.com/na2na-p/eventsync/internal/identity"
	"github.com/na2na-p/eventsync/internal/query"
	"github.com/na2na-p/eventsync/internal/usecase"
	"github.com/newmo-oss/ctxtime/ctxtimetest"
	"github.com/newmo-oss/testid"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

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

// newSession はbが nil の場合バインディングなしでログインしたSessionを作ります
func newSession(t *testing.T, principal string, b usecase.RemoteBinding, opts ...usecase.SessionOption) *usecase.Session {
	t.Helper()
	s := usecase.NewSession("session-"+uuid.NewString(), identity.NewContext(), query.NewClient(query.WithRetry(0)), opts...)
	t.Cleanup(s.Close)
	user, err := domain.NewUserInfo(mustPrincipal(t, principal), "", "", "token-"+principal, fixedNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("NewUserInfo() failed: %v", err)
	}
	if err := s.Login(user, b); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	return s
}

// newEchoContext はSessionをコンテキストに載せたechoのContextを作ります
func newEchoContext(t *testing.T, sess *usecase.Session, method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, body).WithContext(newTestContext(t))
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess != nil {
		c.Set(middleware.SessionContextKey, sess)
	}
	return c, rec
}

func setPathParams(c echo.Context, names []string, values []string) {
	c.SetParamNames(names...)
	c.SetParamValues(values...)
}

// serve は echo のエラーハンドラまで通してレスポンスを作ります
func serve(c echo.Context, h echo.HandlerFunc) {
	if err := h(c); err != nil {
		middleware.CustomHTTPErrorHandler(err, c)
	}
}

func trimBody(rec *httptest.ResponseRecorder) string {
	return strings.TrimSpace(rec.Body.String())
}
