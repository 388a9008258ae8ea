package middleware_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/eventsync/internal/handler/middleware"
	"github.com/na2na-p/eventsync/internal/handler/middleware/mock_middleware"
	"github.com/na2na-p/eventsync/internal/identity"
	"github.com/na2na-p/eventsync/internal/query"
	"github.com/na2na-p/eventsync/internal/usecase"
	"go.uber.org/mock/gomock"
)

func TestSessionAuth(t *testing.T) {
	sess := usecase.NewSession("sess-1", identity.NewContext(), query.NewClient())
	t.Cleanup(sess.Close)

	tests := []struct {
		name       string
		cookie     *http.Cookie
		setupMock  func(m *mock_middleware.MockSessionResolver)
		wantNext   bool
		wantErr    error
		wantStatus int
	}{
		{
			name:   "正常系: 有効なセッションならコンテキストに載せて次へ進む",
			cookie: &http.Cookie{Name: middleware.SessionCookieName, Value: "sess-1"},
			setupMock: func(m *mock_middleware.MockSessionResolver) {
				m.EXPECT().Resolve(gomock.Any(), "sess-1").Return(sess, nil)
			},
			wantNext: true,
		},
		{
			name:       "異常系: Cookieがなければ401",
			setupMock:  func(m *mock_middleware.MockSessionResolver) {},
			wantErr:    usecase.ErrSessionNotFound,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "異常系: 空のCookieは401",
			cookie:     &http.Cookie{Name: middleware.SessionCookieName, Value: ""},
			setupMock:  func(m *mock_middleware.MockSessionResolver) {},
			wantErr:    usecase.ErrSessionNotFound,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "異常系: 期限切れのセッションは401",
			cookie: &http.Cookie{Name: middleware.SessionCookieName, Value: "expired"},
			setupMock: func(m *mock_middleware.MockSessionResolver) {
				m.EXPECT().Resolve(gomock.Any(), "expired").Return(nil, fmt.Errorf("%w: expired", usecase.ErrSessionNotFound))
			},
			wantErr:    usecase.ErrSessionNotFound,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			resolver := mock_middleware.NewMockSessionResolver(ctrl)
			tt.setupMock(resolver)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/tickets", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			next := func(c echo.Context) error {
				called = true
				got, err := middleware.SessionFromContext(c)
				if err != nil {
					t.Fatalf("SessionFromContext() error = %v", err)
				}
				if got != sess {
					t.Error("SessionFromContext() returned a different session")
				}
				return nil
			}

			err := middleware.SessionAuth(resolver)(next)(c)

			if called != tt.wantNext {
				t.Errorf("next called = %v, want %v", called, tt.wantNext)
			}
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, but got %v", tt.wantErr, err)
				}
				if status, _ := middleware.ClassifyError(err); status != tt.wantStatus {
					t.Errorf("status = %d, want %d", status, tt.wantStatus)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestSessionFromContext_Missing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if _, err := middleware.SessionFromContext(c); !errors.Is(err, usecase.ErrSessionNotFound) {
		t.Errorf("want error %v, but got %v", usecase.ErrSessionNotFound, err)
	}
}
