//go:generate mockgen -source=$GOFILE -destination=mock_middleware/mock_session_auth.go -package=mock_middleware
package middleware

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/eventsync/internal/usecase"
)

const (
	SessionCookieName = "session_id"
	SessionContextKey = "session"
)

type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (*usecase.Session, error)
}

// SessionAuth はCookieのセッションIDから利用者のSessionを復元し、コンテキストに載せます
func SessionAuth(resolver SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return fmt.Errorf("cookie: %w", usecase.ErrSessionNotFound)
			}

			sess, err := resolver.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				return err
			}
			c.Set(SessionContextKey, sess)
			return next(c)
		}
	}
}

func SessionFromContext(c echo.Context) (*usecase.Session, error) {
	sess, ok := c.Get(SessionContextKey).(*usecase.Session)
	if !ok || sess == nil {
		return nil, usecase.ErrSessionNotFound
	}
	return sess, nil
}
