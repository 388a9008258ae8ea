package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/eventsync/internal/handler/middleware"
)

// LogoutHandler はセッションを破棄してCookieを消します。セッションがなくても成功します
func LogoutHandler(uc AuthUseCaseInterface, cfg CookieConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
			if err := uc.Logout(c.Request().Context(), cookie.Value); err != nil {
				return err
			}
		}

		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    "",
			Path:     "/",
			Domain:   cfg.Domain,
			MaxAge:   -1,
			Secure:   cfg.Secure,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return c.NoContent(http.StatusNoContent)
	}
}
