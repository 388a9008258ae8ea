//go:generate mockgen -source=$GOFILE -destination=../mock_handler/mock_auth.go -package=mock_handler
package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/eventsync/internal/handler/middleware"
	"github.com/na2na-p/eventsync/internal/usecase"
	"github.com/newmo-oss/ctxtime"
)

type AuthUseCaseInterface interface {
	Login(ctx context.Context, idToken string) (string, *usecase.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type CookieConfig struct {
	Secure bool
	Domain string
}

type loginRequest struct {
	Token string `json:"token"`
}

type LoginResponse struct {
	Principal string    `json:"principal"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// LoginHandler はIDトークンを受け取り、セッションCookieを発行します。
// トークンは本文の token か Authorization: Bearer で渡せます
func LoginHandler(uc AuthUseCaseInterface, cfg CookieConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		token := ""
		if h := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimPrefix(h, "Bearer ")
		} else {
			var req loginRequest
			if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
				return middleware.NewAppError(http.StatusBadRequest, "リクエストボディが不正です", err)
			}
			token = req.Token
		}
		if strings.TrimSpace(token) == "" {
			return middleware.NewAppError(http.StatusBadRequest, "IDトークンがありません", nil)
		}

		sessionID, sess, err := uc.Login(ctx, token)
		if err != nil {
			return err
		}
		user, ok := sess.User()
		if !ok {
			return usecase.ErrSessionCreationFailed
		}

		maxAge := int(user.ExpiresAt().Sub(ctxtime.Now(ctx)).Seconds())
		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    sessionID,
			Path:     "/",
			Domain:   cfg.Domain,
			MaxAge:   maxAge,
			Secure:   cfg.Secure,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		return c.JSON(http.StatusOK, LoginResponse{
			Principal: user.Principal().String(),
			ExpiresAt: user.ExpiresAt().UTC(),
		})
	}
}
