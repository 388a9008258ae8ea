package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/eventsync/internal/handler/response"
)

// SessionCounter は保持中のセッション数を返します
type SessionCounter interface {
	Len() int
}

// NewHealthHandler は依存先に触れずに返す生存確認ハンドラーを作ります
func NewHealthHandler(sessions SessionCounter) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, response.HealthResponse{
			Service:  response.ServiceName,
			Status:   "healthy",
			Sessions: sessions.Len(),
		})
	}
}
