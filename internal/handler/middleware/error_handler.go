package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/handler/response"
	"github.com/na2na-p/eventsync/internal/usecase"
)

type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(statusCode int, message string, err error) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// remoteFailure はバックエンド呼び出しの失敗を表すエラーが満たすインターフェースです
type remoteFailure interface {
	error
	Temporary() bool
}

// ClassifyError はユースケースのエラーをHTTPステータスと利用者向けメッセージに変換します
func ClassifyError(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode, appErr.Message
	}
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	var remote remoteFailure
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound),
		errors.Is(err, usecase.ErrIdentityUnavailable):
		return http.StatusUnauthorized, "ログインが必要です"
	case errors.Is(err, usecase.ErrAuthenticationFailed):
		return http.StatusUnauthorized, "認証に失敗しました"
	case errors.Is(err, usecase.ErrBindingUnavailable):
		return http.StatusServiceUnavailable, "バックエンドに接続できません"
	case errors.Is(err, usecase.ErrPhotoStorageUnavailable):
		return http.StatusServiceUnavailable, "画像の保存先が設定されていません"
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidProfile):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "見つかりません"
	case errors.As(err, &remote):
		return http.StatusBadGateway, "バックエンドの呼び出しに失敗しました"
	case errors.Is(err, domain.ErrUnknownTicketStatus),
		errors.Is(err, domain.ErrUnknownUserRole),
		errors.Is(err, domain.ErrUnknownAnnouncementPriority):
		return http.StatusBadGateway, "バックエンドの応答を解釈できません"
	case errors.Is(err, usecase.ErrSessionCreationFailed):
		return http.StatusInternalServerError, "セッションの作成に失敗しました"
	default:
		return http.StatusInternalServerError, "サーバー内部エラーが発生しました"
	}
}

func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	statusCode, message := ClassifyError(err)

	logAttrs := []any{
		"request_id", requestID,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", statusCode,
		"error", err,
	}
	if statusCode >= 500 {
		slog.Error("サーバーエラー", logAttrs...)
	} else if statusCode >= 400 {
		slog.Warn("クライアントエラー", logAttrs...)
	}

	if jsonErr := response.SendError(c, statusCode, message); jsonErr != nil {
		slog.Error("レスポンスの送信に失敗しました",
			"request_id", requestID,
			"status_code", statusCode,
			"message", message,
			"error", jsonErr,
		)
	}
}
