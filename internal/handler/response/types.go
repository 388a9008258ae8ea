package response

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/query"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func SendError(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{Error: message})
}

// QueryResponse はクエリ結果を鮮度の情報と一緒に返します
type QueryResponse[T any] struct {
	Data      T          `json:"data"`
	Status    string     `json:"status"`
	IsStale   bool       `json:"isStale"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	// Error は前回の値を返しつつ再取得に失敗した場合だけ入ります
	Error string `json:"error,omitempty"`
}

func NewQueryResponse[T any](r query.Result[T]) QueryResponse[T] {
	resp := QueryResponse[T]{
		Data:    r.Data,
		Status:  r.Status.String(),
		IsStale: r.IsStale,
	}
	if !r.UpdatedAt.IsZero() {
		updated := r.UpdatedAt.UTC()
		resp.UpdatedAt = &updated
	}
	if r.Err != nil {
		resp.Error = r.Err.Error()
	}
	return resp
}

type IDResponse struct {
	ID domain.ID `json:"id"`
}

type ValidateTicketResponse struct {
	Valid bool `json:"valid"`
}

// ServiceName はヘルス系エンドポイントが名乗るサービス名です
const ServiceName = "eventsync"

type CheckStatus struct {
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

// ReadinessResponse は依存先ごとの疎通結果をチェッカー名で引けるように返します
type ReadinessResponse struct {
	Service string                 `json:"service"`
	Status  string                 `json:"status"`
	Checks  map[string]CheckStatus `json:"checks"`
}

type HealthResponse struct {
	Service  string `json:"service"`
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}
