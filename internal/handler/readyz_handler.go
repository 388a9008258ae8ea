//go:generate mockgen -source=$GOFILE -destination=mock_handler/mock_readyz_handler.go -package=mock_handler
package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/eventsync/internal/handler/response"
	"github.com/na2na-p/eventsync/internal/usecase"
)

type ReadinessUseCaseInterface interface {
	ExecuteDetails(ctx context.Context) ([]usecase.HealthCheckResult, error)
}

// ReadyzHandler はバックエンド、Redis、S3の疎通をまとめて返します
type ReadyzHandler struct {
	uc ReadinessUseCaseInterface
}

func NewReadyzHandler(uc ReadinessUseCaseInterface) *ReadyzHandler {
	return &ReadyzHandler{
		uc: uc,
	}
}

func (h *ReadyzHandler) Handle(c echo.Context) error {
	results, err := h.uc.ExecuteDetails(c.Request().Context())

	resp := response.ReadinessResponse{
		Service: response.ServiceName,
		Status:  "ready",
		Checks:  make(map[string]response.CheckStatus, len(results)),
	}
	for _, r := range results {
		check := response.CheckStatus{Healthy: r.Healthy}
		if r.Error != nil {
			check.Error = r.Error.Error()
		}
		resp.Checks[r.Name] = check
	}

	if err != nil {
		resp.Status = "not ready"
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}
