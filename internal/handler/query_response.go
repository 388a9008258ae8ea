package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/handler/middleware"
	"github.com/na2na-p/eventsync/internal/handler/response"
	"github.com/na2na-p/eventsync/internal/query"
	"github.com/na2na-p/eventsync/internal/usecase"
)

// respondQuery はクエリ結果をJSONで返します。
// 値がない失敗はエラーとして返し、前回の値がある失敗は値と一緒にエラー文言を返します
func respondQuery[T any](c echo.Context, r query.Result[T]) error {
	if r.Status == query.StatusIdle && !r.HasData {
		return usecase.ErrBindingUnavailable
	}
	if r.Err != nil && !r.HasData {
		return r.Err
	}
	return c.JSON(http.StatusOK, response.NewQueryResponse(r))
}

func pathID(c echo.Context, name string) (domain.ID, error) {
	id, err := domain.ParseID(c.Param(name))
	if err != nil {
		return 0, middleware.NewAppError(http.StatusBadRequest, "IDが不正です: "+strconv.Quote(c.Param(name)), err)
	}
	return id, nil
}

func bindJSON(c echo.Context, v any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, v); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "リクエストボディが不正です", err)
	}
	return nil
}
