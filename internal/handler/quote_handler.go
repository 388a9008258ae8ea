package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/handler/middleware"
	"github.com/na2na-p/eventsync/internal/handler/response"
	"github.com/na2na-p/eventsync/internal/usecase"
)

func GetQuotesHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	return respondQuery(c, usecase.NewQuoteUseCase(sess).QuoteRequests(c.Request().Context()))
}

type quoteRequest struct {
	To      domain.Principal `json:"to"`
	Message string           `json:"message"`
}

func PostQuoteHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	var req quoteRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	id, err := usecase.NewQuoteUseCase(sess).SendQuoteRequest(c.Request().Context(), usecase.QuoteInput{
		To:      req.To,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, response.IDResponse{ID: id})
}
