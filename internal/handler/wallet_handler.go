package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/handler/middleware"
	"github.com/na2na-p/eventsync/internal/handler/response"
	"github.com/na2na-p/eventsync/internal/usecase"
)

func GetBalanceHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	return respondQuery(c, usecase.NewWalletUseCase(sess).Balance(c.Request().Context()))
}

func GetTransactionsHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	return respondQuery(c, usecase.NewWalletUseCase(sess).Transactions(c.Request().Context()))
}

type transactionRequest struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

func PostTransactionHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	var req transactionRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	id, err := usecase.NewWalletUseCase(sess).RecordTransaction(c.Request().Context(), usecase.TransactionInput{
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, response.IDResponse{ID: id})
}

type balanceRequest struct {
	User   domain.Principal `json:"user"`
	Amount int64            `json:"amount"`
}

func PutBalanceHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	var req balanceRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := usecase.NewWalletUseCase(sess).UpdateBalance(c.Request().Context(), usecase.BalanceUpdate{
		User:   req.User,
		Amount: req.Amount,
	}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
