package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/handler/middleware"
	"github.com/na2na-p/eventsync/internal/handler/response"
	"github.com/na2na-p/eventsync/internal/usecase"
)

func GetTicketsHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	return respondQuery(c, usecase.NewTicketUseCase(sess).UserTickets(c.Request().Context()))
}

func GetTicketHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	return respondQuery(c, usecase.NewTicketUseCase(sess).Ticket(c.Request().Context(), id))
}

func PostTicketHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	var ticket domain.Ticket
	if err := bindJSON(c, &ticket); err != nil {
		return err
	}
	if err := usecase.NewTicketUseCase(sess).CreateTicket(c.Request().Context(), ticket); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

func ValidateTicketHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	valid, err := usecase.NewTicketUseCase(sess).ValidateTicket(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response.ValidateTicketResponse{Valid: valid})
}

func RefundTicketHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := usecase.NewTicketUseCase(sess).RefundTicket(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
