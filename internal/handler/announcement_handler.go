package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/handler/middleware"
	"github.com/na2na-p/eventsync/internal/handler/response"
	"github.com/na2na-p/eventsync/internal/usecase"
)

func GetAnnouncementsHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	return respondQuery(c, usecase.NewAnnouncementUseCase(sess).Announcements(c.Request().Context()))
}

type announcementRequest struct {
	Title    string                      `json:"title"`
	Message  string                      `json:"message"`
	Priority domain.AnnouncementPriority `json:"priority"`
}

func PostAnnouncementHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	var req announcementRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	id, err := usecase.NewAnnouncementUseCase(sess).CreateAnnouncement(c.Request().Context(), usecase.AnnouncementInput{
		Title:    req.Title,
		Message:  req.Message,
		Priority: req.Priority,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, response.IDResponse{ID: id})
}

func DeleteAnnouncementHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := usecase.NewAnnouncementUseCase(sess).DeleteAnnouncement(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
