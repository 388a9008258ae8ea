package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/eventsync/internal/handler/middleware"
	"github.com/na2na-p/eventsync/internal/usecase"
)

func GetFavoritesHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	return respondQuery(c, usecase.NewFavoriteUseCase(sess).Favorites(c.Request().Context()))
}

func PutFavoriteHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := usecase.NewFavoriteUseCase(sess).AddFavorite(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func DeleteFavoriteHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := usecase.NewFavoriteUseCase(sess).RemoveFavorite(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
