package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/eventsync/internal/domain"
	"github.com/na2na-p/eventsync/internal/handler/middleware"
	"github.com/na2na-p/eventsync/internal/usecase"
)

func GetProfileHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	return respondQuery(c, usecase.NewProfileUseCase(sess).CallerProfile(c.Request().Context()))
}

// GetProfileSetupHandler はプロフィールの初期設定が必要かどうかを返します
func GetProfileSetupHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	needs := usecase.NewProfileUseCase(sess).NeedsProfileSetup(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]bool{"needsSetup": needs})
}

func GetUserProfileHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	user, err := domain.NewPrincipal(c.Param("principal"))
	if err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "Principalが不正です", err)
	}
	return respondQuery(c, usecase.NewProfileUseCase(sess).UserProfile(c.Request().Context(), user))
}

func GetRoleHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	return respondQuery(c, usecase.NewProfileUseCase(sess).CallerRole(c.Request().Context()))
}

func GetAdminHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	return respondQuery(c, usecase.NewProfileUseCase(sess).IsCallerAdmin(c.Request().Context()))
}

func PutProfileHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	var profile domain.UserProfile
	if err := bindJSON(c, &profile); err != nil {
		return err
	}
	if err := usecase.NewProfileUseCase(sess).SaveCallerProfile(c.Request().Context(), profile); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type roleAssignmentRequest struct {
	User domain.Principal `json:"user"`
	Role domain.UserRole  `json:"role"`
}

func PostRoleHandler(c echo.Context) error {
	sess, err := middleware.SessionFromContext(c)
	if err != nil {
		return err
	}
	var req roleAssignmentRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	in := usecase.RoleAssignment{User: req.User, Role: req.Role}
	if err := usecase.NewProfileUseCase(sess).AssignRole(c.Request().Context(), in); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
