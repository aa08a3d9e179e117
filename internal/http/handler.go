package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "taskboard.com/taskboard/internal/errors"
	"taskboard.com/taskboard/internal/services"
)

type Handler struct {
	taskService *services.TaskService
	teamService *services.TeamService
	authService *services.AuthService
}

func NewHandler(
	taskService *services.TaskService,
	teamService *services.TeamService,
	authService *services.AuthService,
) *Handler {
	return &Handler{
		taskService: taskService,
		teamService: teamService,
		authService: authService,
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// toHTTPError surfaces typed service errors with their status code and
// hides everything else behind a 500.
func toHTTPError(err error) error {
	var ex *apperrors.Exception
	if errors.As(err, &ex) {
		return echo.NewHTTPError(ex.StatusCode, ex.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
