package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskboard.com/taskboard/internal/data_models"
	middleware "taskboard.com/taskboard/internal/http/middlewares"
	"taskboard.com/taskboard/internal/http/validators"
)

func (h *Handler) GetTeam(c echo.Context) error {
	members, err := h.teamService.Get(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, members)
}

func (h *Handler) AddTeamMember(c echo.Context) error {
	var req dto.AddMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateAddMemberRequest(&req); err != nil {
		return toHTTPError(err)
	}

	members, err := h.teamService.AddMember(c.Request().Context(), middleware.UserID(c), req.Email)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "team member added",
		"team":    members,
	})
}

func (h *Handler) RemoveTeamMember(c echo.Context) error {
	memberID := c.Param("id")
	if memberID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "member id is required")
	}

	members, err := h.teamService.RemoveMember(c.Request().Context(), middleware.UserID(c), memberID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "team member removed",
		"team":    members,
	})
}
