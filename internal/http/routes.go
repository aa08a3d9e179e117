package http

import (
	"github.com/labstack/echo/v4"

	middleware "taskboard.com/taskboard/internal/http/middlewares"
	"taskboard.com/taskboard/internal/ratelimit"
)

func Register(e *echo.Echo, h *Handler, auth echo.MiddlewareFunc, limiter ratelimit.Limiter) {
	e.Use(middleware.RateLimiter(limiter))

	e.GET("/healthz", h.Health)

	e.POST("/auth/register", h.RegisterUser)
	e.POST("/auth/login", h.LoginUser)

	tasks := e.Group("/tasks", auth)
	tasks.GET("", h.ListTasks)
	tasks.POST("", h.CreateTask)
	tasks.GET("/:id", h.GetTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.DELETE("/:id", h.DeleteTask)

	team := e.Group("/team", auth)
	team.GET("", h.GetTeam)
	team.POST("/add", h.AddTeamMember)
	team.DELETE("/:id", h.RemoveTeamMember)
}
