package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	repository "taskboard.com/taskboard/internal/repositories"
	"taskboard.com/taskboard/internal/services"
)

const userIDKey = "userID"

// Authenticate resolves the bearer token to an existing user id and
// stores it on the request context. Tokens for deleted users are
// rejected.
func Authenticate(auth *services.AuthService, users *repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			parts := strings.Fields(header)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid Authorization header")
			}

			userID, err := auth.ParseToken(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "user no longer exists")
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
			}

			c.Set(userIDKey, user.ID)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id set by Authenticate.
func UserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}
