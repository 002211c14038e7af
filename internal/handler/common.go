package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/skill-swap/internal/model"
)

// getUserID extracts the authenticated user id placed in the context
// by the JWT middleware.
func getUserID(c echo.Context) (int64, error) {
	if id, ok := c.Get("user_id").(int64); ok && id != 0 {
		return id, nil
	}
	return 0, errors.New("no authenticated user")
}

// parseID parses a positive integer path parameter.
func parseID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// publicUser strips credential material from a user record before it
// leaves the API.
func publicUser(u model.User) model.User {
	u.PasswordHash = ""
	return u
}
