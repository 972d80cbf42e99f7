package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medisys/hms-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: both claims must be
// present (presence proves the middleware ran) and the role must still parse
// against the enumerated set.
func ctxIdentity(c echo.Context) (username string, role domain.Role, err error) {
	username, _ = c.Get("username").(string)
	roleStr, _ := c.Get("role").(string)
	if username == "" || roleStr == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, parseErr := domain.ParseRole(roleStr)
	if parseErr != nil {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return username, role, nil
}
