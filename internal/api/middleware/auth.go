package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/medisys/hms-api/internal/api/metrics"
	"github.com/medisys/hms-api/internal/core/domain"
	"github.com/medisys/hms-api/internal/core/ports"
)

// Auth validates the bearer session token and injects the resolved identity
// into the request context. Every failure is a 401: the caller is treated as
// unauthenticated, with no partial trust in any decoded claim.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenFailuresTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenFailuresTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				metrics.TokenFailuresTotal.WithLabelValues(tokenFailureReason(err)).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, tokenFailureMessage(err))
			}

			c.Set("username", claims.Username)
			c.Set("role", string(claims.Role))

			return next(c)
		}
	}
}

func tokenFailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrExpiredToken):
		return "expired"
	case errors.Is(err, domain.ErrInvalidSignature):
		return "invalid_signature"
	default:
		return "malformed"
	}
}

func tokenFailureMessage(err error) string {
	if errors.Is(err, domain.ErrExpiredToken) {
		return "token expired"
	}
	return "invalid token"
}
