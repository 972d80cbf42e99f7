package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medisys/hms-api/internal/api/metrics"
	"github.com/medisys/hms-api/internal/core/domain"
	"github.com/medisys/hms-api/internal/core/policy"
	"github.com/medisys/hms-api/internal/core/ports"
)

// RequireOperation gates a route on the access policy table. The operation is
// resolved when the route is registered, so an unknown identifier panics at
// startup rather than at request time. Denials are counted and audited;
// allowed requests are audited after the handler runs.
func RequireOperation(op policy.Operation, audit ports.AuditRecorder) echo.MiddlewareFunc {
	policy.MustKnow(op)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, _ := c.Get("username").(string)
			roleStr, _ := c.Get("role").(string)
			role := domain.Role(roleStr)

			if !policy.Authorize(op, role) {
				metrics.AuthzDenialsTotal.WithLabelValues(string(op), roleStr).Inc()
				record(audit, ports.AuditEntry{
					Username:  username,
					Role:      roleStr,
					Operation: string(op),
					Decision:  "deny",
					Timestamp: time.Now().UTC(),
				})
				return echo.NewHTTPError(http.StatusForbidden, "operation not permitted for role")
			}

			record(audit, ports.AuditEntry{
				Username:  username,
				Role:      roleStr,
				Operation: string(op),
				Decision:  "allow",
				Timestamp: time.Now().UTC(),
			})
			return next(c)
		}
	}
}

func record(audit ports.AuditRecorder, entry ports.AuditEntry) {
	if audit != nil {
		audit.Enqueue(entry)
	}
}
