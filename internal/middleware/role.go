package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/navidh/exam-center-scheduling/internal/model"
)

// RequireRole returns a middleware that enforces that the
// authenticated caller holds one of the given roles.  Roles are the
// typed constants of the closed enumeration; JWTAuth has already
// rejected anything outside it, so a missing or mistyped context value
// here means the middleware chain is misordered and the request is
// refused.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		if !r.Valid() {
			panic("RequireRole called with unknown role " + string(r))
		}
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextRole).(model.Role)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
