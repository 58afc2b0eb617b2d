package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wholesale-portal/internal/auth"
)

// RequireRole returns a middleware enforcing that the authenticated user
// holds one of the given roles. Super admin passes every role gate, even
// lists that do not name it; dashboard panels count on super admin seeing
// everything, so the override lives here and not in each handler. It
// assumes JWTAuth already stored the role claim under "role"; a missing or
// malformed role is a plain 403.
func RequireRole(roles ...auth.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v := c.Get("role")
			raw, ok := v.(string)
			if !ok || !auth.CanAccessResource(auth.Role(raw), roles) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// RequireMinimumRole is like RequireRole but compares hierarchy ranks
// instead of exact membership: any role ranking at or above minimum is let
// through. Equal-rank specialists (salesman, purchase) satisfy each
// other's minimum without being interchangeable in RequireRole.
func RequireMinimumRole(minimum auth.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v := c.Get("role")
			raw, ok := v.(string)
			if !ok || !auth.HasMinimumRole(auth.Role(raw), minimum) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
