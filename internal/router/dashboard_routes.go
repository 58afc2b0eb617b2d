package router // dashboard navigation routes

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/wholesale-portal/internal/auth"
	"github.com/iliyamo/wholesale-portal/internal/handler"
	"github.com/iliyamo/wholesale-portal/internal/middleware"
)

// RegisterDashboard registers the role-gated dashboard entry points.
// Guard order matters and is deliberate: the session guard runs first on
// every navigation (redirecting unauthenticated or expired sessions to
// login), then the role guard (super admin passes any section), then the
// landing guard, which has no super admin exemption. The net effect is
// that a super admin visiting another role's section passes the role guard
// but is still bounced to /dashboard/super-admin by the landing check.
func RegisterDashboard(e *echo.Echo, d *handler.DashboardHandler, rdb *redis.Client) {
	// Generic dashboard root: resolves the canonical path for the session.
	e.GET("/dashboard", d.Landing, middleware.SessionGuard(rdb))

	// Sliding-window session refresh for active dashboard clients.
	e.POST("/dashboard/refresh", d.RefreshSession, middleware.SessionGuard(rdb))

	sections := []struct {
		path string
		role auth.Role
	}{
		{"/dashboard/super-admin", auth.RoleSuperAdmin},
		{"/dashboard/admin", auth.RoleAdmin},
		{"/dashboard/manager", auth.RoleManager},
		{"/dashboard/salesman", auth.RoleSalesman},
		{"/dashboard/purchase", auth.RolePurchase},
		{"/dashboard/user", auth.RoleUser},
	}
	for _, s := range sections {
		e.GET(s.path, d.Section(s.role),
			middleware.SessionGuard(rdb),
			middleware.RoleGuard(rdb, s.role),
			middleware.LandingGuard(rdb),
		)
	}
}
