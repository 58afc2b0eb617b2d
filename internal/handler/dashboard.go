package handler // dashboard navigation handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wholesale-portal/internal/auth"
	"github.com/iliyamo/wholesale-portal/internal/middleware"
)

// DashboardHandler serves the dashboard entry points. The actual data
// shown on each screen comes from the /v1 API; these endpoints only
// resolve where a session belongs and what it may see.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler { return &DashboardHandler{} }

// Landing handles GET /dashboard: it re-derives the canonical path for the
// session's role and sends the client there. Runs behind SessionGuard, so
// the session is present and unexpired by the time it executes.
func (h *DashboardHandler) Landing(c echo.Context) error {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.Redirect(http.StatusFound, auth.LoginPath)
	}
	role, ok := s.ReadRole(c.Request().Context())
	if !ok {
		return c.Redirect(http.StatusFound, auth.LoginPath)
	}
	return c.Redirect(http.StatusFound, role.DashboardPath())
}

// Section handles GET /dashboard/<role-path> for one role's dashboard. The
// route guards already allowed the render; the body describes the section
// so a client can build its navigation. sectionRole is the role the
// section belongs to, not necessarily the session's role (super admin
// reaches every section).
func (h *DashboardHandler) Section(sectionRole auth.Role) echo.HandlerFunc {
	return func(c echo.Context) error {
		s, ok := middleware.SessionFromContext(c)
		if !ok {
			return c.Redirect(http.StatusFound, auth.LoginPath)
		}
		ctx := c.Request().Context()
		u, okU := s.ReadUser(ctx)
		role, okR := s.ReadRole(ctx)
		if !okU || !okR {
			return c.Redirect(http.StatusFound, auth.LoginPath)
		}
		// Belt-and-suspenders: a session that reached this section directly
		// with an insufficient role gets an explicit denial panel with a way
		// back to its own dashboard, rather than a silent wrong render.
		if !auth.CanAccessResource(role, []auth.Role{sectionRole}) {
			return c.JSON(http.StatusForbidden, echo.Map{
				"error":     "access denied",
				"message":   "Your role does not have access to this dashboard.",
				"back":      role.DashboardPath(),
				"back_name": role.DisplayName(),
			})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"section":   string(sectionRole),
			"title":     sectionRole.DisplayName(),
			"user":      echo.Map{"id": u.ID, "name": u.Name, "role": u.Role, "store_id": u.StoreID},
			"role_name": role.DisplayName(),
		})
	}
}

// RefreshSession handles POST /dashboard/refresh: it slides the session
// window forward for an active client. Fails closed when the session is
// gone or already expired.
func (h *DashboardHandler) RefreshSession(c echo.Context) error {
	s, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "no session"})
	}
	if !s.Refresh(c.Request().Context()) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired"})
	}
	return c.NoContent(http.StatusNoContent)
}
