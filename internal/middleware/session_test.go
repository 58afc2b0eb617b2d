package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/wholesale-portal/internal/auth"
)

func newRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func seedSession(t *testing.T, rdb *redis.Client, sid string, role auth.Role) {
	t.Helper()
	store := auth.NewSessionStore(auth.NewRedisStorage(rdb, sid))
	u := auth.User{ID: 1, Name: "Asha", Role: string(role)}
	require.NoError(t, store.Save(context.Background(), u, "tok-1"))
}

// run sends a request with an optional session cookie through mw and a
// trivial handler, returning the recorder.
func run(t *testing.T, mw echo.MiddlewareFunc, path, sid string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sid})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := mw(func(c echo.Context) error { return c.String(http.StatusOK, "rendered") })
	require.NoError(t, h(c))
	return rec
}

func TestSessionGuardRedirectsWithoutCookie(t *testing.T) {
	rdb := newRedis(t)
	rec := run(t, SessionGuard(rdb), "/dashboard", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestSessionGuardAllowsLiveSession(t *testing.T) {
	rdb := newRedis(t)
	seedSession(t, rdb, "sid-1", auth.RoleManager)
	rec := run(t, SessionGuard(rdb), "/dashboard", "sid-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rendered", rec.Body.String())
}

func TestSessionGuardExpiredSessionIsClearedAndRedirected(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	sid := "sid-old"
	store := auth.NewSessionStore(auth.NewRedisStorage(rdb, sid)).
		WithClock(func() time.Time { return time.Now().Add(-25 * time.Hour) })
	u := auth.User{ID: 1, Name: "Asha", Role: "manager"}
	require.NoError(t, store.Save(context.Background(), u, "tok-1"))

	rec := run(t, SessionGuard(rdb), "/dashboard", sid)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?expired=1", rec.Header().Get(echo.HeaderLocation))

	// The guard tore the stale session down on its way out.
	live := auth.NewSessionStore(auth.NewRedisStorage(rdb, sid))
	assert.False(t, live.IsAuthenticated(context.Background()))
}

func TestRoleGuardRedirectsToOwnDashboard(t *testing.T) {
	rdb := newRedis(t)
	seedSession(t, rdb, "sid-1", auth.RoleAdmin)

	rec := run(t, RoleGuard(rdb, auth.RoleManager), "/dashboard/manager", "sid-1")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard/admin", rec.Header().Get(echo.HeaderLocation))
}

func TestRoleGuardSuperAdminPassesAnySection(t *testing.T) {
	rdb := newRedis(t)
	seedSession(t, rdb, "sid-1", auth.RoleSuperAdmin)

	rec := run(t, RoleGuard(rdb, auth.RoleSalesman), "/dashboard/salesman", "sid-1")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLandingGuardBouncesWrongPath(t *testing.T) {
	rdb := newRedis(t)
	seedSession(t, rdb, "sid-1", auth.RoleSalesman)

	rec := run(t, LandingGuard(rdb), "/dashboard/manager", "sid-1")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard/salesman", rec.Header().Get(echo.HeaderLocation))

	rec = run(t, LandingGuard(rdb), "/dashboard/salesman/orders", "sid-1")
	assert.Equal(t, http.StatusOK, rec.Code)
}

// The landing guard has no super admin exemption, so a super admin under
// another role's path is still bounced home even though the role guard
// would have let the section render.
func TestLandingGuardDoesNotExemptSuperAdmin(t *testing.T) {
	rdb := newRedis(t)
	seedSession(t, rdb, "sid-1", auth.RoleSuperAdmin)

	rec := run(t, LandingGuard(rdb), "/dashboard/salesman", "sid-1")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard/super-admin", rec.Header().Get(echo.HeaderLocation))
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	call := func(role any, mw echo.MiddlewareFunc) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1/stores", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set("role", role)
		}
		h := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		require.NoError(t, h(c))
		return rec
	}

	gate := RequireRole(auth.RoleAdmin, auth.RoleManager)
	assert.Equal(t, http.StatusOK, call("admin", gate).Code)
	assert.Equal(t, http.StatusOK, call("manager", gate).Code)
	// Super admin passes a list that does not name it.
	assert.Equal(t, http.StatusOK, call("super_admin", gate).Code)
	assert.Equal(t, http.StatusForbidden, call("salesman", gate).Code)
	assert.Equal(t, http.StatusForbidden, call(nil, gate).Code)
	assert.Equal(t, http.StatusForbidden, call(42, gate).Code)

	// An empty list admits only super admin.
	onlySuper := RequireRole()
	assert.Equal(t, http.StatusOK, call("super_admin", onlySuper).Code)
	assert.Equal(t, http.StatusForbidden, call("admin", onlySuper).Code)
}

func TestRequireMinimumRole(t *testing.T) {
	e := echo.New()
	call := func(role string, mw echo.MiddlewareFunc) int {
		req := httptest.NewRequest(http.MethodGet, "/v1/stores", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("role", role)
		h := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		require.NoError(t, h(c))
		return rec.Code
	}

	gate := RequireMinimumRole(auth.RoleManager)
	assert.Equal(t, http.StatusOK, call("admin", gate))
	assert.Equal(t, http.StatusOK, call("manager", gate))
	assert.Equal(t, http.StatusForbidden, call("salesman", gate))

	// Equal-rank specialists satisfy each other's minimum.
	tie := RequireMinimumRole(auth.RolePurchase)
	assert.Equal(t, http.StatusOK, call("salesman", tie))
	assert.Equal(t, http.StatusOK, call("purchase", tie))
	assert.Equal(t, http.StatusForbidden, call("user", tie))
}
