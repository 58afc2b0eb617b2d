package middleware

// session.go wires the pure guard decisions from internal/auth into Echo.
// Dashboard routes are navigated by a browser, so a denied guard turns
// into a 302 redirect (to the login page or to the user's own dashboard),
// never into an error page. Guards re-run on every request into the
// protected subtree; nothing is cached between navigations.

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/wholesale-portal/internal/auth"
)

// SessionCookie names the cookie carrying the dashboard session id.
const SessionCookie = "portal_sid"

// sessionKey is the context key under which the request's SessionStore is
// stored for handlers further down the chain.
const sessionKey = "session_store"

// SessionFromContext returns the SessionStore attached by SessionGuard.
func SessionFromContext(c echo.Context) (*auth.SessionStore, bool) {
	s, ok := c.Get(sessionKey).(*auth.SessionStore)
	return s, ok
}

// sessionStore builds the SessionStore for the request's session cookie.
// A missing cookie yields a store over empty storage, which reads as
// unauthenticated everywhere; guards then redirect to login without any
// special casing.
func sessionStore(c echo.Context, rdb *redis.Client) *auth.SessionStore {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" || rdb == nil {
		return auth.NewSessionStore(auth.NewMemoryStorage())
	}
	return auth.NewSessionStore(auth.NewRedisStorage(rdb, cookie.Value))
}

// SessionGuard is the generic authentication guard: unauthenticated or
// expired sessions are redirected to the login page (expired ones are
// cleared first). On allow, the SessionStore is attached to the context.
func SessionGuard(rdb *redis.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := sessionStore(c, rdb)
			d := auth.CheckAuthenticated(c.Request().Context(), s)
			if !d.Allow {
				return c.Redirect(http.StatusFound, d.RedirectTo)
			}
			c.Set(sessionKey, s)
			return next(c)
		}
	}
}

// RoleGuard gates one dashboard section on a required role. Super admin
// renders any section; everyone else is sent to their own dashboard when
// the role does not match.
func RoleGuard(rdb *redis.Client, required auth.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := sessionStore(c, rdb)
			d := auth.CheckRole(c.Request().Context(), s, required)
			if !d.Allow {
				return c.Redirect(http.StatusFound, d.RedirectTo)
			}
			c.Set(sessionKey, s)
			return next(c)
		}
	}
}

// LandingGuard bounces a client whose URL does not live under the
// canonical dashboard path for their role. It deliberately has no super
// admin exemption; see auth.CheckLanding.
func LandingGuard(rdb *redis.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s := sessionStore(c, rdb)
			d := auth.CheckLanding(c.Request().Context(), s, c.Request().URL.Path)
			if !d.Allow {
				return c.Redirect(http.StatusFound, d.RedirectTo)
			}
			c.Set(sessionKey, s)
			return next(c)
		}
	}
}
