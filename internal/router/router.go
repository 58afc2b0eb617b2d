package router // route registration for the portal API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wholesale-portal/internal/handler"
	"github.com/iliyamo/wholesale-portal/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes. Unauthenticated
// operations live under /v1/auth, while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Rotates the refresh token.
	g.POST("/refresh", a.Refresh)
	// Issues a new access token without rotating the refresh token.
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout accepts a bearer token (revoke all sessions) or a refresh
	// token in the body (revoke one); it also tears down the dashboard
	// session cookie in both cases, so no JWT middleware is applied.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)

	// Kept for clients that call the top-level logout path.
	e.POST("/v1/logout", a.Logout)
}
