package router // role-scoped CRUD routes under /v1

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wholesale-portal/internal/auth"
	"github.com/iliyamo/wholesale-portal/internal/handler"
	"github.com/iliyamo/wholesale-portal/internal/middleware"
)

// RegisterPortalAPI registers the CRUD endpoints backing the dashboard
// screens. All routes require a valid JWT; per-route role lists follow the
// access matrix (super admin implicitly passes every gate). cacheMW is
// applied to list endpoints only and may be a pass-through when caching is
// disabled.
func RegisterPortalAPI(e *echo.Echo, p *handler.PortalHandler, jwtSecret string, cacheMW echo.MiddlewareFunc) {
	g := e.Group("/v1", middleware.JWTAuth(jwtSecret))

	// ---- Stores ----
	g.POST("/stores", p.CreateStore, middleware.RequireRole(auth.RoleAdmin, auth.RoleManager))
	g.GET("/stores", p.ListStores, middleware.RequireRole(auth.RoleAdmin, auth.RoleManager), cacheMW)
	g.PUT("/stores/:id", p.UpdateStore, middleware.RequireRole(auth.RoleAdmin, auth.RoleManager))
	g.PATCH("/stores/:id", p.UpdateStore, middleware.RequireRole(auth.RoleAdmin, auth.RoleManager))
	g.DELETE("/stores/:id", p.DeleteStore, middleware.RequireRole(auth.RoleAdmin, auth.RoleManager))

	// ---- Vendors ----
	g.POST("/vendors", p.CreateVendor, middleware.RequireRole(auth.RolePurchase, auth.RoleManager))
	g.GET("/vendors", p.ListVendors, middleware.RequireRole(auth.RolePurchase, auth.RoleManager), cacheMW)

	// ---- Purchase inwards ----
	g.POST("/purchase-inwards", p.CreatePurchaseInward, middleware.RequireRole(auth.RolePurchase))
	g.GET("/purchase-inwards", p.ListPurchaseInwards, middleware.RequireRole(auth.RolePurchase), cacheMW)

	// ---- Stock inwards ----
	g.POST("/stock-inwards", p.CreateStockInward, middleware.RequireRole(auth.RoleSalesman, auth.RoleManager))
	g.GET("/stock-inwards", p.ListStockInwards, middleware.RequireRole(auth.RoleSalesman, auth.RoleManager), cacheMW)

	// ---- Users (super admin only; the empty list still admits super admin) ----
	g.GET("/users", p.ListUsers, middleware.RequireRole())
}
