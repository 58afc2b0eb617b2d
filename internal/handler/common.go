package handler // http handlers for the portal API and dashboard

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wholesale-portal/internal/auth"
	"github.com/iliyamo/wholesale-portal/internal/repository"
)

// PortalHandler bundles the repositories behind the dashboard CRUD
// endpoints. Inward creation additionally publishes an inward.recorded
// event through the queue publisher; publish failures never fail the
// request.
type PortalHandler struct {
	StoreRepo    *repository.StoreRepo
	VendorRepo   *repository.VendorRepo
	PurchaseRepo *repository.PurchaseInwardRepo
	StockRepo    *repository.StockInwardRepo
	UserRepo     *repository.UserRepo
}

func NewPortalHandler(stores *repository.StoreRepo, vendors *repository.VendorRepo, purchases *repository.PurchaseInwardRepo, stocks *repository.StockInwardRepo, users *repository.UserRepo) *PortalHandler {
	if stores == nil || vendors == nil || purchases == nil || stocks == nil || users == nil {
		panic("nil repository passed to NewPortalHandler")
	}
	return &PortalHandler{
		StoreRepo:    stores,
		VendorRepo:   vendors,
		PurchaseRepo: purchases,
		StockRepo:    stocks,
		UserRepo:     users,
	}
}

// getUserID extracts the user_id claim from echo.Context and converts it to
// uint64. JWT numerics decode as float64, so several shapes are accepted.
func getUserID(c echo.Context) (uint64, error) {
	v := c.Get("user_id")
	switch t := v.(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// getRole returns the role claim stored by JWTAuth, or "" when absent.
func getRole(c echo.Context) auth.Role {
	if s, ok := c.Get("role").(string); ok {
		return auth.Role(s)
	}
	return ""
}
