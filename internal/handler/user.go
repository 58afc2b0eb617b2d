package handler // user administration handlers, super admin only

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wholesale-portal/internal/auth"
)

// userRow is the serialized shape of a user in the admin list. The
// password hash never leaves the repository layer.
type userRow struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	RoleName string `json:"role_name"`
	StoreID  uint64 `json:"store_id,omitempty"`
	IsActive bool   `json:"is_active"`
}

// ListUsers handles GET /v1/users.
func (h *PortalHandler) ListUsers(c echo.Context) error {
	users, err := h.UserRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	out := make([]userRow, 0, len(users))
	for _, u := range users {
		out = append(out, userRow{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Role:     u.Role,
			RoleName: auth.Role(u.Role).DisplayName(),
			StoreID:  u.StoreID,
			IsActive: u.IsActive,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": out})
}
