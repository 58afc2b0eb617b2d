package handler // store CRUD handlers for admins and managers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wholesale-portal/internal/model"
	"github.com/iliyamo/wholesale-portal/internal/repository"
)

type storeReq struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	City   string `json:"city"`
	Active *bool  `json:"active"`
}

// CreateStore handles POST /v1/stores.
func (h *PortalHandler) CreateStore(c echo.Context) error {
	var body storeReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	code := strings.ToUpper(strings.TrimSpace(body.Code))
	if name == "" || code == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and code are required"})
	}
	active := true
	if body.Active != nil {
		active = *body.Active
	}
	s := &model.Store{Name: name, Code: code, City: strings.TrimSpace(body.City), IsActive: active}
	if err := h.StoreRepo.Create(c.Request().Context(), s); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "store code already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create store"})
	}
	return c.JSON(http.StatusCreated, s)
}

// ListStores handles GET /v1/stores.
func (h *PortalHandler) ListStores(c echo.Context) error {
	items, err := h.StoreRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// UpdateStore handles PUT/PATCH /v1/stores/:id.
func (h *PortalHandler) UpdateStore(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body storeReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	cur, err := h.StoreRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "store not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}

	// PATCH semantics: untouched fields keep their current values.
	name := cur.Name
	if strings.TrimSpace(body.Name) != "" {
		name = strings.TrimSpace(body.Name)
	}
	code := cur.Code
	if strings.TrimSpace(body.Code) != "" {
		code = strings.ToUpper(strings.TrimSpace(body.Code))
	}
	city := cur.City
	if strings.TrimSpace(body.City) != "" {
		city = strings.TrimSpace(body.City)
	}
	active := cur.IsActive
	if body.Active != nil {
		active = *body.Active
	}

	if err := h.StoreRepo.Update(c.Request().Context(), id, name, code, city, active); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "store not found"})
		}
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "store code already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "update failed"})
	}
	updated, _ := h.StoreRepo.GetByID(c.Request().Context(), id)
	return c.JSON(http.StatusOK, updated)
}

// DeleteStore handles DELETE /v1/stores/:id. Dependent inward records are
// removed in the same transaction.
func (h *PortalHandler) DeleteStore(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.StoreRepo.DeleteByID(c.Request().Context(), id); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "store not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
