package handler // vendor handlers for purchase managers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wholesale-portal/internal/model"
	"github.com/iliyamo/wholesale-portal/internal/repository"
)

type vendorReq struct {
	Name  string `json:"name"`
	GSTIN string `json:"gstin"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

// CreateVendor handles POST /v1/vendors.
func (h *PortalHandler) CreateVendor(c echo.Context) error {
	var body vendorReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	name := strings.TrimSpace(body.Name)
	gstin := strings.ToUpper(strings.TrimSpace(body.GSTIN))
	if name == "" || gstin == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and gstin are required"})
	}
	v := &model.Vendor{
		Name:  name,
		GSTIN: gstin,
		Phone: strings.TrimSpace(body.Phone),
		City:  strings.TrimSpace(body.City),
	}
	if err := h.VendorRepo.Create(c.Request().Context(), v); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "vendor gstin already exists"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create vendor"})
	}
	return c.JSON(http.StatusCreated, v)
}

// ListVendors handles GET /v1/vendors.
func (h *PortalHandler) ListVendors(c echo.Context) error {
	items, err := h.VendorRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}
