package handler // stock inward handlers for salesmen and managers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/wholesale-portal/internal/model"
	"github.com/iliyamo/wholesale-portal/internal/queue"
	"github.com/iliyamo/wholesale-portal/internal/repository"
	queue_publisher "github.com/iliyamo/wholesale-portal/internal/service"
)

type stockInwardReq struct {
	StoreID    uint64 `json:"store_id"`
	ItemName   string `json:"item_name"`
	Quantity   uint32 `json:"quantity"`
	Unit       string `json:"unit"`
	RecordedAt string `json:"recorded_at"` // RFC3339; defaults to now
}

// CreateStockInward handles POST /v1/stock-inwards and publishes an
// inward.recorded event on success.
func (h *PortalHandler) CreateStockInward(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	var body stockInwardReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	item := strings.TrimSpace(body.ItemName)
	unit := strings.TrimSpace(body.Unit)
	if body.StoreID == 0 || item == "" || body.Quantity == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "store_id, item_name and quantity are required"})
	}
	if unit == "" {
		unit = "pcs"
	}
	recordedAt := time.Now().UTC()
	if s := strings.TrimSpace(body.RecordedAt); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "recorded_at must be RFC3339"})
		}
		recordedAt = t.UTC()
	}

	ctx := c.Request().Context()
	if _, err := h.StoreRepo.GetByID(ctx, body.StoreID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "store not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}

	s := &model.StockInward{
		StoreID:    body.StoreID,
		ItemName:   item,
		Quantity:   body.Quantity,
		Unit:       unit,
		RecordedAt: recordedAt,
		CreatedBy:  uid,
	}
	if err := h.StockRepo.Create(ctx, s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create stock inward"})
	}

	_ = queue_publisher.PublishInwardRecorded(ctx, queue.InwardRecordedEvent{
		Kind:       "stock",
		InwardID:   s.ID,
		StoreID:    s.StoreID,
		ItemName:   s.ItemName,
		Quantity:   s.Quantity,
		Unit:       s.Unit,
		RecordedBy: uid,
		RecordedAt: recordedAt.Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, s)
}

// ListStockInwards handles GET /v1/stock-inwards with an optional
// ?store_id filter.
func (h *PortalHandler) ListStockInwards(c echo.Context) error {
	var storeID uint64
	if s := c.QueryParam("store_id"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid store_id"})
		}
		storeID = n
	}
	items, err := h.StockRepo.List(c.Request().Context(), storeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}
