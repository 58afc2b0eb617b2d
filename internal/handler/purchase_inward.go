package handler // purchase inward handlers for purchase managers

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

type purchaseInwardReq struct {
	VendorID    uint64 `json:"vendor_id"`
	StoreID     uint64 `json:"store_id"`
	InvoiceNo   string `json:"invoice_no"`
	AmountCents uint64 `json:"amount_cents"`
	ReceivedAt  string `json:"received_at"` // RFC3339; defaults to now
}

// CreatePurchaseInward handles POST /v1/purchase-inwards. On success an
// inward.recorded event is published; publish failures are ignored so the
// write itself never rolls back on broker trouble.
func (h *PortalHandler) CreatePurchaseInward(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
	}
	var body purchaseInwardReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	invoice := strings.TrimSpace(body.InvoiceNo)
	if body.VendorID == 0 || body.StoreID == 0 || invoice == "" || body.AmountCents == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "vendor_id, store_id, invoice_no and amount_cents are required"})
	}
	receivedAt := time.Now().UTC()
	if s := strings.TrimSpace(body.ReceivedAt); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "received_at must be RFC3339"})
		}
		receivedAt = t.UTC()
	}

	ctx := c.Request().Context()
	if _, err := h.VendorRepo.GetByID(ctx, body.VendorID); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "vendor not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	if _, err := h.StoreRepo.GetByID(ctx, body.StoreID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "store not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}

	p := &model.PurchaseInward{
		VendorID:    body.VendorID,
		StoreID:     body.StoreID,
		InvoiceNo:   invoice,
		AmountCents: body.AmountCents,
		ReceivedAt:  receivedAt,
		CreatedBy:   uid,
	}
	if err := h.PurchaseRepo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "invoice already recorded for this vendor"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create purchase inward"})
	}

	_ = queue_publisher.PublishInwardRecorded(ctx, queue.InwardRecordedEvent{
		Kind:        "purchase",
		InwardID:    p.ID,
		StoreID:     p.StoreID,
		VendorID:    p.VendorID,
		InvoiceNo:   p.InvoiceNo,
		AmountCents: p.AmountCents,
		RecordedBy:  uid,
		RecordedAt:  receivedAt.Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, p)
}

// ListPurchaseInwards handles GET /v1/purchase-inwards with an optional
// ?store_id filter.
func (h *PortalHandler) ListPurchaseInwards(c echo.Context) error {
	var storeID uint64
	if s := c.QueryParam("store_id"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid store_id"})
		}
		storeID = n
	}
	items, err := h.PurchaseRepo.List(c.Request().Context(), storeID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}
