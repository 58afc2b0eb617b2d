package model

import "time"

// PurchaseInward records goods received from a vendor against an invoice.
// Amounts are stored in paise/cents to avoid floating point in money math.
// InvoiceNo is unique per vendor.
type PurchaseInward struct {
	ID          uint64
	VendorID    uint64
	StoreID     uint64
	InvoiceNo   string
	AmountCents uint64
	ReceivedAt  time.Time
	CreatedBy   uint64
	CreatedAt   time.Time
}
