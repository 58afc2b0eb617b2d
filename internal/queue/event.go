// Package queue defines message payloads exchanged over the message broker.
package queue

// InwardRecordedEvent is published when a purchase or stock inward record
// is created. It carries enough detail for downstream consumers to log,
// notify, or feed analytics without querying the primary database. Kind is
// "purchase" or "stock"; vendor/invoice fields are set only for purchase
// inwards and item fields only for stock inwards.
type InwardRecordedEvent struct {
	Kind        string `json:"kind"`
	InwardID    uint64 `json:"inward_id"`
	StoreID     uint64 `json:"store_id"`
	VendorID    uint64 `json:"vendor_id,omitempty"`
	InvoiceNo   string `json:"invoice_no,omitempty"`
	AmountCents uint64 `json:"amount_cents,omitempty"`
	ItemName    string `json:"item_name,omitempty"`
	Quantity    uint32 `json:"quantity,omitempty"`
	Unit        string `json:"unit,omitempty"`
	RecordedBy  uint64 `json:"recorded_by"`
	RecordedAt  string `json:"recorded_at"`
}
