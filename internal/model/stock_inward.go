package model

import "time"

// StockInward records stock counted into a store, independent of a vendor
// invoice (returns, transfers, corrections).
type StockInward struct {
	ID         uint64
	StoreID    uint64
	ItemName   string
	Quantity   uint32
	Unit       string
	RecordedAt time.Time
	CreatedBy  uint64
	CreatedAt  time.Time
}
