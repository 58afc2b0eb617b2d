package model

import "time"

// Vendor represents a supplier in the `vendors` table. GSTIN is the
// vendor's tax registration number and is unique across vendors.
type Vendor struct {
	ID        uint64
	Name      string
	GSTIN     string
	Phone     string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
