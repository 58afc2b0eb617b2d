package model

import "time"

// Store represents a wholesale outlet in the `stores` table. Code is a
// short unique identifier printed on invoices and inward records.
type Store struct {
	ID        uint64
	Name      string
	Code      string
	City      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
