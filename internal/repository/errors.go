// Package repository defines error values shared across repositories so
// handlers can distinguish failure scenarios, e.g. ErrConflict for a
// duplicate store code or vendor GSTIN.
package repository

import (
	"errors"
	"strings"
)

// ErrConflict is returned when a write cannot be performed because of
// conflicting state. Handlers should translate this into an HTTP 409
// response.
var ErrConflict = errors.New("conflict")

// isDuplicate reports whether a MySQL error is a duplicate-key violation
// (error 1062). The driver does not expose a typed error for it.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
