// Package model holds the table-backed record types shared by the
// repository layer. Handlers define their own response types with JSON
// tags; these structs mirror columns only.
package model

import "time"

// User represents an application user as stored in the `users` table.
// Role holds one of the portal's wire role values (super_admin, admin,
// manager, salesman, purchase, user). StoreID is set only for
// store-scoped roles such as admin and is 0 otherwise.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	Name         – display name shown in the dashboard header.
//	Email        – unique email address used to log in.
//	PasswordHash – bcrypt hashed password.
//	Role         – wire value of the user's role.
//	StoreID      – id of the store the user is scoped to (0 when unscoped).
//	IsActive     – whether the account is active.
//	CreatedAt    – timestamp of creation.
//	UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	Role         string
	StoreID      uint64
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
