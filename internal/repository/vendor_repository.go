package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/wholesale-portal/internal/model"
)

// ErrVendorNotFound is returned when a vendor cannot be found in the DB.
var ErrVendorNotFound = errors.New("vendor not found")

// VendorRepo encapsulates all database queries related to vendors.
type VendorRepo struct {
	db *sql.DB
}

func NewVendorRepo(db *sql.DB) *VendorRepo {
	return &VendorRepo{db: db}
}

// Create inserts a new vendor. Duplicate GSTINs surface as ErrConflict.
func (r *VendorRepo) Create(ctx context.Context, v *model.Vendor) error {
	const qInsert = "INSERT INTO vendors (name, gstin, phone, city) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, v.Name, v.GSTIN, v.Phone, v.City)
	if err != nil {
		if isDuplicate(err) {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)

	const qSelect = "SELECT name, gstin, phone, city, created_at, updated_at FROM vendors WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, v.ID).
		Scan(&v.Name, &v.GSTIN, &v.Phone, &v.City, &v.CreatedAt, &v.UpdatedAt)
}

// GetByID fetches a vendor by id, returning ErrVendorNotFound when absent.
func (r *VendorRepo) GetByID(ctx context.Context, id uint64) (*model.Vendor, error) {
	const q = "SELECT id, name, gstin, phone, city, created_at, updated_at FROM vendors WHERE id = ?"
	var v model.Vendor
	if err := r.db.QueryRowContext(ctx, q, id).
		Scan(&v.ID, &v.Name, &v.GSTIN, &v.Phone, &v.City, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVendorNotFound
		}
		return nil, err
	}
	return &v, nil
}

// List returns all vendors ordered by id.
func (r *VendorRepo) List(ctx context.Context) ([]*model.Vendor, error) {
	const q = `SELECT id, name, gstin, phone, city, created_at, updated_at
	           FROM vendors ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Vendor
	for rows.Next() {
		v := new(model.Vendor)
		if err := rows.Scan(&v.ID, &v.Name, &v.GSTIN, &v.Phone, &v.City, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
