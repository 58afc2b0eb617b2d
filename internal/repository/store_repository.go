// This file defines repository methods for wholesale stores. A store is the
// unit every inward record hangs off, so deletion cascades through
// dependent rows inside a transaction.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/wholesale-portal/internal/model"
)

// ErrStoreNotFound is returned when a store cannot be found in the DB.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepo encapsulates all database queries related to stores.
type StoreRepo struct {
	db *sql.DB
}

func NewStoreRepo(db *sql.DB) *StoreRepo {
	return &StoreRepo{db: db}
}

// Create inserts a new store. On success the ID field is populated and a
// follow-up SELECT fills the timestamp fields so callers receive a fully
// populated record. Duplicate codes surface as ErrConflict.
func (r *StoreRepo) Create(ctx context.Context, s *model.Store) error {
	const qInsert = "INSERT INTO stores (name, code, city, is_active) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, s.Name, s.Code, s.City, s.IsActive)
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
	s.ID = uint64(id)

	const qSelect = "SELECT name, code, city, is_active, created_at, updated_at FROM stores WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, s.ID).
		Scan(&s.Name, &s.Code, &s.City, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
}

// GetByID fetches a store by its ID. Returns ErrStoreNotFound when no row
// exists.
func (r *StoreRepo) GetByID(ctx context.Context, id uint64) (*model.Store, error) {
	const q = "SELECT id, name, code, city, is_active, created_at, updated_at FROM stores WHERE id = ?"
	var s model.Store
	if err := r.db.QueryRowContext(ctx, q, id).
		Scan(&s.ID, &s.Name, &s.Code, &s.City, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return &s, nil
}

// List returns all stores ordered by id.
func (r *StoreRepo) List(ctx context.Context) ([]*model.Store, error) {
	const q = `SELECT id, name, code, city, is_active, created_at, updated_at
	           FROM stores ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Store
	for rows.Next() {
		s := new(model.Store)
		if err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.City, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update rewrites the mutable store fields. It returns sql.ErrNoRows when
// no row is affected (not found) and ErrConflict on a duplicate code.
func (r *StoreRepo) Update(ctx context.Context, id uint64, name, code, city string, active bool) error {
	const q = `UPDATE stores
	           SET name = ?, code = ?, city = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, name, code, city, active, id)
	if err != nil {
		if isDuplicate(err) {
			return ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteByID removes a store and all dependent inward records. The
// deletion occurs within a transaction to maintain integrity. If the store
// does not exist, sql.ErrNoRows is returned.
func (r *StoreRepo) DeleteByID(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()
	var exists uint64
	if err = tx.QueryRowContext(ctx, `SELECT id FROM stores WHERE id = ?`, id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sql.ErrNoRows
		}
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM purchase_inwards WHERE store_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM stock_inwards WHERE store_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM stores WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}
