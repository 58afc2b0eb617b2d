package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/wholesale-portal/internal/model"
)

// StockInwardRepo persists stock-count records.
type StockInwardRepo struct {
	db *sql.DB
}

func NewStockInwardRepo(db *sql.DB) *StockInwardRepo {
	return &StockInwardRepo{db: db}
}

// Create inserts a stock inward row and populates ID and CreatedAt.
func (r *StockInwardRepo) Create(ctx context.Context, s *model.StockInward) error {
	const qInsert = `INSERT INTO stock_inwards
	                 (store_id, item_name, quantity, unit, recorded_at, created_by)
	                 VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		s.StoreID, s.ItemName, s.Quantity, s.Unit, s.RecordedAt, s.CreatedBy)
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

	const qSelect = "SELECT created_at FROM stock_inwards WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, s.ID).Scan(&s.CreatedAt)
}

// List returns stock inward rows newest first, optionally filtered by
// store. storeID zero means all stores.
func (r *StockInwardRepo) List(ctx context.Context, storeID uint64) ([]*model.StockInward, error) {
	const base = `SELECT id, store_id, item_name, quantity, unit, recorded_at, created_by, created_at
	              FROM stock_inwards`
	var (
		rows *sql.Rows
		err  error
	)
	if storeID != 0 {
		rows, err = r.db.QueryContext(ctx, base+" WHERE store_id = ? ORDER BY id DESC", storeID)
	} else {
		rows, err = r.db.QueryContext(ctx, base+" ORDER BY id DESC")
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.StockInward
	for rows.Next() {
		s := new(model.StockInward)
		if err := rows.Scan(&s.ID, &s.StoreID, &s.ItemName, &s.Quantity, &s.Unit, &s.RecordedAt, &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
