package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/wholesale-portal/internal/model"
)

// PurchaseInwardRepo persists goods-received records.
type PurchaseInwardRepo struct {
	db *sql.DB
}

func NewPurchaseInwardRepo(db *sql.DB) *PurchaseInwardRepo {
	return &PurchaseInwardRepo{db: db}
}

// Create inserts an inward row. The vendor and store must exist; a missing
// foreign key or duplicate (vendor_id, invoice_no) pair surfaces as
// ErrConflict.
func (r *PurchaseInwardRepo) Create(ctx context.Context, p *model.PurchaseInward) error {
	const qInsert = `INSERT INTO purchase_inwards
	                 (vendor_id, store_id, invoice_no, amount_cents, received_at, created_by)
	                 VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		p.VendorID, p.StoreID, p.InvoiceNo, p.AmountCents, p.ReceivedAt, p.CreatedBy)
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
	p.ID = uint64(id)

	const qSelect = "SELECT created_at FROM purchase_inwards WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, p.ID).Scan(&p.CreatedAt)
}

// List returns inward rows newest first, optionally filtered by store.
// storeID zero means all stores.
func (r *PurchaseInwardRepo) List(ctx context.Context, storeID uint64) ([]*model.PurchaseInward, error) {
	const base = `SELECT id, vendor_id, store_id, invoice_no, amount_cents, received_at, created_by, created_at
	              FROM purchase_inwards`
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

	var out []*model.PurchaseInward
	for rows.Next() {
		p := new(model.PurchaseInward)
		if err := rows.Scan(&p.ID, &p.VendorID, &p.StoreID, &p.InvoiceNo, &p.AmountCents, &p.ReceivedAt, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single inward row.
func (r *PurchaseInwardRepo) GetByID(ctx context.Context, id uint64) (*model.PurchaseInward, error) {
	const q = `SELECT id, vendor_id, store_id, invoice_no, amount_cents, received_at, created_by, created_at
	           FROM purchase_inwards WHERE id = ?`
	p := new(model.PurchaseInward)
	if err := r.db.QueryRowContext(ctx, q, id).
		Scan(&p.ID, &p.VendorID, &p.StoreID, &p.InvoiceNo, &p.AmountCents, &p.ReceivedAt, &p.CreatedBy, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, err
	}
	return p, nil
}
