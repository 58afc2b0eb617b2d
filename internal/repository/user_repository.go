package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/wholesale-portal/internal/model"
	"github.com/iliyamo/wholesale-portal/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrEmailExists = errors.New("email already exists")

// Create inserts a user and returns its ID. storeID is written as NULL
// when zero so only store-scoped roles carry a store reference.
func (r *UserRepo) Create(ctx context.Context, name, email, password, role string, storeID uint64, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	var sid any
	if storeID != 0 {
		sid = storeID
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, role, store_id) VALUES (?,?,?,?,?)",
		name, email, hash, role, sid)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	var sid sql.NullInt64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,role,store_id,is_active,created_at,updated_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &sid, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if sid.Valid {
		u.StoreID = uint64(sid.Int64)
	}
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	var sid sql.NullInt64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,name,email,password_hash,role,store_id,is_active,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &sid, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if sid.Valid {
		u.StoreID = uint64(sid.Int64)
	}
	return u, err
}

// List returns all users ordered by id. Password hashes are included in
// the record; handlers must not serialize them.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,email,password_hash,role,store_id,is_active,created_at,updated_at FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		var sid sql.NullInt64
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &sid, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		if sid.Valid {
			u.StoreID = uint64(sid.Int64)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
