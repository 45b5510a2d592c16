package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/navidh/exam-center-scheduling/internal/model"
	"github.com/navidh/exam-center-scheduling/internal/scheduling"
)

// UserRepo reads identity records.  Accounts are provisioned by the
// identity subsystem; this service never inserts or updates them.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the given DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetByID retrieves a user by its ID.  It returns ErrUserNotFound when
// no matching row exists and rejects rows whose role falls outside the
// closed enumeration.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const q = `SELECT id, phone, full_name, role, created_at FROM users WHERE id = ?`
	var u model.User
	var role string
	err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Phone, &u.FullName, &role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, scheduling.ErrUserNotFound
		}
		return nil, err
	}
	parsed, err := model.ParseRole(role)
	if err != nil {
		return nil, err
	}
	u.Role = parsed
	return &u, nil
}
