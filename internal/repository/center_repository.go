package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/navidh/exam-center-scheduling/internal/model"
	"github.com/navidh/exam-center-scheduling/internal/scheduling"
)

// CenterRepo manages persistence for centers.
type CenterRepo struct {
	db *sql.DB
}

// NewCenterRepo constructs a CenterRepo with the given DB handle.
func NewCenterRepo(db *sql.DB) *CenterRepo {
	return &CenterRepo{db: db}
}

const centerColumns = `id, name, gender, zone, location, capacity, enabled, owner_id, created_at, updated_at`

// scanCenter scans one centers row from the given row scanner.
func scanCenter(row interface{ Scan(dest ...any) error }) (*model.Center, error) {
	var c model.Center
	var owner uuid.NullUUID
	err := row.Scan(&c.ID, &c.Name, &c.Gender, &c.Zone, &c.Location, &c.Capacity, &c.Enabled, &owner, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if owner.Valid {
		id := owner.UUID
		c.OwnerID = &id
	}
	return &c, nil
}

// GetByID retrieves a center by its ID.  It returns ErrCenterNotFound
// when no matching row exists.
func (r *CenterRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Center, error) {
	const q = `SELECT ` + centerColumns + ` FROM centers WHERE id = ?`
	c, err := scanCenter(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, scheduling.ErrCenterNotFound
		}
		return nil, err
	}
	return c, nil
}

// GetByOwner retrieves the center administered by the given user.  The
// unique key on owner_id guarantees at most one row.
func (r *CenterRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Center, error) {
	const q = `SELECT ` + centerColumns + ` FROM centers WHERE owner_id = ?`
	c, err := scanCenter(r.db.QueryRowContext(ctx, q, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, scheduling.ErrCenterNotFound
		}
		return nil, err
	}
	return c, nil
}

// CreateWithShifts inserts a center and its generated shifts in one
// transaction: either the center and every shift are stored, or none
// are.  A unique-key violation on owner_id surfaces as
// ErrDuplicateOwner.
func (r *CenterRepo) CreateWithShifts(ctx context.Context, c *model.Center, shifts []model.Shift) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const q = `INSERT INTO centers (id, name, gender, zone, location, capacity, enabled, owner_id) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	var owner uuid.NullUUID
	if c.OwnerID != nil {
		owner = uuid.NullUUID{UUID: *c.OwnerID, Valid: true}
	}
	if _, err := tx.ExecContext(ctx, q, c.ID, c.Name, c.Gender, c.Zone, c.Location, c.Capacity, c.Enabled, owner); err != nil {
		if isDuplicateKey(err) {
			return scheduling.ErrDuplicateOwner
		}
		return err
	}

	if len(shifts) > 0 {
		query := `INSERT INTO shifts (id, center_id, admin_id, start_at, end_at, capacity, enabled) VALUES `
		args := make([]any, 0, len(shifts)*7)
		for i, s := range shifts {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?, ?, ?, ?, ?)"
			var admin uuid.NullUUID
			if s.AdminID != nil {
				admin = uuid.NullUUID{UUID: *s.AdminID, Valid: true}
			}
			args = append(args, s.ID, s.CenterID, admin, s.StartAt, s.EndAt, s.Capacity, s.Enabled)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	// Query the inserted row back to populate DB-default timestamps.
	const sel = `SELECT ` + centerColumns + ` FROM centers WHERE id = ?`
	fresh, err := scanCenter(tx.QueryRowContext(ctx, sel, c.ID))
	if err != nil {
		return err
	}
	*c = *fresh

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Update replaces all mutable fields of a center.  It returns
// ErrCenterNotFound when the row does not exist and ErrDuplicateOwner
// when the new owner already administers another center.
func (r *CenterRepo) Update(ctx context.Context, c *model.Center) error {
	const q = `UPDATE centers SET name = ?, gender = ?, zone = ?, location = ?, capacity = ?, enabled = ?, owner_id = ? WHERE id = ?`
	var owner uuid.NullUUID
	if c.OwnerID != nil {
		owner = uuid.NullUUID{UUID: *c.OwnerID, Valid: true}
	}
	res, err := r.db.ExecContext(ctx, q, c.Name, c.Gender, c.Zone, c.Location, c.Capacity, c.Enabled, owner, c.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return scheduling.ErrDuplicateOwner
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Zero affected rows can also mean a no-op update; confirm existence.
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM centers WHERE id = ?`, c.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return scheduling.ErrCenterNotFound
			}
			return err
		}
	}
	return nil
}

// Delete removes a center by id.  Its shifts are removed by the
// ON DELETE CASCADE on shifts.center_id.
func (r *CenterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM centers WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return scheduling.ErrCenterNotFound
	}
	return nil
}

// List returns all centers ordered by name.
func (r *CenterRepo) List(ctx context.Context) ([]model.Center, error) {
	const q = `SELECT ` + centerColumns + ` FROM centers ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Center
	for rows.Next() {
		c, err := scanCenter(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
