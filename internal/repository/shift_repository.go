package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/navidh/exam-center-scheduling/internal/model"
	"github.com/navidh/exam-center-scheduling/internal/scheduling"
)

// ShiftRepo manages persistence for shifts and their subject
// associations.
type ShiftRepo struct {
	db *sql.DB
}

// NewShiftRepo constructs a ShiftRepo with the given DB handle.
func NewShiftRepo(db *sql.DB) *ShiftRepo {
	return &ShiftRepo{db: db}
}

const shiftColumns = `id, center_id, admin_id, start_at, end_at, capacity, enabled, created_at, updated_at`

// scanShift scans one shifts row from the given row scanner.
func scanShift(row interface{ Scan(dest ...any) error }) (*model.Shift, error) {
	var s model.Shift
	var admin uuid.NullUUID
	var start, end sql.NullTime
	err := row.Scan(&s.ID, &s.CenterID, &admin, &start, &end, &s.Capacity, &s.Enabled, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if admin.Valid {
		id := admin.UUID
		s.AdminID = &id
	}
	if start.Valid {
		t := start.Time
		s.StartAt = &t
	}
	if end.Valid {
		t := end.Time
		s.EndAt = &t
	}
	return &s, nil
}

// GetByID retrieves a shift by its ID.  It returns ErrShiftNotFound
// when no matching row exists.
func (r *ShiftRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Shift, error) {
	const q = `SELECT ` + shiftColumns + ` FROM shifts WHERE id = ?`
	s, err := scanShift(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, scheduling.ErrShiftNotFound
		}
		return nil, err
	}
	return s, nil
}

// ListByCenter returns all shifts for a center ordered by start time.
func (r *ShiftRepo) ListByCenter(ctx context.Context, centerID uuid.UUID) ([]model.Shift, error) {
	const q = `SELECT ` + shiftColumns + ` FROM shifts WHERE center_id = ? ORDER BY start_at ASC`
	return r.queryShifts(ctx, r.db, q, centerID)
}

// scopeClause returns the WHERE fragment and argument selecting the
// shifts belonging to a scheduling scope.  Exactly one of the scope's
// fields must be set.
func scopeClause(scope scheduling.OverlapScope) (string, any) {
	if scope.AdminID != uuid.Nil {
		return "admin_id = ?", scope.AdminID
	}
	if scope.CenterID != uuid.Nil {
		return "center_id = ?", scope.CenterID
	}
	panic("empty overlap scope")
}

// FindOverlapping returns the shifts in the given scope whose interval
// collides with [start, end].  Boundaries are inclusive on both sides,
// so shifts that merely touch the candidate count as overlapping.  The
// shift identified by excludeID is skipped, which lets updates ignore
// their own prior interval.
func (r *ShiftRepo) FindOverlapping(ctx context.Context, scope scheduling.OverlapScope, start, end time.Time, excludeID uuid.UUID) ([]model.Shift, error) {
	clause, scopeArg := scopeClause(scope)
	q := `SELECT ` + shiftColumns + ` FROM shifts
          WHERE ` + clause + `
            AND start_at IS NOT NULL AND end_at IS NOT NULL
            AND start_at <= ? AND end_at >= ?`
	args := []any{scopeArg, end, start}
	if excludeID != uuid.Nil {
		q += ` AND id <> ?`
		args = append(args, excludeID)
	}
	return r.queryShifts(ctx, r.db, q, args...)
}

// CreateWithSubjects inserts a shift and its subject associations in
// one transaction.  The admin's existing shifts are locked and
// re-checked for overlap inside the transaction first, so two
// concurrent creations for the same admin serialize on the row locks
// and the loser gets ErrShiftOverlap instead of a double booking.
func (r *ShiftRepo) CreateWithSubjects(ctx context.Context, s *model.Shift, subjectIDs []uuid.UUID) error {
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

	if s.AdminID != nil && s.StartAt != nil && s.EndAt != nil {
		const lockQ = `SELECT ` + shiftColumns + ` FROM shifts WHERE admin_id = ? FOR UPDATE`
		locked, err := r.queryShifts(ctx, tx, lockQ, *s.AdminID)
		if err != nil {
			return err
		}
		if hit := scheduling.FirstOverlapping(locked, *s.StartAt, *s.EndAt, s.ID); hit != nil {
			return scheduling.ErrShiftOverlap
		}
	}

	const q = `INSERT INTO shifts (id, center_id, admin_id, start_at, end_at, capacity, enabled) VALUES (?, ?, ?, ?, ?, ?, ?)`
	var admin uuid.NullUUID
	if s.AdminID != nil {
		admin = uuid.NullUUID{UUID: *s.AdminID, Valid: true}
	}
	if _, err := tx.ExecContext(ctx, q, s.ID, s.CenterID, admin, s.StartAt, s.EndAt, s.Capacity, s.Enabled); err != nil {
		return err
	}

	if len(subjectIDs) > 0 {
		query := `INSERT INTO shift_subjects (id, shift_id, subject_id) VALUES `
		args := make([]any, 0, len(subjectIDs)*3)
		for i, sid := range subjectIDs {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?)"
			args = append(args, uuid.New(), s.ID, sid)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	// Query the inserted row back to populate DB-default timestamps.
	const sel = `SELECT ` + shiftColumns + ` FROM shifts WHERE id = ?`
	fresh, err := scanShift(tx.QueryRowContext(ctx, sel, s.ID))
	if err != nil {
		return err
	}
	*s = *fresh

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// UpdateCapacity sets a shift's capacity.  It returns ErrShiftNotFound
// when the shift does not exist.
func (r *ShiftRepo) UpdateCapacity(ctx context.Context, id uuid.UUID, capacity int) error {
	const q = `UPDATE shifts SET capacity = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, capacity, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM shifts WHERE id = ?`, id).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return scheduling.ErrShiftNotFound
			}
			return err
		}
	}
	return nil
}

// BulkUpdateTimes rewrites every scheduled shift in one batched write:
// the start time is replaced with newStart while the end time is
// advanced by delta from its current value.  Shifts missing either
// time are ignored.  It returns the number of rows the batch touched.
func (r *ShiftRepo) BulkUpdateTimes(ctx context.Context, newStart time.Time, delta time.Duration) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	// Lock the eligible rows and compute the new schedule per shift.
	// The driver reports changed rows rather than matched rows, so the
	// count comes from this select instead of the update result; a
	// no-op rewrite still counts as updated.
	const sel = `SELECT id, end_at FROM shifts WHERE start_at IS NOT NULL AND end_at IS NOT NULL FOR UPDATE`
	rows, err := tx.QueryContext(ctx, sel)
	if err != nil {
		return 0, err
	}
	type rewrite struct {
		id    uuid.UUID
		start time.Time
		end   time.Time
	}
	var rewrites []rewrite
	for rows.Next() {
		var id uuid.UUID
		var end time.Time
		if err := rows.Scan(&id, &end); err != nil {
			rows.Close()
			return 0, err
		}
		start, end := scheduling.RewriteShiftTimes(end, newStart, delta)
		rewrites = append(rewrites, rewrite{id: id, start: start, end: end})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}
	if len(rewrites) == 0 {
		return 0, nil
	}

	// Every rewrite shares the same start, so a single placeholder
	// covers start_at while end_at needs the per-row CASE.
	q := `UPDATE shifts SET start_at = ?, end_at = CASE id`
	args := []any{rewrites[0].start}
	for _, rw := range rewrites {
		q += ` WHEN ? THEN ?`
		args = append(args, rw.id, rw.end)
	}
	q += ` END WHERE id IN (`
	for i, rw := range rewrites {
		if i > 0 {
			q += ","
		}
		q += "?"
		args = append(args, rw.id)
	}
	q += ")"
	if _, err := tx.ExecContext(ctx, q, args...); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return int64(len(rewrites)), nil
}

// Delete removes a shift by id.  Its subject associations are removed
// by the ON DELETE CASCADE on shift_subjects.shift_id.
func (r *ShiftRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM shifts WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return scheduling.ErrShiftNotFound
	}
	return nil
}

// querier is the subset of sql.DB and sql.Tx the repo queries through.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *ShiftRepo) queryShifts(ctx context.Context, q querier, query string, args ...any) ([]model.Shift, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
