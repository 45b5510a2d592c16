package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/navidh/exam-center-scheduling/internal/model"
	"github.com/navidh/exam-center-scheduling/internal/scheduling"
)

// BookingRepo manages the exam_date_subjects table, which holds both
// the seed subject set of each exam date (center_id NULL) and the
// per-center booking rows.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// ExistsForCenter reports whether any booking row exists for the
// (exam date, center) pair.  Any row means the center is booked,
// regardless of subject.
func (r *BookingRepo) ExistsForCenter(ctx context.Context, examDateID, centerID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM exam_date_subjects WHERE exam_date_id = ? AND center_id = ?)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, examDateID, centerID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// SubjectIDsForExamDate returns the distinct subjects already recorded
// for an exam date, whether from the initial seed or from other
// centers' bookings.  This is the set a booking copies.
func (r *BookingRepo) SubjectIDsForExamDate(ctx context.Context, examDateID uuid.UUID) ([]uuid.UUID, error) {
	const q = `SELECT DISTINCT subject_id FROM exam_date_subjects WHERE exam_date_id = ? ORDER BY subject_id`
	rows, err := r.db.QueryContext(ctx, q, examDateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// CreateFanOut inserts one booking row per subject for the (exam date,
// center) pair inside a single transaction; all rows commit or none
// do.  The pair's existing rows are re-checked under lock first, and
// the unique key on (exam_date_id, subject_id, center_id) backstops
// the check, so a concurrent duplicate surfaces as ErrDuplicateBooking
// rather than a double booking.
func (r *BookingRepo) CreateFanOut(ctx context.Context, examDateID, centerID uuid.UUID, subjectIDs []uuid.UUID) (int, error) {
	if len(subjectIDs) == 0 {
		return 0, nil
	}
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

	// Lock any existing rows for the pair; a racing transaction that
	// already inserted them blocks us here until it commits.
	const lockQ = `SELECT COUNT(*) FROM exam_date_subjects WHERE exam_date_id = ? AND center_id = ? FOR UPDATE`
	var existing int
	if err := tx.QueryRowContext(ctx, lockQ, examDateID, centerID).Scan(&existing); err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, scheduling.ErrDuplicateBooking
	}

	query := `INSERT INTO exam_date_subjects (id, exam_date_id, subject_id, center_id) VALUES `
	args := make([]any, 0, len(subjectIDs)*4)
	for i, sid := range subjectIDs {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?)"
		args = append(args, uuid.New(), examDateID, sid, centerID)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if isDuplicateKey(err) {
			return 0, scheduling.ErrDuplicateBooking
		}
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return len(subjectIDs), nil
}

// ListForCenter returns a center's booking rows ordered by exam date.
func (r *BookingRepo) ListForCenter(ctx context.Context, centerID uuid.UUID) ([]model.ExamDateSubject, error) {
	const q = `SELECT eds.id, eds.exam_date_id, eds.subject_id, eds.center_id, eds.created_at
               FROM exam_date_subjects eds
               JOIN exam_dates ed ON ed.id = eds.exam_date_id
               WHERE eds.center_id = ?
               ORDER BY ed.date ASC, eds.subject_id ASC`
	rows, err := r.db.QueryContext(ctx, q, centerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.ExamDateSubject
	for rows.Next() {
		var b model.ExamDateSubject
		var center uuid.NullUUID
		if err := rows.Scan(&b.ID, &b.ExamDateID, &b.SubjectID, &center, &b.CreatedAt); err != nil {
			return nil, err
		}
		if center.Valid {
			id := center.UUID
			b.CenterID = &id
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
