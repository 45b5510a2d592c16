package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/navidh/exam-center-scheduling/internal/model"
	"github.com/navidh/exam-center-scheduling/internal/scheduling"
)

// ExamDateRepo manages persistence for exam dates.
type ExamDateRepo struct {
	db *sql.DB
}

// NewExamDateRepo constructs an ExamDateRepo with the given DB handle.
func NewExamDateRepo(db *sql.DB) *ExamDateRepo {
	return &ExamDateRepo{db: db}
}

// GetByID retrieves an exam date by its ID.  It returns
// ErrExamDateNotFound when no matching row exists.
func (r *ExamDateRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ExamDate, error) {
	const q = `SELECT id, date, opening_at, closing_at, created_at FROM exam_dates WHERE id = ?`
	var d model.ExamDate
	err := r.db.QueryRowContext(ctx, q, id).Scan(&d.ID, &d.Date, &d.OpeningAt, &d.ClosingAt, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, scheduling.ErrExamDateNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Create inserts an exam date together with its seed subject rows in a
// single transaction.  Seed rows carry a NULL center_id: they define
// the subject set centers later copy when booking, without committing
// any center.
func (r *ExamDateRepo) Create(ctx context.Context, d *model.ExamDate, seedSubjectIDs []uuid.UUID) error {
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

	const q = `INSERT INTO exam_dates (id, date, opening_at, closing_at) VALUES (?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, q, d.ID, d.Date, d.OpeningAt, d.ClosingAt); err != nil {
		return err
	}

	if len(seedSubjectIDs) > 0 {
		query := `INSERT INTO exam_date_subjects (id, exam_date_id, subject_id, center_id) VALUES `
		args := make([]any, 0, len(seedSubjectIDs)*4)
		for i, sid := range seedSubjectIDs {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?, NULL)"
			args = append(args, uuid.New(), d.ID, sid)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	const sel = `SELECT id, date, opening_at, closing_at, created_at FROM exam_dates WHERE id = ?`
	if err := tx.QueryRowContext(ctx, sel, d.ID).Scan(&d.ID, &d.Date, &d.OpeningAt, &d.ClosingAt, &d.CreatedAt); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// List returns all exam dates ordered by date ascending.
func (r *ExamDateRepo) List(ctx context.Context) ([]model.ExamDate, error) {
	const q = `SELECT id, date, opening_at, closing_at, created_at FROM exam_dates ORDER BY date ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.ExamDate
	for rows.Next() {
		var d model.ExamDate
		if err := rows.Scan(&d.ID, &d.Date, &d.OpeningAt, &d.ClosingAt, &d.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
