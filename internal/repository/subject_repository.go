package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/navidh/exam-center-scheduling/internal/model"
	"github.com/navidh/exam-center-scheduling/internal/scheduling"
)

// SubjectRepo manages persistence for subjects.
type SubjectRepo struct {
	db *sql.DB
}

// NewSubjectRepo constructs a SubjectRepo with the given DB handle.
func NewSubjectRepo(db *sql.DB) *SubjectRepo {
	return &SubjectRepo{db: db}
}

// GetByID retrieves a subject by its ID.  It returns
// ErrSubjectNotFound when no matching row exists.
func (r *SubjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Subject, error) {
	const q = `SELECT id, name, description FROM subjects WHERE id = ?`
	var s model.Subject
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Name, &s.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, scheduling.ErrSubjectNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts a new subject.
func (r *SubjectRepo) Create(ctx context.Context, s *model.Subject) error {
	const q = `INSERT INTO subjects (id, name, description) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, s.ID, s.Name, s.Description)
	return err
}

// List returns all subjects ordered by name.
func (r *SubjectRepo) List(ctx context.Context) ([]model.Subject, error) {
	const q = `SELECT id, name, description FROM subjects ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []model.Subject
	for rows.Next() {
		var s model.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Description); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
