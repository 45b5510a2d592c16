package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/navidh/exam-center-scheduling/internal/model"
)

// ExamDateService manages exam dates and their initial subject seed.
type ExamDateService struct {
	examDates ExamDateStore
	subjects  SubjectStore
	log       zerolog.Logger
}

// NewExamDateService constructs an ExamDateService and panics if a
// dependency is nil.
func NewExamDateService(examDates ExamDateStore, subjects SubjectStore, log zerolog.Logger) *ExamDateService {
	if examDates == nil || subjects == nil {
		panic("nil dependency passed to NewExamDateService")
	}
	return &ExamDateService{examDates: examDates, subjects: subjects, log: log}
}

// CreateExamDateRequest carries the validated input for creating an
// exam date.  SeedSubjectIDs become the initial subject set centers
// copy when booking; without a seed the date cannot be booked until
// subjects appear through some other path.
type CreateExamDateRequest struct {
	Date           time.Time
	OpeningAt      time.Time
	ClosingAt      time.Time
	SeedSubjectIDs []uuid.UUID
}

// Create validates the booking window and persists the exam date with
// its seed atomically.  Opening must precede closing and both must lie
// in the future relative to the creation instant.
func (s *ExamDateService) Create(ctx context.Context, req CreateExamDateRequest) (*model.ExamDate, error) {
	now := time.Now().UTC()
	var msgs []string
	if req.Date.IsZero() {
		msgs = append(msgs, "date is required")
	}
	if req.OpeningAt.IsZero() || req.ClosingAt.IsZero() {
		msgs = append(msgs, "opening and closing times are required")
	} else {
		if !req.OpeningAt.Before(req.ClosingAt) {
			msgs = append(msgs, "opening time must be before closing time")
		}
		if !req.OpeningAt.After(now) || !req.ClosingAt.After(now) {
			msgs = append(msgs, "opening and closing times must be in the future")
		}
	}
	if len(msgs) > 0 {
		return nil, validationFailure(msgs)
	}

	// Dedupe before validating: seed rows carry a NULL center_id and
	// MySQL unique keys admit repeated NULLs, so the store's unique key
	// cannot reject a repeated seed subject.
	seen := make(map[uuid.UUID]struct{}, len(req.SeedSubjectIDs))
	seed := make([]uuid.UUID, 0, len(req.SeedSubjectIDs))
	for _, sid := range req.SeedSubjectIDs {
		if _, ok := seen[sid]; ok {
			continue
		}
		seen[sid] = struct{}{}
		if _, err := s.subjects.GetByID(ctx, sid); err != nil {
			if errors.Is(err, ErrSubjectNotFound) {
				return nil, &NotFoundError{Entity: "subject", ID: sid.String()}
			}
			return nil, persistence("load subject", err)
		}
		seed = append(seed, sid)
	}

	examDate := &model.ExamDate{
		ID:        uuid.New(),
		Date:      req.Date.UTC(),
		OpeningAt: req.OpeningAt.UTC(),
		ClosingAt: req.ClosingAt.UTC(),
	}
	if err := s.examDates.Create(ctx, examDate, seed); err != nil {
		return nil, persistence("create exam date", err)
	}
	s.log.Info().Str("exam_date_id", examDate.ID.String()).Int("seed_subjects", len(seed)).Msg("exam date created")
	return examDate, nil
}

// Get returns an exam date by id.
func (s *ExamDateService) Get(ctx context.Context, id uuid.UUID) (*model.ExamDate, error) {
	d, err := s.examDates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExamDateNotFound) {
			return nil, &NotFoundError{Entity: "exam date", ID: id.String()}
		}
		return nil, persistence("load exam date", err)
	}
	return d, nil
}

// List returns all exam dates.
func (s *ExamDateService) List(ctx context.Context) ([]model.ExamDate, error) {
	dates, err := s.examDates.List(ctx)
	if err != nil {
		return nil, persistence("list exam dates", err)
	}
	return dates, nil
}
