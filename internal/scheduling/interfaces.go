package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/navidh/exam-center-scheduling/internal/model"
)

// Sentinel errors the store implementations return.  Services translate
// them into the typed errors of this package before they reach a
// caller.
var (
	ErrCenterNotFound   = errors.New("center not found")
	ErrShiftNotFound    = errors.New("shift not found")
	ErrSubjectNotFound  = errors.New("subject not found")
	ErrExamDateNotFound = errors.New("exam date not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateBooking = errors.New("booking already exists")
	ErrDuplicateOwner   = errors.New("user already owns a center")
	ErrShiftOverlap     = errors.New("shift overlaps an existing shift")
)

// CenterStore persists centers.  CreateWithShifts must commit the
// center and its generated shifts as one unit or not at all.
type CenterStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Center, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Center, error)
	CreateWithShifts(ctx context.Context, c *model.Center, shifts []model.Shift) error
	Update(ctx context.Context, c *model.Center) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]model.Center, error)
}

// ShiftStore persists shifts and their subject associations.
// CreateWithSubjects runs inside a transaction that re-checks overlap
// against the scope's locked rows and returns ErrShiftOverlap when a
// concurrent insert won the race.  BulkUpdateTimes applies one batched
// write and reports how many rows it touched.
type ShiftStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Shift, error)
	ListByCenter(ctx context.Context, centerID uuid.UUID) ([]model.Shift, error)
	FindOverlapping(ctx context.Context, scope OverlapScope, start, end time.Time, excludeID uuid.UUID) ([]model.Shift, error)
	CreateWithSubjects(ctx context.Context, s *model.Shift, subjectIDs []uuid.UUID) error
	UpdateCapacity(ctx context.Context, id uuid.UUID, capacity int) error
	BulkUpdateTimes(ctx context.Context, newStart time.Time, delta time.Duration) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubjectStore persists subjects.
type SubjectStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Subject, error)
	Create(ctx context.Context, s *model.Subject) error
	List(ctx context.Context) ([]model.Subject, error)
}

// ExamDateStore persists exam dates.  Create stores the exam date and
// its optional subject seed atomically.
type ExamDateStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.ExamDate, error)
	Create(ctx context.Context, d *model.ExamDate, seedSubjectIDs []uuid.UUID) error
	List(ctx context.Context) ([]model.ExamDate, error)
}

// BookingStore persists exam date bookings.  CreateFanOut inserts the
// whole subject fan-out for one (exam date, center) pair in a single
// transaction; it returns ErrDuplicateBooking when rows for the pair
// already exist, whether detected up front or via the unique key when
// two requests race.
type BookingStore interface {
	ExistsForCenter(ctx context.Context, examDateID, centerID uuid.UUID) (bool, error)
	SubjectIDsForExamDate(ctx context.Context, examDateID uuid.UUID) ([]uuid.UUID, error)
	CreateFanOut(ctx context.Context, examDateID, centerID uuid.UUID, subjectIDs []uuid.UUID) (int, error)
	ListForCenter(ctx context.Context, centerID uuid.UUID) ([]model.ExamDateSubject, error)
}

// UserStore reads identity records provisioned by the identity
// subsystem.  The scheduling core never writes users.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}
