package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/navidh/exam-center-scheduling/internal/model"
	"github.com/navidh/exam-center-scheduling/internal/queue"
)

// BookingPublisher dispatches the deferred task that follows a
// successful booking.  Publishing happens after the commit and its
// failure never fails the booking; the consumer retries on its own
// schedule.
type BookingPublisher interface {
	PublishCenterBooked(ctx context.Context, ev queue.CenterBookedEvent) error
}

// BookingService assigns centers to exam dates.  Per (center, exam
// date) pair the state machine is Unbooked -> Booked with no further
// transitions; there is no unbook.
type BookingService struct {
	bookings  BookingStore
	examDates ExamDateStore
	registry  *OwnershipRegistry
	publisher BookingPublisher
	log       zerolog.Logger
}

// NewBookingService constructs a BookingService and panics if a
// required dependency is nil.  The publisher may be nil, in which case
// no events are dispatched.
func NewBookingService(bookings BookingStore, examDates ExamDateStore, registry *OwnershipRegistry, publisher BookingPublisher, log zerolog.Logger) *BookingService {
	if bookings == nil || examDates == nil || registry == nil {
		panic("nil dependency passed to NewBookingService")
	}
	return &BookingService{bookings: bookings, examDates: examDates, registry: registry, publisher: publisher, log: log}
}

// BookingResult reports a successful fan-out.
type BookingResult struct {
	ExamDateID   uuid.UUID
	CenterID     uuid.UUID
	SubjectCount int
}

// BookExamDate books the caller's owned center for the given exam
// date.  The subject set already recorded for the date is copied into
// one booking row per subject for the center, all inserted in a single
// transaction.  The copy is deliberate: each center's commitment stays
// independently queryable even if subject sets diverge later.
//
// The existence check here is advisory; the store's unique key on
// (exam date, subject, center) is what decides a race between two
// concurrent requests, and the loser surfaces as the same "already
// booked" conflict.
func (s *BookingService) BookExamDate(ctx context.Context, callerID, examDateID uuid.UUID) (*BookingResult, error) {
	center, err := s.registry.OwnedCenter(ctx, callerID)
	if err != nil {
		return nil, persistence("resolve caller center", err)
	}
	if center == nil {
		return nil, validationFailure([]string{"no administrative privileges for any center"})
	}

	examDate, err := s.examDates.GetByID(ctx, examDateID)
	if err != nil {
		if errors.Is(err, ErrExamDateNotFound) {
			return nil, &NotFoundError{Entity: "exam date", ID: examDateID.String()}
		}
		return nil, persistence("load exam date", err)
	}

	booked, err := s.bookings.ExistsForCenter(ctx, examDateID, center.ID)
	if err != nil {
		return nil, persistence("check existing booking", err)
	}
	if booked {
		return nil, &ConflictError{Reason: "exam date already booked for this center"}
	}

	subjectIDs, err := s.bookings.SubjectIDsForExamDate(ctx, examDateID)
	if err != nil {
		return nil, persistence("load exam date subjects", err)
	}
	if len(subjectIDs) == 0 {
		return nil, validationFailure([]string{"no subjects available for this exam date"})
	}

	n, err := s.bookings.CreateFanOut(ctx, examDateID, center.ID, subjectIDs)
	if err != nil {
		if errors.Is(err, ErrDuplicateBooking) {
			return nil, &ConflictError{Reason: "exam date already booked for this center"}
		}
		return nil, persistence("create booking", err)
	}

	s.log.Info().
		Str("exam_date_id", examDateID.String()).
		Str("center_id", center.ID.String()).
		Int("subjects", n).
		Msg("exam date booked")

	if s.publisher != nil {
		ev := queue.CenterBookedEvent{
			ExamDateID:   examDateID.String(),
			CenterID:     center.ID.String(),
			CenterName:   center.Name,
			ExamDate:     examDate.Date.UTC().Format(time.RFC3339),
			SubjectCount: n,
			BookedAt:     time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.publisher.PublishCenterBooked(ctx, ev); err != nil {
			s.log.Warn().Err(err).Str("exam_date_id", examDateID.String()).Msg("booking event publish failed")
		}
	}

	return &BookingResult{ExamDateID: examDateID, CenterID: center.ID, SubjectCount: n}, nil
}

// ListForCenter returns a center's booking rows across all exam dates.
func (s *BookingService) ListForCenter(ctx context.Context, centerID uuid.UUID) ([]model.ExamDateSubject, error) {
	rows, err := s.bookings.ListForCenter(ctx, centerID)
	if err != nil {
		return nil, persistence("list bookings", err)
	}
	return rows, nil
}
