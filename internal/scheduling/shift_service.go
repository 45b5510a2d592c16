package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/navidh/exam-center-scheduling/internal/model"
)

// ShiftService manages the shift lifecycle: creation with subject
// associations, capacity updates, the batched time update and removal.
type ShiftService struct {
	shifts   ShiftStore
	centers  CenterStore
	subjects SubjectStore
	users    UserStore
	log      zerolog.Logger
}

// NewShiftService constructs a ShiftService and panics if a dependency
// is nil.
func NewShiftService(shifts ShiftStore, centers CenterStore, subjects SubjectStore, users UserStore, log zerolog.Logger) *ShiftService {
	if shifts == nil || centers == nil || subjects == nil || users == nil {
		panic("nil dependency passed to NewShiftService")
	}
	return &ShiftService{shifts: shifts, centers: centers, subjects: subjects, users: users, log: log}
}

// CreateShiftRequest carries the validated input for creating a shift.
type CreateShiftRequest struct {
	CenterID   uuid.UUID
	AdminID    uuid.UUID
	StartAt    time.Time
	EndAt      time.Time
	Capacity   int
	SubjectIDs []uuid.UUID
}

// UpdateShiftRequest carries the input for the single-shift time and
// capacity update.  The operation itself is disabled; see Update.
type UpdateShiftRequest struct {
	ShiftID  uuid.UUID
	StartAt  time.Time
	EndAt    time.Time
	Capacity int
}

// Create validates and persists a new shift with its subject
// associations.  Overlap is checked against all shifts created by the
// same admin; a boundary-touching interval counts as a conflict.  The
// store re-checks overlap under lock inside the insert transaction, so
// two concurrent requests cannot both slip past the check here.
func (s *ShiftService) Create(ctx context.Context, req CreateShiftRequest) (*model.Shift, error) {
	var msgs []string
	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		msgs = append(msgs, "start and end times are required")
	} else if !req.EndAt.After(req.StartAt) {
		msgs = append(msgs, "end time must be after start time")
	}
	if req.CenterID == req.AdminID {
		msgs = append(msgs, "center id and admin id must differ")
	}
	if len(msgs) > 0 {
		return nil, validationFailure(msgs)
	}

	center, err := s.centers.GetByID(ctx, req.CenterID)
	if err != nil {
		if errors.Is(err, ErrCenterNotFound) {
			return nil, &NotFoundError{Entity: "center", ID: req.CenterID.String()}
		}
		return nil, persistence("load center", err)
	}
	if !ValidShiftCapacity(center.Capacity, req.Capacity) {
		return nil, validationFailure([]string{
			fmt.Sprintf("shift capacity must be between 1 and the center capacity of %d, got %d", center.Capacity, req.Capacity),
		})
	}

	admin, err := s.users.GetByID(ctx, req.AdminID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, &NotFoundError{Entity: "admin", ID: req.AdminID.String()}
		}
		return nil, persistence("load admin", err)
	}
	if admin.Role != model.RoleCenterAdmin {
		return nil, validationFailure([]string{"admin does not hold the center admin role"})
	}

	for _, sid := range req.SubjectIDs {
		if _, err := s.subjects.GetByID(ctx, sid); err != nil {
			if errors.Is(err, ErrSubjectNotFound) {
				return nil, &NotFoundError{Entity: "subject", ID: sid.String()}
			}
			return nil, persistence("load subject", err)
		}
	}

	start := req.StartAt.UTC()
	end := req.EndAt.UTC()
	scope := OverlapScope{AdminID: req.AdminID}
	overlapping, err := s.shifts.FindOverlapping(ctx, scope, start, end, uuid.Nil)
	if err != nil {
		return nil, persistence("check overlap", err)
	}
	if len(overlapping) > 0 {
		return nil, overlapConflict(start, end)
	}

	adminID := req.AdminID
	shift := &model.Shift{
		ID:       uuid.New(),
		CenterID: req.CenterID,
		AdminID:  &adminID,
		StartAt:  &start,
		EndAt:    &end,
		Capacity: req.Capacity,
		Enabled:  true,
	}
	if err := s.shifts.CreateWithSubjects(ctx, shift, req.SubjectIDs); err != nil {
		if errors.Is(err, ErrShiftOverlap) {
			return nil, overlapConflict(start, end)
		}
		return nil, persistence("create shift", err)
	}
	s.log.Info().
		Str("shift_id", shift.ID.String()).
		Str("center_id", req.CenterID.String()).
		Int("subjects", len(req.SubjectIDs)).
		Msg("shift created")
	return shift, nil
}

// overlapConflict builds the conflict error reported when a candidate
// interval collides with an existing shift in the same scope.
func overlapConflict(start, end time.Time) error {
	return &ConflictError{Reason: fmt.Sprintf(
		"shift from %s to %s overlaps an existing shift for this admin; choose a different time",
		start.Format(time.RFC3339), end.Format(time.RFC3339),
	)}
}

// UpdateCapacity changes a shift's capacity.  The owning center is
// resolved through the shift's foreign key rather than supplied by the
// caller, so the policy always runs against the right center's current
// capacity.
func (s *ShiftService) UpdateCapacity(ctx context.Context, shiftID uuid.UUID, capacity int) (*model.Shift, error) {
	shift, err := s.shifts.GetByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, ErrShiftNotFound) {
			return nil, &NotFoundError{Entity: "shift", ID: shiftID.String()}
		}
		return nil, persistence("load shift", err)
	}
	center, err := s.centers.GetByID(ctx, shift.CenterID)
	if err != nil {
		if errors.Is(err, ErrCenterNotFound) {
			return nil, &NotFoundError{Entity: "center", ID: shift.CenterID.String()}
		}
		return nil, persistence("load center", err)
	}
	if !ValidShiftCapacity(center.Capacity, capacity) {
		return nil, validationFailure([]string{
			fmt.Sprintf("shift capacity must be between 1 and the center capacity of %d, got %d", center.Capacity, capacity),
		})
	}
	if err := s.shifts.UpdateCapacity(ctx, shiftID, capacity); err != nil {
		if errors.Is(err, ErrShiftNotFound) {
			return nil, &NotFoundError{Entity: "shift", ID: shiftID.String()}
		}
		return nil, persistence("update shift capacity", err)
	}
	shift.Capacity = capacity
	return shift, nil
}

// Update is the single-shift time and capacity update.  It validates
// the required fields and then fails: the operation is disabled until
// overlap re-checking against the new interval is in place, and a
// disabled operation is reported as such rather than silently doing
// nothing.
func (s *ShiftService) Update(ctx context.Context, req UpdateShiftRequest) error {
	var msgs []string
	if req.ShiftID == uuid.Nil {
		msgs = append(msgs, "shift id is required")
	}
	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		msgs = append(msgs, "start and end times are required")
	}
	if req.Capacity <= 0 {
		msgs = append(msgs, "capacity must be greater than zero")
	}
	if len(msgs) > 0 {
		return validationFailure(msgs)
	}
	return ErrNotSupported
}

// BulkUpdateTimes rewrites the schedule of every shift that currently
// has both a start and an end time: the start is replaced wholesale
// with newStart while the end is advanced by delta from its existing
// value, so staggered ends stay staggered.  The write is one batch;
// with no eligible shifts the operation fails instead of succeeding
// vacuously.
func (s *ShiftService) BulkUpdateTimes(ctx context.Context, newStart time.Time, delta time.Duration) (int64, error) {
	if newStart.IsZero() {
		return 0, validationFailure([]string{"new start time is required"})
	}
	n, err := s.shifts.BulkUpdateTimes(ctx, newStart.UTC(), delta)
	if err != nil {
		return 0, persistence("bulk update shift times", err)
	}
	if n == 0 {
		return 0, validationFailure([]string{"nothing to update"})
	}
	s.log.Info().Int64("updated", n).Time("new_start", newStart.UTC()).Dur("delta", delta).Msg("shift times rewritten")
	return n, nil
}

// Remove deletes a shift by id.
func (s *ShiftService) Remove(ctx context.Context, shiftID uuid.UUID) error {
	if err := s.shifts.Delete(ctx, shiftID); err != nil {
		if errors.Is(err, ErrShiftNotFound) {
			return &NotFoundError{Entity: "shift", ID: shiftID.String()}
		}
		return persistence("delete shift", err)
	}
	return nil
}

// ListByCenter returns the shifts belonging to a center.
func (s *ShiftService) ListByCenter(ctx context.Context, centerID uuid.UUID) ([]model.Shift, error) {
	shifts, err := s.shifts.ListByCenter(ctx, centerID)
	if err != nil {
		return nil, persistence("list shifts", err)
	}
	return shifts, nil
}
