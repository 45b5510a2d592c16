package model

import (
	"time"

	"github.com/google/uuid"
)

// Shift represents a bounded time interval during which a center
// administers exams.  Shifts belong to exactly one center and are
// removed together with it.  Start and end times are pointers because
// historical rows may carry no schedule yet; a scheduled shift always
// has both, with end strictly after start.  A shift's capacity may
// never exceed the capacity of its owning center.
//
// Fields:
//  ID        – primary key identifier (UUID).
//  CenterID  – center the shift belongs to (cascade-deleted).
//  AdminID   – center admin who created the shift (nil for shifts
//              generated at center creation).
//  StartAt   – when the shift begins, UTC (nil if unscheduled).
//  EndAt     – when the shift ends, UTC (nil if unscheduled).
//  Capacity  – seats available in this shift.
//  Enabled   – whether the shift is open for use.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Shift struct {
	ID        uuid.UUID  // shifts.id
	CenterID  uuid.UUID  // shifts.center_id
	AdminID   *uuid.UUID // shifts.admin_id (nullable)
	StartAt   *time.Time // shifts.start_at (nullable)
	EndAt     *time.Time // shifts.end_at (nullable)
	Capacity  int        // shifts.capacity
	Enabled   bool       // shifts.enabled
	CreatedAt time.Time  // shifts.created_at
	UpdatedAt time.Time  // shifts.updated_at
}

// ShiftSubject links a shift to a subject offered during it.  Each
// (shift, subject) pair appears at most once.
type ShiftSubject struct {
	ID        uuid.UUID // shift_subjects.id
	ShiftID   uuid.UUID // shift_subjects.shift_id
	SubjectID uuid.UUID // shift_subjects.subject_id
}
