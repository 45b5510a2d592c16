package scheduling

import (
	"time"

	"github.com/google/uuid"

	"github.com/navidh/exam-center-scheduling/internal/model"
)

// OverlapScope identifies the set of shifts a candidate interval is
// compared against.  Exactly one of CenterID or AdminID is set: shifts
// generated with a center are scoped to the center, while shifts
// created by an admin are scoped to that admin so one admin cannot
// double-book themselves across time.
type OverlapScope struct {
	CenterID uuid.UUID
	AdminID  uuid.UUID
}

// Overlaps reports whether the candidate interval [candStart, candEnd]
// collides with the existing interval [start, end].  Boundaries are
// inclusive on both sides: back-to-back shifts sharing an instant are
// treated as a conflict, so a shared boundary can never double-book
// the same physical room.
func Overlaps(start, end, candStart, candEnd time.Time) bool {
	return !start.After(candEnd) && !end.Before(candStart)
}

// RewriteShiftTimes applies the batched time update rule to one
// shift's schedule: the start time is replaced wholesale with newStart
// while the end time is advanced by delta from its existing value.
// All starts collapse to the same instant; per-shift end times keep
// their relative stagger.
func RewriteShiftTimes(end time.Time, newStart time.Time, delta time.Duration) (time.Time, time.Time) {
	return newStart, end.Add(delta)
}

// FirstOverlapping returns the first shift in the given set whose
// interval overlaps the candidate, skipping the shift identified by
// excludeID (the zero UUID excludes nothing).  Shifts without a
// schedule never overlap anything.  Used to re-check overlap against
// rows already locked inside a transaction.
func FirstOverlapping(shifts []model.Shift, candStart, candEnd time.Time, excludeID uuid.UUID) *model.Shift {
	for i := range shifts {
		s := &shifts[i]
		if s.ID == excludeID {
			continue
		}
		if s.StartAt == nil || s.EndAt == nil {
			continue
		}
		if Overlaps(*s.StartAt, *s.EndAt, candStart, candEnd) {
			return s
		}
	}
	return nil
}
