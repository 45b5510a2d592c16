package scheduling

import (
	"time"

	"github.com/google/uuid"

	"github.com/navidh/exam-center-scheduling/internal/model"
)

const (
	// GeneratedShiftCount is how many shifts every new center starts with.
	GeneratedShiftCount = 4
	// GeneratedShiftCapacity is the fixed capacity of generated shifts,
	// independent of the center's own capacity.
	GeneratedShiftCapacity = 20
	// GeneratedShiftStride separates the start times of consecutive
	// generated shifts.
	GeneratedShiftStride = 2 * time.Hour
	// DefaultShiftDuration is the length of each generated shift.
	DefaultShiftDuration = 2 * time.Hour
	// generatedShiftHourUTC is the hour of day the first generated shift
	// starts at when no base time is given.
	generatedShiftHourUTC = 10
)

// GenerateInitialShifts produces the batch of shifts attached to a
// newly created center.  All shifts share the given duration, have
// capacity GeneratedShiftCapacity and start disabled.  When base is
// the zero time, the first shift starts at 10:00 UTC on the day of
// now.
//
// The cursor advances by GeneratedShiftStride between shifts, measured
// start-to-start rather than end-to-start.  A duration longer than the
// stride therefore yields mutually overlapping shifts; such shifts
// would be rejected by the overlap check on the normal creation path.
// This mirrors the historical behaviour and is untested territory for
// durations above two hours.
func GenerateInitialShifts(centerID uuid.UUID, base time.Time, duration time.Duration, now time.Time) []model.Shift {
	if duration <= 0 {
		duration = DefaultShiftDuration
	}
	if base.IsZero() {
		day := now.UTC()
		base = time.Date(day.Year(), day.Month(), day.Day(), generatedShiftHourUTC, 0, 0, 0, time.UTC)
	}
	base = base.UTC()

	shifts := make([]model.Shift, 0, GeneratedShiftCount)
	cursor := base
	for i := 0; i < GeneratedShiftCount; i++ {
		start := cursor
		end := cursor.Add(duration)
		shifts = append(shifts, model.Shift{
			ID:       uuid.New(),
			CenterID: centerID,
			StartAt:  &start,
			EndAt:    &end,
			Capacity: GeneratedShiftCapacity,
			Enabled:  false,
		})
		cursor = cursor.Add(GeneratedShiftStride)
	}
	return shifts
}
