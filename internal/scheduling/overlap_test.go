package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navidh/exam-center-scheduling/internal/model"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 14, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                   string
		start, end             time.Time
		candStart, candEnd     time.Time
		want                   bool
	}{
		{"disjoint before", at(8, 0), at(9, 0), at(10, 0), at(11, 0), false},
		{"disjoint after", at(12, 0), at(13, 0), at(10, 0), at(11, 0), false},
		{"full containment", at(10, 0), at(12, 0), at(10, 30), at(11, 30), true},
		{"partial overlap at head", at(9, 0), at(10, 30), at(10, 0), at(11, 0), true},
		{"partial overlap at tail", at(10, 30), at(12, 0), at(10, 0), at(11, 0), true},
		{"identical intervals", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		// Boundary touch counts: back-to-back shifts conflict.
		{"candidate starts where existing ends", at(9, 0), at(10, 0), at(10, 0), at(11, 0), true},
		{"candidate ends where existing starts", at(11, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"one minute of air", at(9, 0), at(9, 59), at(10, 0), at(11, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.start, tt.end, tt.candStart, tt.candEnd))
		})
	}
}

func scheduledShift(id uuid.UUID, start, end time.Time) model.Shift {
	return model.Shift{ID: id, StartAt: &start, EndAt: &end}
}

func TestFirstOverlapping(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	shifts := []model.Shift{
		scheduledShift(a, at(8, 0), at(9, 0)),
		scheduledShift(b, at(10, 0), at(12, 0)),
		{ID: uuid.New()}, // unscheduled, never overlaps
	}

	t.Run("finds colliding shift", func(t *testing.T) {
		hit := FirstOverlapping(shifts, at(11, 0), at(13, 0), uuid.Nil)
		require.NotNil(t, hit)
		assert.Equal(t, b, hit.ID)
	})

	t.Run("no collision", func(t *testing.T) {
		assert.Nil(t, FirstOverlapping(shifts, at(13, 0), at(14, 0), uuid.Nil))
	})

	t.Run("excludes own id on update", func(t *testing.T) {
		// Re-checking b's own interval against the set must skip b.
		assert.Nil(t, FirstOverlapping(shifts[1:], at(10, 0), at(12, 0), b))
	})

	t.Run("exclusion does not hide other collisions", func(t *testing.T) {
		hit := FirstOverlapping(shifts, at(8, 30), at(11, 0), b)
		require.NotNil(t, hit)
		assert.Equal(t, a, hit.ID)
	})
}
