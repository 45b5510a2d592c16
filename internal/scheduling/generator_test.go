package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInitialShifts(t *testing.T) {
	centerID := uuid.New()
	base := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	t.Run("four disabled shifts with fixed capacity", func(t *testing.T) {
		shifts := GenerateInitialShifts(centerID, base, DefaultShiftDuration, time.Now())
		require.Len(t, shifts, GeneratedShiftCount)
		for _, s := range shifts {
			assert.Equal(t, centerID, s.CenterID)
			assert.Equal(t, GeneratedShiftCapacity, s.Capacity)
			assert.False(t, s.Enabled)
			assert.Nil(t, s.AdminID)
			require.NotNil(t, s.StartAt)
			require.NotNil(t, s.EndAt)
		}
	})

	t.Run("two hour stride measured start to start", func(t *testing.T) {
		shifts := GenerateInitialShifts(centerID, base, DefaultShiftDuration, time.Now())
		for i := 1; i < len(shifts); i++ {
			gap := shifts[i].StartAt.Sub(*shifts[i-1].StartAt)
			assert.Equal(t, GeneratedShiftStride, gap)
		}
		assert.Equal(t, base, *shifts[0].StartAt)
		assert.Equal(t, base.Add(6*time.Hour), *shifts[3].StartAt)
	})

	t.Run("zero base defaults to ten hundred UTC on the current day", func(t *testing.T) {
		now := time.Date(2026, 9, 14, 16, 45, 0, 0, time.UTC)
		shifts := GenerateInitialShifts(centerID, time.Time{}, 0, now)
		want := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
		assert.Equal(t, want, *shifts[0].StartAt)
		assert.Equal(t, want.Add(DefaultShiftDuration), *shifts[0].EndAt)
	})

	t.Run("stride is independent of duration", func(t *testing.T) {
		// A three hour duration keeps the two hour stride, so
		// consecutive generated shifts overlap.  This mirrors the
		// historical behaviour rather than fixing it.
		shifts := GenerateInitialShifts(centerID, base, 3*time.Hour, time.Now())
		for i := 1; i < len(shifts); i++ {
			assert.Equal(t, GeneratedShiftStride, shifts[i].StartAt.Sub(*shifts[i-1].StartAt))
		}
		assert.True(t, Overlaps(*shifts[0].StartAt, *shifts[0].EndAt, *shifts[1].StartAt, *shifts[1].EndAt))
	})

	t.Run("unique ids", func(t *testing.T) {
		shifts := GenerateInitialShifts(centerID, base, DefaultShiftDuration, time.Now())
		seen := make(map[uuid.UUID]bool)
		for _, s := range shifts {
			assert.False(t, seen[s.ID])
			seen[s.ID] = true
		}
	})
}
