package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/navidh/exam-center-scheduling/internal/model"
)

func newExamDateService(t *testing.T) (*ExamDateService, *mockExamDateStore, *mockSubjectStore) {
	t.Helper()
	examDates := &mockExamDateStore{}
	subjects := &mockSubjectStore{}
	return NewExamDateService(examDates, subjects, zerolog.Nop()), examDates, subjects
}

func TestExamDateCreateWindowValidation(t *testing.T) {
	svc, _, _ := newExamDateService(t)
	future := time.Now().UTC().Add(48 * time.Hour)

	t.Run("missing times", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateExamDateRequest{Date: future})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"opening and closing times are required"}, ve.Messages)
	})

	t.Run("opening after closing", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateExamDateRequest{
			Date:      future,
			OpeningAt: future.Add(2 * time.Hour),
			ClosingAt: future,
		})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Messages, "opening time must be before closing time")
	})

	t.Run("window in the past", func(t *testing.T) {
		past := time.Now().UTC().Add(-48 * time.Hour)
		_, err := svc.Create(context.Background(), CreateExamDateRequest{
			Date:      future,
			OpeningAt: past,
			ClosingAt: past.Add(time.Hour),
		})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Messages, "opening and closing times must be in the future")
	})
}

func TestExamDateCreateUnknownSeedSubject(t *testing.T) {
	svc, examDates, subjects := newExamDateService(t)
	future := time.Now().UTC().Add(48 * time.Hour)
	missing := uuid.New()
	subjects.On("GetByID", mock.Anything, missing).Return(nil, ErrSubjectNotFound)

	_, err := svc.Create(context.Background(), CreateExamDateRequest{
		Date:           future,
		OpeningAt:      future.Add(-24 * time.Hour),
		ClosingAt:      future.Add(-12 * time.Hour),
		SeedSubjectIDs: []uuid.UUID{missing},
	})

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "subject", nf.Entity)
	examDates.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestExamDateCreatePersistsSeedAtomically(t *testing.T) {
	svc, examDates, subjects := newExamDateService(t)
	future := time.Now().UTC().Add(48 * time.Hour)
	seed := []uuid.UUID{uuid.New(), uuid.New()}
	for _, sid := range seed {
		subjects.On("GetByID", mock.Anything, sid).Return(&model.Subject{ID: sid}, nil)
	}
	examDates.On("Create", mock.Anything, mock.Anything, seed).Return(nil)

	d, err := svc.Create(context.Background(), CreateExamDateRequest{
		Date:           future,
		OpeningAt:      future.Add(-24 * time.Hour),
		ClosingAt:      future.Add(-12 * time.Hour),
		SeedSubjectIDs: seed,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, d.ID)
	assert.True(t, d.OpeningAt.Before(d.ClosingAt))
	examDates.AssertExpectations(t)
}

func TestExamDateCreateDedupesSeed(t *testing.T) {
	// A repeated seed subject must collapse to one row: seed rows have
	// a NULL center_id, which the unique key cannot police.
	svc, examDates, subjects := newExamDateService(t)
	future := time.Now().UTC().Add(48 * time.Hour)
	a, b := uuid.New(), uuid.New()
	subjects.On("GetByID", mock.Anything, a).Return(&model.Subject{ID: a}, nil)
	subjects.On("GetByID", mock.Anything, b).Return(&model.Subject{ID: b}, nil)
	examDates.On("Create", mock.Anything, mock.Anything, []uuid.UUID{a, b}).Return(nil)

	_, err := svc.Create(context.Background(), CreateExamDateRequest{
		Date:           future,
		OpeningAt:      future.Add(-24 * time.Hour),
		ClosingAt:      future.Add(-12 * time.Hour),
		SeedSubjectIDs: []uuid.UUID{a, b, a, a, b},
	})

	require.NoError(t, err)
	examDates.AssertExpectations(t)
	subjects.AssertNumberOfCalls(t, "GetByID", 2)
}

func TestExamDateGetUnknown(t *testing.T) {
	svc, examDates, _ := newExamDateService(t)
	id := uuid.New()
	examDates.On("GetByID", mock.Anything, id).Return(nil, ErrExamDateNotFound)

	_, err := svc.Get(context.Background(), id)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "exam date", nf.Entity)
}
