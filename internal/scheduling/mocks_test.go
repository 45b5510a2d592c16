package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/navidh/exam-center-scheduling/internal/model"
	"github.com/navidh/exam-center-scheduling/internal/queue"
)

type mockCenterStore struct {
	mock.Mock
}

func (m *mockCenterStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Center, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Center), args.Error(1)
}

func (m *mockCenterStore) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*model.Center, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Center), args.Error(1)
}

func (m *mockCenterStore) CreateWithShifts(ctx context.Context, c *model.Center, shifts []model.Shift) error {
	return m.Called(ctx, c, shifts).Error(0)
}

func (m *mockCenterStore) Update(ctx context.Context, c *model.Center) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCenterStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCenterStore) List(ctx context.Context) ([]model.Center, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Center), args.Error(1)
}

type mockShiftStore struct {
	mock.Mock
}

func (m *mockShiftStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Shift, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Shift), args.Error(1)
}

func (m *mockShiftStore) ListByCenter(ctx context.Context, centerID uuid.UUID) ([]model.Shift, error) {
	args := m.Called(ctx, centerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Shift), args.Error(1)
}

func (m *mockShiftStore) FindOverlapping(ctx context.Context, scope OverlapScope, start, end time.Time, excludeID uuid.UUID) ([]model.Shift, error) {
	args := m.Called(ctx, scope, start, end, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Shift), args.Error(1)
}

func (m *mockShiftStore) CreateWithSubjects(ctx context.Context, s *model.Shift, subjectIDs []uuid.UUID) error {
	return m.Called(ctx, s, subjectIDs).Error(0)
}

func (m *mockShiftStore) UpdateCapacity(ctx context.Context, id uuid.UUID, capacity int) error {
	return m.Called(ctx, id, capacity).Error(0)
}

func (m *mockShiftStore) BulkUpdateTimes(ctx context.Context, newStart time.Time, delta time.Duration) (int64, error) {
	args := m.Called(ctx, newStart, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockShiftStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockSubjectStore struct {
	mock.Mock
}

func (m *mockSubjectStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Subject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subject), args.Error(1)
}

func (m *mockSubjectStore) Create(ctx context.Context, s *model.Subject) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSubjectStore) List(ctx context.Context) ([]model.Subject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subject), args.Error(1)
}

type mockExamDateStore struct {
	mock.Mock
}

func (m *mockExamDateStore) GetByID(ctx context.Context, id uuid.UUID) (*model.ExamDate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExamDate), args.Error(1)
}

func (m *mockExamDateStore) Create(ctx context.Context, d *model.ExamDate, seedSubjectIDs []uuid.UUID) error {
	return m.Called(ctx, d, seedSubjectIDs).Error(0)
}

func (m *mockExamDateStore) List(ctx context.Context) ([]model.ExamDate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExamDate), args.Error(1)
}

type mockBookingStore struct {
	mock.Mock
}

func (m *mockBookingStore) ExistsForCenter(ctx context.Context, examDateID, centerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, examDateID, centerID)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingStore) SubjectIDsForExamDate(ctx context.Context, examDateID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, examDateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *mockBookingStore) CreateFanOut(ctx context.Context, examDateID, centerID uuid.UUID, subjectIDs []uuid.UUID) (int, error) {
	args := m.Called(ctx, examDateID, centerID, subjectIDs)
	return args.Int(0), args.Error(1)
}

func (m *mockBookingStore) ListForCenter(ctx context.Context, centerID uuid.UUID) ([]model.ExamDateSubject, error) {
	args := m.Called(ctx, centerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExamDateSubject), args.Error(1)
}

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishCenterBooked(ctx context.Context, ev queue.CenterBookedEvent) error {
	return m.Called(ctx, ev).Error(0)
}
