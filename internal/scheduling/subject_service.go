package scheduling

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/navidh/exam-center-scheduling/internal/model"
)

// SubjectService manages the subjects shifts and exam dates refer to.
type SubjectService struct {
	subjects SubjectStore
}

// NewSubjectService constructs a SubjectService and panics if the
// store is nil.
func NewSubjectService(subjects SubjectStore) *SubjectService {
	if subjects == nil {
		panic("nil store passed to NewSubjectService")
	}
	return &SubjectService{subjects: subjects}
}

// Create validates and persists a subject.
func (s *SubjectService) Create(ctx context.Context, name, description string) (*model.Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationFailure([]string{"name is required"})
	}
	subject := &model.Subject{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
	}
	if err := s.subjects.Create(ctx, subject); err != nil {
		return nil, persistence("create subject", err)
	}
	return subject, nil
}

// List returns all subjects.
func (s *SubjectService) List(ctx context.Context) ([]model.Subject, error) {
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, persistence("list subjects", err)
	}
	return subjects, nil
}
