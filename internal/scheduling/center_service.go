package scheduling

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/navidh/exam-center-scheduling/internal/model"
)

// CenterService manages the center lifecycle.  Creating a center also
// generates its initial batch of shifts; the store commits both
// together or not at all.
type CenterService struct {
	centers  CenterStore
	registry *OwnershipRegistry
	log      zerolog.Logger
}

// NewCenterService constructs a CenterService and panics if a
// dependency is nil.
func NewCenterService(centers CenterStore, registry *OwnershipRegistry, log zerolog.Logger) *CenterService {
	if centers == nil || registry == nil {
		panic("nil dependency passed to NewCenterService")
	}
	return &CenterService{centers: centers, registry: registry, log: log}
}

// CreateCenterRequest carries the validated input for creating a
// center.  ShiftBase and ShiftDuration override the generated-shift
// defaults when non-zero.
type CreateCenterRequest struct {
	Name          string
	Gender        string
	Zone          string
	Location      string
	Capacity      int
	OwnerID       *uuid.UUID
	ShiftBase     time.Time
	ShiftDuration time.Duration
}

// UpdateCenterRequest carries the validated input for updating a
// center.  All fields are replaced; partial updates are not supported.
type UpdateCenterRequest struct {
	ID       uuid.UUID
	Name     string
	Gender   string
	Zone     string
	Location string
	Capacity int
	Enabled  bool
	OwnerID  *uuid.UUID
}

// validateCenterFields checks the field-level rules shared by create
// and update.  It returns the parsed enums and the ordered list of
// validation messages.
func validateCenterFields(name, gender, zone, location string, capacity int) (model.Gender, model.Zone, []string) {
	var msgs []string
	if strings.TrimSpace(name) == "" {
		msgs = append(msgs, "name is required")
	}
	g, err := model.ParseGender(gender)
	if err != nil {
		msgs = append(msgs, fmt.Sprintf("gender must be one of MALE, FEMALE, BOTH, got %q", gender))
	}
	z, err := model.ParseZone(zone)
	if err != nil {
		msgs = append(msgs, fmt.Sprintf("zone %q is not a known region", zone))
	}
	if location != "" {
		if u, err := url.Parse(location); err != nil || (u.Scheme != "" && u.Host == "") {
			msgs = append(msgs, "location must be a valid URL or plain address")
		}
	}
	if capacity <= 0 {
		msgs = append(msgs, "capacity must be greater than zero")
	}
	return g, z, msgs
}

// Create validates the request, applies the ownership acceptance rule
// and persists the center together with its generated shifts.
func (s *CenterService) Create(ctx context.Context, req CreateCenterRequest) (*model.Center, error) {
	gender, zone, msgs := validateCenterFields(req.Name, req.Gender, req.Zone, req.Location, req.Capacity)
	if len(msgs) > 0 {
		return nil, validationFailure(msgs)
	}
	if req.OwnerID != nil {
		if err := s.registry.validateOwner(ctx, *req.OwnerID, uuid.Nil); err != nil {
			return nil, err
		}
	}

	center := &model.Center{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Gender:   gender,
		Zone:     zone,
		Location: req.Location,
		Capacity: req.Capacity,
		Enabled:  true,
		OwnerID:  req.OwnerID,
	}
	shifts := GenerateInitialShifts(center.ID, req.ShiftBase, req.ShiftDuration, time.Now())

	if err := s.centers.CreateWithShifts(ctx, center, shifts); err != nil {
		if errors.Is(err, ErrDuplicateOwner) {
			return nil, &ConflictError{Reason: "user already administers another center"}
		}
		return nil, persistence("create center", err)
	}
	s.log.Info().Str("center_id", center.ID.String()).Int("shifts", len(shifts)).Msg("center created")
	return center, nil
}

// Update validates the request and replaces the stored center.  The
// ownership acceptance rule runs again against current identity data,
// so a user who gained a center elsewhere in the meantime is rejected.
func (s *CenterService) Update(ctx context.Context, req UpdateCenterRequest) (*model.Center, error) {
	gender, zone, msgs := validateCenterFields(req.Name, req.Gender, req.Zone, req.Location, req.Capacity)
	if len(msgs) > 0 {
		return nil, validationFailure(msgs)
	}
	center, err := s.centers.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, ErrCenterNotFound) {
			return nil, &NotFoundError{Entity: "center", ID: req.ID.String()}
		}
		return nil, persistence("load center", err)
	}
	if req.OwnerID != nil {
		if err := s.registry.validateOwner(ctx, *req.OwnerID, center.ID); err != nil {
			return nil, err
		}
	}

	center.Name = strings.TrimSpace(req.Name)
	center.Gender = gender
	center.Zone = zone
	center.Location = req.Location
	center.Capacity = req.Capacity
	center.Enabled = req.Enabled
	center.OwnerID = req.OwnerID

	if err := s.centers.Update(ctx, center); err != nil {
		if errors.Is(err, ErrDuplicateOwner) {
			return nil, &ConflictError{Reason: "user already administers another center"}
		}
		return nil, persistence("update center", err)
	}
	return center, nil
}

// Delete removes a center; its shifts go with it via the cascade.
func (s *CenterService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.centers.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrCenterNotFound) {
			return &NotFoundError{Entity: "center", ID: id.String()}
		}
		return persistence("delete center", err)
	}
	s.log.Info().Str("center_id", id.String()).Msg("center deleted")
	return nil
}

// Get returns a center by id.
func (s *CenterService) Get(ctx context.Context, id uuid.UUID) (*model.Center, error) {
	center, err := s.centers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCenterNotFound) {
			return nil, &NotFoundError{Entity: "center", ID: id.String()}
		}
		return nil, persistence("load center", err)
	}
	return center, nil
}

// List returns all centers.
func (s *CenterService) List(ctx context.Context) ([]model.Center, error) {
	centers, err := s.centers.List(ctx)
	if err != nil {
		return nil, persistence("list centers", err)
	}
	return centers, nil
}
