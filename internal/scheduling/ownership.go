package scheduling

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/navidh/exam-center-scheduling/internal/model"
)

// OwnershipRegistry answers the two read-only questions the core needs
// about identity data: does a user hold the center-admin role, and do
// they already own a center.  Both are evaluated at validation time
// against the current store state; nothing is cached.
type OwnershipRegistry struct {
	users   UserStore
	centers CenterStore
}

// NewOwnershipRegistry constructs an OwnershipRegistry and panics if a
// dependency is nil.
func NewOwnershipRegistry(users UserStore, centers CenterStore) *OwnershipRegistry {
	if users == nil || centers == nil {
		panic("nil store passed to NewOwnershipRegistry")
	}
	return &OwnershipRegistry{users: users, centers: centers}
}

// IsCenterAdmin reports whether the user exists and holds the
// center-admin role.  A missing user yields ErrUserNotFound.
func (r *OwnershipRegistry) IsCenterAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	u, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	switch u.Role {
	case model.RoleCenterAdmin:
		return true, nil
	case model.RoleSystemAdmin:
		return false, nil
	}
	panic(fmt.Sprintf("unreachable role %q for user %s", u.Role, userID))
}

// OwnedCenter returns the center the user administers, or nil when
// they own none.
func (r *OwnershipRegistry) OwnedCenter(ctx context.Context, userID uuid.UUID) (*model.Center, error) {
	c, err := r.centers.GetByOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrCenterNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

// validateOwner applies the acceptance rule for an ownerId field: the
// user must hold the center-admin role and must not already administer
// a different center.  currentCenterID is the center being updated, or
// the zero UUID at creation; owning that same center is not a
// conflict.
func (r *OwnershipRegistry) validateOwner(ctx context.Context, ownerID, currentCenterID uuid.UUID) error {
	isAdmin, err := r.IsCenterAdmin(ctx, ownerID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return &NotFoundError{Entity: "admin", ID: ownerID.String()}
		}
		return persistence("resolve owner role", err)
	}
	if !isAdmin {
		return validationFailure([]string{"owner does not hold the center admin role"})
	}
	owned, err := r.OwnedCenter(ctx, ownerID)
	if err != nil {
		return persistence("resolve owned center", err)
	}
	if owned != nil && owned.ID != currentCenterID {
		return &ConflictError{Reason: "user already administers another center"}
	}
	return nil
}
