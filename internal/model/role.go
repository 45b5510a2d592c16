package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of roles a user can hold.  Role checks must
// match exhaustively against these constants; free-form string
// comparison is deliberately not supported.
type Role string

const (
	RoleCenterAdmin Role = "CENTER_ADMIN" // administers exactly one center
	RoleSystemAdmin Role = "SYSTEM_ADMIN" // manages exam dates, subjects and centers
)

// ParseRole converts a raw string into a Role.  Unknown values are
// rejected rather than passed through.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCenterAdmin:
		return RoleCenterAdmin, nil
	case RoleSystemAdmin:
		return RoleSystemAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Valid reports whether the role is one of the defined constants.
func (r Role) Valid() bool {
	switch r {
	case RoleCenterAdmin, RoleSystemAdmin:
		return true
	}
	return false
}

// User is the minimal identity record the scheduling core consumes.
// Accounts are provisioned by the identity subsystem; this service
// only reads them to answer role and ownership questions.
type User struct {
	ID        uuid.UUID // users.id
	Phone     string    // users.phone
	FullName  string    // users.full_name
	Role      Role      // users.role
	CreatedAt time.Time // users.created_at
}
