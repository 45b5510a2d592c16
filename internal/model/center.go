package model

import (
	"time"

	"github.com/google/uuid"
)

// Center represents a physical exam venue with fixed seating capacity.
// A center may own multiple shifts and is administered by at most one
// user.  This struct corresponds to a row in the `centers` table.
//
// Fields:
//  ID        – primary key identifier (UUID).
//  Name      – display name of the center.
//  Gender    – gender restriction for candidates (MALE, FEMALE, BOTH).
//  Zone      – region the center is located in (closed enumeration).
//  Location  – free-form location reference (address or map link).
//  Capacity  – total seating capacity; must be greater than zero.
//  Enabled   – whether the center currently accepts scheduling.
//  OwnerID   – user ID of the administering center admin (nil when
//              unassigned; unique across centers when set).
//  CreatedAt – timestamp when the center was created.
//  UpdatedAt – timestamp of last update.
type Center struct {
	ID        uuid.UUID  // centers.id
	Name      string     // centers.name
	Gender    Gender     // centers.gender
	Zone      Zone       // centers.zone
	Location  string     // centers.location
	Capacity  int        // centers.capacity
	Enabled   bool       // centers.enabled
	OwnerID   *uuid.UUID // centers.owner_id (nullable, unique)
	CreatedAt time.Time  // centers.created_at
	UpdatedAt time.Time  // centers.updated_at
}
