// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"encoding/json"
	"time"

	"github.com/example/sacis/internal/models"
)

// SatelliteRepository defines the secondary port for satellite persistence.
type SatelliteRepository interface {
	// Create persists a new satellite and returns the store-assigned ID.
	Create(ctx context.Context, satellite *models.Satellite) (int64, error)

	// List retrieves every satellite ordered by ID.
	List(ctx context.Context) ([]*models.Satellite, error)

	// Update applies the set fields of patch. An empty patch is a no-op.
	// A missing ID is not an error.
	Update(ctx context.Context, id int64, patch SatellitePatch) error

	// Delete removes a satellite. A missing ID is not an error.
	Delete(ctx context.Context, id int64) error
}

// SatellitePatch names the satellite columns an update may change.
// A nil field is left untouched.
type SatellitePatch struct {
	Name          *string
	Status        *string
	LastTelemetry *time.Time       // zero time clears the column
	OrbitParams   *json.RawMessage // empty or "null" clears the column
	Available     *bool
}

// IsEmpty reports whether the patch sets no field.
func (p SatellitePatch) IsEmpty() bool {
	return p.Name == nil && p.Status == nil && p.LastTelemetry == nil &&
		p.OrbitParams == nil && p.Available == nil
}

// ZoneRepository defines the secondary port for zone persistence.
type ZoneRepository interface {
	// Create persists a new zone and returns the store-assigned ID.
	Create(ctx context.Context, zone *models.Zone) (int64, error)

	// List retrieves every zone ordered by ID.
	List(ctx context.Context) ([]*models.Zone, error)

	// Update applies the set fields of patch. An empty patch is a no-op.
	Update(ctx context.Context, id int64, patch ZonePatch) error

	// Delete removes a zone. A missing ID is not an error.
	Delete(ctx context.Context, id int64) error
}

// ZonePatch names the zone columns an update may change.
type ZonePatch struct {
	Name       *string
	PolygonGeo *string // empty string clears the column
	Priority   *string
	Restricted *bool
}

// IsEmpty reports whether the patch sets no field.
func (p ZonePatch) IsEmpty() bool {
	return p.Name == nil && p.PolygonGeo == nil && p.Priority == nil && p.Restricted == nil
}

// AssignmentRepository defines the secondary port for assignment persistence.
type AssignmentRepository interface {
	// Create persists a new assignment and returns the store-assigned ID.
	// Status and AssignedAt are left to the store defaults.
	Create(ctx context.Context, assignment *models.Assignment) (int64, error)

	// List retrieves every assignment ordered by ID.
	List(ctx context.Context) ([]*models.Assignment, error)

	// Update applies the set fields of patch. An empty patch is a no-op.
	Update(ctx context.Context, id int64, patch AssignmentPatch) error

	// Delete removes an assignment. A missing ID is not an error.
	Delete(ctx context.Context, id int64) error
}

// AssignmentPatch names the assignment columns an update may change.
type AssignmentPatch struct {
	SatelliteID      *int64
	ZoneID           *int64
	FrequencyMinutes *int
	Status           *string
	AssignedBy       *int64 // zero clears the column
}

// IsEmpty reports whether the patch sets no field.
func (p AssignmentPatch) IsEmpty() bool {
	return p.SatelliteID == nil && p.ZoneID == nil && p.FrequencyMinutes == nil &&
		p.Status == nil && p.AssignedBy == nil
}

// UserRepository defines the secondary port for operator accounts.
type UserRepository interface {
	// Create persists a new user and returns the store-assigned ID.
	Create(ctx context.Context, user *models.User) (int64, error)

	// GetByUsername retrieves a user by name, or nil if none exists.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByID retrieves a user by ID, or nil if none exists.
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
