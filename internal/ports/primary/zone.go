package primary

import (
	"context"

	"github.com/example/sacis/internal/models"
)

// ZoneService defines the primary port for zone operations.
type ZoneService interface {
	// CreateZone creates a zone, applying defaults for omitted fields.
	CreateZone(ctx context.Context, req CreateZoneRequest) (*CreateZoneResponse, error)

	// ListZones lists every zone ordered by ID.
	ListZones(ctx context.Context) ([]*models.Zone, error)

	// UpdateZone changes the fields set in req. An empty request is a no-op.
	UpdateZone(ctx context.Context, req UpdateZoneRequest) error

	// DeleteZone deletes a zone. A missing ID is not an error.
	DeleteZone(ctx context.Context, zoneID int64) error
}

// CreateZoneRequest contains parameters for creating a zone.
type CreateZoneRequest struct {
	Name       string
	PolygonGeo *string // Optional: serialized geometry
	Priority   string  // Optional: defaults to "MEDIUM"
	Restricted *bool   // Optional: defaults to false
}

// CreateZoneResponse contains the result of creating a zone.
type CreateZoneResponse struct {
	ZoneID int64
	Zone   *models.Zone
}

// UpdateZoneRequest contains parameters for updating a zone.
type UpdateZoneRequest struct {
	ZoneID     int64
	Name       *string
	PolygonGeo *string // empty string clears
	Priority   *string
	Restricted *bool
}
