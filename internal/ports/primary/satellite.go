package primary

import (
	"context"
	"encoding/json"
	"time"

	"github.com/example/sacis/internal/models"
)

// SatelliteService defines the primary port for satellite operations.
// Every mutation is performed first and audited second; the two steps are
// separate commits.
type SatelliteService interface {
	// CreateSatellite creates a satellite, applying defaults for omitted fields.
	CreateSatellite(ctx context.Context, req CreateSatelliteRequest) (*CreateSatelliteResponse, error)

	// ListSatellites lists every satellite ordered by ID.
	ListSatellites(ctx context.Context) ([]*models.Satellite, error)

	// UpdateSatellite changes the fields set in req. An empty request is a no-op.
	UpdateSatellite(ctx context.Context, req UpdateSatelliteRequest) error

	// DeleteSatellite deletes a satellite. A missing ID is not an error.
	DeleteSatellite(ctx context.Context, satelliteID int64) error
}

// CreateSatelliteRequest contains parameters for creating a satellite.
type CreateSatelliteRequest struct {
	Name          string
	Status        string          // Optional: defaults to "operational"
	LastTelemetry *time.Time      // Optional
	OrbitParams   json.RawMessage // Optional: JSON document
	Available     *bool           // Optional: defaults to true
}

// CreateSatelliteResponse contains the result of creating a satellite.
type CreateSatelliteResponse struct {
	SatelliteID int64
	Satellite   *models.Satellite
}

// UpdateSatelliteRequest contains parameters for updating a satellite.
// Nil fields are left unchanged.
type UpdateSatelliteRequest struct {
	SatelliteID   int64
	Name          *string
	Status        *string
	LastTelemetry *time.Time       // zero time clears
	OrbitParams   *json.RawMessage // empty clears
	Available     *bool
}
