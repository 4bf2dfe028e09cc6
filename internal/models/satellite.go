package models

import (
	"encoding/json"
	"time"
)

// Satellite represents a spacecraft that can be assigned to cover zones.
// Status is an open set; the constants below are the values the console uses.
type Satellite struct {
	ID            int64
	Name          string
	Status        string
	LastTelemetry *time.Time
	OrbitParams   json.RawMessage // nil when no orbit parameters are recorded
	Available     bool
}

// Satellite status constants
const (
	SatelliteStatusOperational = "operational"
	SatelliteStatusDegraded    = "degraded"
	SatelliteStatusMaintenance = "maintenance"
	SatelliteStatusOffline     = "offline"
)

// Satellite create defaults
const (
	DefaultSatelliteStatus    = SatelliteStatusOperational
	DefaultSatelliteAvailable = true
)

// HasOrbitParams reports whether orbit parameters are recorded.
func (s *Satellite) HasOrbitParams() bool {
	return len(s.OrbitParams) > 0 && string(s.OrbitParams) != "null"
}
