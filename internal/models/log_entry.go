package models

import "time"

// LogEntry is an append-only audit record of an operator action.
type LogEntry struct {
	ID        int64
	EventType string
	Details   string
	CreatedBy *int64
	CreatedAt time.Time
}

// Audit event types written by the services.
const (
	EventSatelliteCreate  = "satellite_create"
	EventSatelliteUpdate  = "satellite_update"
	EventSatelliteDelete  = "satellite_delete"
	EventZoneCreate       = "zone_create"
	EventZoneUpdate       = "zone_update"
	EventZoneDelete       = "zone_delete"
	EventAssignmentCreate = "assignment_create"
	EventAssignmentUpdate = "assignment_update"
	EventAssignmentDelete = "assignment_delete"
)

// DefaultLogLimit is the number of entries shown when no limit is given.
const DefaultLogLimit = 100

// NoLogLimit as a limit requests every matching entry.
const NoLogLimit = -1
