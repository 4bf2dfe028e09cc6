package models

import "time"

// Assignment links one satellite to one zone with a polling frequency.
// AssignedAt is set by the store at insert time.
type Assignment struct {
	ID               int64
	SatelliteID      int64
	ZoneID           int64
	FrequencyMinutes int
	Status           string
	AssignedBy       *int64
	AssignedAt       time.Time
}

// Assignment status constants
const (
	AssignmentStatusPending    = "pending"
	AssignmentStatusInProgress = "in_progress"
	AssignmentStatusCompleted  = "completed"
)

// DefaultFrequencyMinutes is the polling frequency used when none is given.
// The default status is applied by the store, not by callers.
const DefaultFrequencyMinutes = 60

// AssignmentStatuses lists every valid status in lifecycle order.
var AssignmentStatuses = []string{
	AssignmentStatusPending,
	AssignmentStatusInProgress,
	AssignmentStatusCompleted,
}
