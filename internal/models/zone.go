package models

// Zone represents a geographic coverage area.
// PolygonGeo holds a serialized geometry (WKT or GeoJSON) and is nil when unset.
type Zone struct {
	ID         int64
	Name       string
	PolygonGeo *string
	Priority   string
	Restricted bool
}

// Zone priority constants
const (
	ZonePriorityCritical = "CRITICAL"
	ZonePriorityHigh     = "HIGH"
	ZonePriorityMedium   = "MEDIUM"
	ZonePriorityLow      = "LOW"
)

// Zone create defaults
const (
	DefaultZonePriority   = ZonePriorityMedium
	DefaultZoneRestricted = false
)

// ZonePriorities lists every valid priority, highest first.
var ZonePriorities = []string{
	ZonePriorityCritical,
	ZonePriorityHigh,
	ZonePriorityMedium,
	ZonePriorityLow,
}
