package secondary

import (
	"context"

	"github.com/example/sacis/internal/models"
)

// LogRepository defines the secondary port for the audit log.
// Entries are append-only: there is no update or delete.
type LogRepository interface {
	// Append inserts one entry and returns its ID. createdBy may be nil.
	Append(ctx context.Context, eventType, details string, createdBy *int64) (int64, error)

	// List retrieves up to filters.Limit entries, most recent first.
	List(ctx context.Context, filters LogFilters) ([]*models.LogEntry, error)
}

// LogFilters contains filter options for querying the audit log.
type LogFilters struct {
	// EventTypePrefix keeps entries whose event type starts with it,
	// e.g. "satellite_" or "assignment_create".
	EventTypePrefix string

	// Limit caps the result. Zero means models.DefaultLogLimit and a
	// negative value means no cap.
	Limit int

	// AfterID, when positive, keeps only entries with a greater ID.
	AfterID int64
}
