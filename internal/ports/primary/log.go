package primary

import (
	"context"

	"github.com/example/sacis/internal/models"
)

// LogService defines the primary port for reading the audit log.
// Entries are written by the other services only.
type LogService interface {
	// ListLogs retrieves entries matching the given filters, most recent first.
	ListLogs(ctx context.Context, filters LogFilters) ([]*models.LogEntry, error)
}

// LogFilters contains filter options for querying the audit log.
type LogFilters struct {
	// EntityType restricts entries to one entity: "satellite", "zone" or
	// "assignment". Empty means all.
	EntityType string
	// Limit caps the result; zero means the default of 100 and
	// models.NoLogLimit means no cap.
	Limit int
	// AfterID, when positive, keeps only entries with a greater ID.
	AfterID int64
}
