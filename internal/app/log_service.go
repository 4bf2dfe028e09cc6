package app

import (
	"context"
	"fmt"

	"github.com/example/sacis/internal/models"
	"github.com/example/sacis/internal/ports/primary"
	"github.com/example/sacis/internal/ports/secondary"
)

// auditedEntities maps the entity filter to the event type prefix it selects.
var auditedEntities = map[string]string{
	"satellite":  "satellite_",
	"zone":       "zone_",
	"assignment": "assignment_",
}

// LogServiceImpl implements the LogService interface.
type LogServiceImpl struct {
	logRepo secondary.LogRepository
}

// NewLogService creates a new LogService with injected dependencies.
func NewLogService(logRepo secondary.LogRepository) *LogServiceImpl {
	return &LogServiceImpl{
		logRepo: logRepo,
	}
}

// ListLogs retrieves entries matching the given filters, most recent first.
func (s *LogServiceImpl) ListLogs(ctx context.Context, filters primary.LogFilters) ([]*models.LogEntry, error) {
	var prefix string
	if filters.EntityType != "" {
		p, ok := auditedEntities[filters.EntityType]
		if !ok {
			return nil, rejected(fmt.Sprintf("unknown entity type %q (must be satellite, zone or assignment)", filters.EntityType))
		}
		prefix = p
	}

	return s.logRepo.List(ctx, secondary.LogFilters{
		EventTypePrefix: prefix,
		Limit:           filters.Limit,
		AfterID:         filters.AfterID,
	})
}

// Ensure LogServiceImpl implements the interface
var _ primary.LogService = (*LogServiceImpl)(nil)
