package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/sacis/internal/db"
	"github.com/example/sacis/internal/models"
	"github.com/example/sacis/internal/ports/secondary"
)

// LogRepository implements secondary.LogRepository.
type LogRepository struct {
	conn *db.Connector
}

// NewLogRepository creates a new audit log repository.
func NewLogRepository(conn *db.Connector) *LogRepository {
	return &LogRepository{conn: conn}
}

// Append inserts one audit entry.
func (r *LogRepository) Append(ctx context.Context, eventType, details string, createdBy *int64) (int64, error) {
	var id int64
	err := r.conn.Do(ctx, "log.append", func(ctx context.Context, c *db.Conn) error {
		var err error
		id, err = c.InsertReturningID(ctx,
			"INSERT INTO logs (event_type, details, created_by) VALUES (?, ?, ?)",
			eventType,
			details,
			nullInt64(createdBy),
		)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to append log entry: %w", err)
	}
	return id, nil
}

// List retrieves audit entries, most recent first. Entries created within
// the same clock tick are ordered by ID.
func (r *LogRepository) List(ctx context.Context, filters secondary.LogFilters) ([]*models.LogEntry, error) {
	query := "SELECT id, event_type, details, created_by, created_at FROM logs"
	var (
		where []string
		args  []any
	)

	if filters.EventTypePrefix != "" {
		// substr instead of LIKE: event types contain '_', a LIKE wildcard.
		where = append(where, "substr(event_type, 1, ?) = ?")
		args = append(args, len(filters.EventTypePrefix), filters.EventTypePrefix)
	}
	if filters.AfterID > 0 {
		where = append(where, "id > ?")
		args = append(args, filters.AfterID)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	query += " ORDER BY created_at DESC, id DESC"
	switch {
	case filters.Limit == 0:
		query += " LIMIT ?"
		args = append(args, models.DefaultLogLimit)
	case filters.Limit > 0:
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	var entries []*models.LogEntry
	err := r.conn.Do(ctx, "log.list", func(ctx context.Context, c *db.Conn) error {
		rows, err := c.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				createdBy sql.NullInt64
				createdAt sql.NullTime
			)

			entry := &models.LogEntry{}
			if err := rows.Scan(&entry.ID, &entry.EventType, &entry.Details, &createdBy, &createdAt); err != nil {
				return fmt.Errorf("failed to scan log entry: %w", err)
			}
			if createdBy.Valid {
				v := createdBy.Int64
				entry.CreatedBy = &v
			}
			entry.CreatedAt = createdAt.Time

			entries = append(entries, entry)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list log entries: %w", err)
	}
	return entries, nil
}

// Ensure LogRepository implements the interface.
var _ secondary.LogRepository = (*LogRepository)(nil)
