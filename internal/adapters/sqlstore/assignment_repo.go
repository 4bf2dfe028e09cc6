package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/sacis/internal/db"
	"github.com/example/sacis/internal/models"
	"github.com/example/sacis/internal/ports/secondary"
)

// AssignmentRepository implements secondary.AssignmentRepository.
type AssignmentRepository struct {
	conn *db.Connector
}

// NewAssignmentRepository creates a new assignment repository.
func NewAssignmentRepository(conn *db.Connector) *AssignmentRepository {
	return &AssignmentRepository{conn: conn}
}

// Create persists a new assignment. Status and assigned_at take the
// store defaults.
func (r *AssignmentRepository) Create(ctx context.Context, a *models.Assignment) (int64, error) {
	var id int64
	err := r.conn.Do(ctx, "assignment.create", func(ctx context.Context, c *db.Conn) error {
		var err error
		id, err = c.InsertReturningID(ctx,
			"INSERT INTO assignments (satellite_id, zone_id, frequency_minutes, assigned_by) VALUES (?, ?, ?, ?)",
			a.SatelliteID,
			a.ZoneID,
			a.FrequencyMinutes,
			nullInt64(a.AssignedBy),
		)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create assignment: %w", err)
	}
	return id, nil
}

// List retrieves all assignments ordered by ID.
func (r *AssignmentRepository) List(ctx context.Context) ([]*models.Assignment, error) {
	var assignments []*models.Assignment
	err := r.conn.Do(ctx, "assignment.list", func(ctx context.Context, c *db.Conn) error {
		rows, err := c.QueryContext(ctx,
			"SELECT id, satellite_id, zone_id, frequency_minutes, status, assigned_by, assigned_at FROM assignments ORDER BY id ASC",
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				assignedBy sql.NullInt64
				assignedAt sql.NullTime
			)

			a := &models.Assignment{}
			if err := rows.Scan(&a.ID, &a.SatelliteID, &a.ZoneID, &a.FrequencyMinutes, &a.Status, &assignedBy, &assignedAt); err != nil {
				return fmt.Errorf("failed to scan assignment: %w", err)
			}
			if assignedBy.Valid {
				v := assignedBy.Int64
				a.AssignedBy = &v
			}
			a.AssignedAt = assignedAt.Time

			assignments = append(assignments, a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// Update applies a partial update to an assignment.
func (r *AssignmentRepository) Update(ctx context.Context, id int64, patch secondary.AssignmentPatch) error {
	set := &setClause{}
	if patch.SatelliteID != nil {
		set.add("satellite_id", *patch.SatelliteID)
	}
	if patch.ZoneID != nil {
		set.add("zone_id", *patch.ZoneID)
	}
	if patch.FrequencyMinutes != nil {
		set.add("frequency_minutes", *patch.FrequencyMinutes)
	}
	if patch.Status != nil {
		set.add("status", *patch.Status)
	}
	if patch.AssignedBy != nil {
		set.add("assigned_by", nullInt64(patch.AssignedBy))
	}
	if set.empty() {
		return nil
	}

	err := r.conn.Do(ctx, "assignment.update", func(ctx context.Context, c *db.Conn) error {
		_, err := c.ExecContext(ctx, set.statement("assignments"), set.args(id)...)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	return nil
}

// Delete removes an assignment.
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	err := r.conn.Do(ctx, "assignment.delete", func(ctx context.Context, c *db.Conn) error {
		_, err := c.ExecContext(ctx, "DELETE FROM assignments WHERE id = ?", id)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

// Ensure AssignmentRepository implements the interface.
var _ secondary.AssignmentRepository = (*AssignmentRepository)(nil)
