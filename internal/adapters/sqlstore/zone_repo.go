package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/sacis/internal/db"
	"github.com/example/sacis/internal/models"
	"github.com/example/sacis/internal/ports/secondary"
)

// ZoneRepository implements secondary.ZoneRepository.
type ZoneRepository struct {
	conn *db.Connector
}

// NewZoneRepository creates a new zone repository.
func NewZoneRepository(conn *db.Connector) *ZoneRepository {
	return &ZoneRepository{conn: conn}
}

// Create persists a new zone.
func (r *ZoneRepository) Create(ctx context.Context, zone *models.Zone) (int64, error) {
	var id int64
	err := r.conn.Do(ctx, "zone.create", func(ctx context.Context, c *db.Conn) error {
		var err error
		id, err = c.InsertReturningID(ctx,
			"INSERT INTO zones (name, polygon_geo, priority, restricted) VALUES (?, ?, ?, ?)",
			zone.Name,
			nullString(zone.PolygonGeo),
			zone.Priority,
			zone.Restricted,
		)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create zone: %w", err)
	}
	return id, nil
}

// List retrieves all zones ordered by ID.
func (r *ZoneRepository) List(ctx context.Context) ([]*models.Zone, error) {
	var zones []*models.Zone
	err := r.conn.Do(ctx, "zone.list", func(ctx context.Context, c *db.Conn) error {
		rows, err := c.QueryContext(ctx,
			"SELECT id, name, polygon_geo, priority, restricted FROM zones ORDER BY id ASC",
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var polygon sql.NullString

			zone := &models.Zone{}
			if err := rows.Scan(&zone.ID, &zone.Name, &polygon, &zone.Priority, &zone.Restricted); err != nil {
				return fmt.Errorf("failed to scan zone: %w", err)
			}
			if polygon.Valid {
				p := polygon.String
				zone.PolygonGeo = &p
			}

			zones = append(zones, zone)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	return zones, nil
}

// Update applies a partial update to a zone.
func (r *ZoneRepository) Update(ctx context.Context, id int64, patch secondary.ZonePatch) error {
	set := &setClause{}
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.PolygonGeo != nil {
		set.add("polygon_geo", nullString(patch.PolygonGeo))
	}
	if patch.Priority != nil {
		set.add("priority", *patch.Priority)
	}
	if patch.Restricted != nil {
		set.add("restricted", *patch.Restricted)
	}
	if set.empty() {
		return nil
	}

	err := r.conn.Do(ctx, "zone.update", func(ctx context.Context, c *db.Conn) error {
		_, err := c.ExecContext(ctx, set.statement("zones"), set.args(id)...)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to update zone: %w", err)
	}
	return nil
}

// Delete removes a zone.
func (r *ZoneRepository) Delete(ctx context.Context, id int64) error {
	err := r.conn.Do(ctx, "zone.delete", func(ctx context.Context, c *db.Conn) error {
		_, err := c.ExecContext(ctx, "DELETE FROM zones WHERE id = ?", id)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete zone: %w", err)
	}
	return nil
}

// Ensure ZoneRepository implements the interface.
var _ secondary.ZoneRepository = (*ZoneRepository)(nil)
