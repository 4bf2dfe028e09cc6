// Package sqlstore contains SQL implementations of the repository interfaces.
// Every operation acquires its own connection through db.Connector and
// issues exactly one statement.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/example/sacis/internal/db"
	"github.com/example/sacis/internal/models"
	"github.com/example/sacis/internal/ports/secondary"
)

// SatelliteRepository implements secondary.SatelliteRepository.
type SatelliteRepository struct {
	conn *db.Connector
}

// NewSatelliteRepository creates a new satellite repository.
func NewSatelliteRepository(conn *db.Connector) *SatelliteRepository {
	return &SatelliteRepository{conn: conn}
}

// Create persists a new satellite.
func (r *SatelliteRepository) Create(ctx context.Context, sat *models.Satellite) (int64, error) {
	var id int64
	err := r.conn.Do(ctx, "satellite.create", func(ctx context.Context, c *db.Conn) error {
		var err error
		id, err = c.InsertReturningID(ctx,
			"INSERT INTO satellites (name, status, last_telemetry, orbit_params, available) VALUES (?, ?, ?, ?, ?)",
			sat.Name,
			sat.Status,
			nullTime(sat.LastTelemetry),
			nullJSON(sat.OrbitParams),
			sat.Available,
		)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create satellite: %w", err)
	}
	return id, nil
}

// List retrieves all satellites ordered by ID.
func (r *SatelliteRepository) List(ctx context.Context) ([]*models.Satellite, error) {
	var satellites []*models.Satellite
	err := r.conn.Do(ctx, "satellite.list", func(ctx context.Context, c *db.Conn) error {
		rows, err := c.QueryContext(ctx,
			"SELECT id, name, status, last_telemetry, orbit_params, available FROM satellites ORDER BY id ASC",
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				lastTelemetry sql.NullTime
				orbitParams   sql.NullString
			)

			sat := &models.Satellite{}
			if err := rows.Scan(&sat.ID, &sat.Name, &sat.Status, &lastTelemetry, &orbitParams, &sat.Available); err != nil {
				return fmt.Errorf("failed to scan satellite: %w", err)
			}
			if lastTelemetry.Valid {
				t := lastTelemetry.Time
				sat.LastTelemetry = &t
			}
			if orbitParams.Valid {
				sat.OrbitParams = json.RawMessage(orbitParams.String)
			}

			satellites = append(satellites, sat)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list satellites: %w", err)
	}
	return satellites, nil
}

// Update applies a partial update to a satellite.
func (r *SatelliteRepository) Update(ctx context.Context, id int64, patch secondary.SatellitePatch) error {
	set := &setClause{}
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Status != nil {
		set.add("status", *patch.Status)
	}
	if patch.LastTelemetry != nil {
		set.add("last_telemetry", nullTime(patch.LastTelemetry))
	}
	if patch.OrbitParams != nil {
		set.add("orbit_params", nullJSON(*patch.OrbitParams))
	}
	if patch.Available != nil {
		set.add("available", *patch.Available)
	}
	if set.empty() {
		return nil
	}

	err := r.conn.Do(ctx, "satellite.update", func(ctx context.Context, c *db.Conn) error {
		_, err := c.ExecContext(ctx, set.statement("satellites"), set.args(id)...)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to update satellite: %w", err)
	}
	return nil
}

// Delete removes a satellite.
func (r *SatelliteRepository) Delete(ctx context.Context, id int64) error {
	err := r.conn.Do(ctx, "satellite.delete", func(ctx context.Context, c *db.Conn) error {
		_, err := c.ExecContext(ctx, "DELETE FROM satellites WHERE id = ?", id)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to delete satellite: %w", err)
	}
	return nil
}

// Ensure SatelliteRepository implements the interface.
var _ secondary.SatelliteRepository = (*SatelliteRepository)(nil)
