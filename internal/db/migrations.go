package db

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(ctx context.Context, tx *sql.Tx, d Dialect) error
}

// migrations is the list of all migrations in order. Version 1 is the
// fresh-install schema; later versions upgrade stores created before them.
// Append new migrations here and keep SchemaSQL in sync.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_base_schema",
		Up:      migrationV1,
	},
}

// LatestVersion is the schema version a fresh install ends at.
func LatestVersion() int {
	return migrations[len(migrations)-1].Version
}

// InitSchema brings the store up to the latest schema version. It is safe
// to call on every start.
func (c *Connector) InitSchema(ctx context.Context) error {
	return c.Do(ctx, "schema.init", func(ctx context.Context, conn *Conn) error {
		if _, err := conn.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`); err != nil {
			return fmt.Errorf("failed to create schema_version table: %w", err)
		}

		current, err := schemaVersion(ctx, conn)
		if err != nil {
			return err
		}

		for _, m := range migrations {
			if m.Version <= current {
				continue
			}
			if err := c.apply(ctx, conn, m); err != nil {
				return err
			}
		}
		return nil
	})
}

// SchemaVersion returns the highest applied migration version.
func (c *Connector) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	err := c.Do(ctx, "schema.version", func(ctx context.Context, conn *Conn) error {
		v, err := schemaVersion(ctx, conn)
		version = v
		return err
	})
	return version, err
}

func schemaVersion(ctx context.Context, conn *Conn) (int, error) {
	rows, err := conn.QueryContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
	if err != nil {
		return 0, fmt.Errorf("failed to get current schema version: %w", err)
	}
	defer rows.Close()

	var version int
	if rows.Next() {
		if err := rows.Scan(&version); err != nil {
			return 0, fmt.Errorf("failed to scan schema version: %w", err)
		}
	}
	return version, rows.Err()
}

func (c *Connector) apply(ctx context.Context, conn *Conn, m Migration) error {
	c.logger.Info("running migration", zap.Int("version", m.Version), zap.String("name", m.Name))

	tx, err := conn.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for migration %d: %w", m.Version, err)
	}

	if err := m.Up(ctx, tx, c.dialect); err != nil {
		tx.Rollback()
		return fmt.Errorf("migration %d failed: %w", m.Version, err)
	}

	if _, err := tx.ExecContext(ctx, c.dialect.Rebind("INSERT INTO schema_version (version) VALUES (?)"), m.Version); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}
	return nil
}

// migrationV1 creates every table.
func migrationV1(ctx context.Context, tx *sql.Tx, d Dialect) error {
	_, err := tx.ExecContext(ctx, d.SchemaSQL())
	return err
}
