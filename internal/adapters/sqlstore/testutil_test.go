// Package sqlstore_test contains integration tests for the SQL repositories.
//
// Every test runs against a fresh SQLite file bootstrapped through
// Connector.InitSchema, so the schema under test is the one production
// uses. Do not hardcode CREATE TABLE statements here; use setupTestDB
// and the seed* helpers.
package sqlstore_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/sacis/internal/db"
)

// setupTestDB opens a file-backed store with the full schema.
// A file is used rather than ":memory:" because every operation acquires
// its own connection and each in-memory connection is a separate database.
func setupTestDB(t *testing.T) *db.Connector {
	t.Helper()

	conn, err := db.Open(db.Config{
		Driver:       "sqlite3",
		DSN:          filepath.Join(t.TempDir(), "sacis.db"),
		MaxOpenConns: 1,
		OpTimeout:    5 * time.Second,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() {
		conn.Close()
	})

	if err := conn.InitSchema(context.Background()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return conn
}

// exec runs a raw statement for seeding or inspection.
func exec(t *testing.T, conn *db.Connector, query string, args ...any) {
	t.Helper()
	err := conn.Do(context.Background(), "test.exec", func(ctx context.Context, c *db.Conn) error {
		_, err := c.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		t.Fatalf("exec %q failed: %v", query, err)
	}
}

// insert runs an INSERT and returns the new row ID.
func insert(t *testing.T, conn *db.Connector, query string, args ...any) int64 {
	t.Helper()
	var id int64
	err := conn.Do(context.Background(), "test.insert", func(ctx context.Context, c *db.Conn) error {
		var err error
		id, err = c.InsertReturningID(ctx, query, args...)
		return err
	})
	if err != nil {
		t.Fatalf("insert %q failed: %v", query, err)
	}
	return id
}

// seedUser inserts a test user and returns its ID.
func seedUser(t *testing.T, conn *db.Connector, username string) int64 {
	t.Helper()
	if username == "" {
		username = "operator"
	}
	return insert(t, conn, "INSERT INTO users (username) VALUES (?)", username)
}

// seedSatellite inserts a test satellite and returns its ID.
func seedSatellite(t *testing.T, conn *db.Connector, name string) int64 {
	t.Helper()
	if name == "" {
		name = "SAT-1"
	}
	return insert(t, conn, "INSERT INTO satellites (name) VALUES (?)", name)
}

// seedZone inserts a test zone and returns its ID.
func seedZone(t *testing.T, conn *db.Connector, name string) int64 {
	t.Helper()
	if name == "" {
		name = "Zone A"
	}
	return insert(t, conn, "INSERT INTO zones (name) VALUES (?)", name)
}

// seedAssignment inserts a pending assignment and returns its ID.
func seedAssignment(t *testing.T, conn *db.Connector, satelliteID, zoneID int64) int64 {
	t.Helper()
	return insert(t, conn,
		"INSERT INTO assignments (satellite_id, zone_id) VALUES (?, ?)", satelliteID, zoneID)
}

// brokenStore returns a connector whose store can never be reached.
func brokenStore(t *testing.T) *db.Connector {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "missing", "sacis.db") + "?mode=ro"
	conn, err := db.Open(db.Config{Driver: "sqlite3", DSN: dsn})
	if err != nil {
		t.Fatalf("failed to open broken store: %v", err)
	}
	t.Cleanup(func() {
		conn.Close()
	})
	return conn
}

func ptr[T any](v T) *T {
	return &v
}
