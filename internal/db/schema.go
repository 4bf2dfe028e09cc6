package db

// SQLiteSchemaSQL is the complete schema for a fresh SQLite store.
//
// This is the single source of truth for the SQLite schema. Repository tests
// bootstrap through InitSchema, so a column referenced by repository code
// but missing here fails immediately with "no such column".
//
// Foreign keys from assignments to satellites and zones use the store's
// default action: deleting a satellite or zone that an assignment still
// references is rejected. References to users are cleared instead.
const SQLiteSchemaSQL = `
-- Users (operator accounts; no authentication is performed against them)
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL DEFAULT '',
	role TEXT NOT NULL DEFAULT 'operator',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Satellites
CREATE TABLE IF NOT EXISTS satellites (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'operational',
	last_telemetry DATETIME,
	orbit_params TEXT,
	available INTEGER NOT NULL DEFAULT 1
);

-- Zones (coverage areas)
CREATE TABLE IF NOT EXISTS zones (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	polygon_geo TEXT,
	priority TEXT NOT NULL CHECK(priority IN ('CRITICAL', 'HIGH', 'MEDIUM', 'LOW')) DEFAULT 'MEDIUM',
	restricted INTEGER NOT NULL DEFAULT 0
);

-- Assignments (satellite covers zone at a polling frequency)
CREATE TABLE IF NOT EXISTS assignments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	satellite_id INTEGER NOT NULL,
	zone_id INTEGER NOT NULL,
	frequency_minutes INTEGER NOT NULL DEFAULT 60,
	status TEXT NOT NULL CHECK(status IN ('pending', 'in_progress', 'completed')) DEFAULT 'pending',
	assigned_by INTEGER,
	assigned_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (satellite_id) REFERENCES satellites(id),
	FOREIGN KEY (zone_id) REFERENCES zones(id),
	FOREIGN KEY (assigned_by) REFERENCES users(id) ON DELETE SET NULL
);

-- Logs (append-only audit trail)
CREATE TABLE IF NOT EXISTS logs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	event_type TEXT NOT NULL,
	details TEXT NOT NULL DEFAULT '',
	created_by INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (created_by) REFERENCES users(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_assignments_satellite ON assignments(satellite_id);
CREATE INDEX IF NOT EXISTS idx_assignments_zone ON assignments(zone_id);
CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at);
`

// PostgresSchemaSQL is the PostgreSQL rendition of SQLiteSchemaSQL.
const PostgresSchemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL DEFAULT '',
	role TEXT NOT NULL DEFAULT 'operator',
	created_at TIMESTAMPTZ DEFAULT now()
);

CREATE TABLE IF NOT EXISTS satellites (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'operational',
	last_telemetry TIMESTAMPTZ,
	orbit_params TEXT,
	available BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS zones (
	id BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	polygon_geo TEXT,
	priority TEXT NOT NULL CHECK(priority IN ('CRITICAL', 'HIGH', 'MEDIUM', 'LOW')) DEFAULT 'MEDIUM',
	restricted BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS assignments (
	id BIGSERIAL PRIMARY KEY,
	satellite_id BIGINT NOT NULL REFERENCES satellites(id),
	zone_id BIGINT NOT NULL REFERENCES zones(id),
	frequency_minutes INTEGER NOT NULL DEFAULT 60,
	status TEXT NOT NULL CHECK(status IN ('pending', 'in_progress', 'completed')) DEFAULT 'pending',
	assigned_by BIGINT REFERENCES users(id) ON DELETE SET NULL,
	assigned_at TIMESTAMPTZ DEFAULT now()
);

CREATE TABLE IF NOT EXISTS logs (
	id BIGSERIAL PRIMARY KEY,
	event_type TEXT NOT NULL,
	details TEXT NOT NULL DEFAULT '',
	created_by BIGINT REFERENCES users(id) ON DELETE SET NULL,
	created_at TIMESTAMPTZ DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_assignments_satellite ON assignments(satellite_id);
CREATE INDEX IF NOT EXISTS idx_assignments_zone ON assignments(zone_id);
CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at);
`

// SchemaSQL returns the fresh-install schema for the dialect.
func (d Dialect) SchemaSQL() string {
	if d == DialectPostgres {
		return PostgresSchemaSQL
	}
	return SQLiteSchemaSQL
}
