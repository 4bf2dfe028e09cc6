package db_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/sacis/internal/db"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantConnection bool
	}{
		{"bad conn", driver.ErrBadConn, true},
		{"deadline", context.DeadlineExceeded, true},
		{"sqlite cannot open", sqlite3.Error{Code: sqlite3.ErrCantOpen}, true},
		{"sqlite not a database", sqlite3.Error{Code: sqlite3.ErrNotADB}, true},
		{"sqlite constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, false},
		{"postgres connection failure", &pq.Error{Code: "08006"}, true},
		{"postgres bad password", &pq.Error{Code: "28P01"}, true},
		{"postgres unknown database", &pq.Error{Code: "3D000"}, true},
		{"postgres foreign key", &pq.Error{Code: "23503"}, false},
		{"postgres syntax", &pq.Error{Code: "42601"}, false},
		{"plain error", errors.New("something"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := db.Classify("op", fmt.Errorf("wrapped: %w", tt.err))
			if tt.wantConnection {
				assert.ErrorIs(t, got, db.ErrConnection)
				assert.NotErrorIs(t, got, db.ErrStorage)
			} else {
				assert.ErrorIs(t, got, db.ErrStorage)
				assert.NotErrorIs(t, got, db.ErrConnection)
			}
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.NoError(t, db.Classify("op", nil))
}

func TestClassify_KeepsExistingClassification(t *testing.T) {
	orig := &db.ConnectionError{Op: "acquire", Err: errors.New("refused")}
	got := db.Classify("other", fmt.Errorf("context: %w", orig))

	var connErr *db.ConnectionError
	require.ErrorAs(t, got, &connErr)
	assert.Equal(t, "acquire", connErr.Op)
}

func TestRebind(t *testing.T) {
	tests := []struct {
		dialect db.Dialect
		in      string
		want    string
	}{
		{db.DialectSQLite, "UPDATE t SET a = ? WHERE id = ?", "UPDATE t SET a = ? WHERE id = ?"},
		{db.DialectPostgres, "UPDATE t SET a = ? WHERE id = ?", "UPDATE t SET a = $1 WHERE id = $2"},
		{db.DialectPostgres, "SELECT 1", "SELECT 1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.dialect.Rebind(tt.in))
	}
}

func TestParseDialect(t *testing.T) {
	for _, in := range []string{"sqlite3", "sqlite", " SQLite3 "} {
		d, err := db.ParseDialect(in)
		require.NoError(t, err)
		assert.Equal(t, db.DialectSQLite, d)
	}
	for _, in := range []string{"postgres", "postgresql", "pq"} {
		d, err := db.ParseDialect(in)
		require.NoError(t, err)
		assert.Equal(t, db.DialectPostgres, d)
	}
	_, err := db.ParseDialect("mysql")
	assert.Error(t, err)
}

func TestPostgresInsertReturningID(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	conn := db.NewConnector(sqlDB, db.DialectPostgres)

	mock.ExpectQuery(`INSERT INTO logs \(event_type, details\) VALUES \(\$1, \$2\) RETURNING id`).
		WithArgs("zone_create", "Created zone: North").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	var id int64
	err = conn.Do(context.Background(), "log.append", func(ctx context.Context, c *db.Conn) error {
		var err error
		id, err = c.InsertReturningID(ctx, "INSERT INTO logs (event_type, details) VALUES (?, ?)", "zone_create", "Created zone: North")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProbe_AuthFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	conn := db.NewConnector(sqlDB, db.DialectPostgres)

	mock.ExpectPing().WillReturnError(&pq.Error{Code: "28P01", Message: "password authentication failed"})

	err = conn.Probe(context.Background())
	assert.ErrorIs(t, err, db.ErrConnection)
}
