package db_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/example/sacis/internal/db"
)

func openTestConnector(t *testing.T) *db.Connector {
	t.Helper()

	conn, err := db.Open(db.Config{
		Driver:       "sqlite3",
		DSN:          filepath.Join(t.TempDir(), "sacis.db"),
		MaxOpenConns: 1,
		OpTimeout:    5 * time.Second,
	})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []string
}

func (o *recordingObserver) ObserveOperation(op, outcome string, elapsed time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, op+":"+outcome)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := db.Open(db.Config{Driver: "oracle", DSN: "x"})
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestOpen_EmptyDSN(t *testing.T) {
	_, err := db.Open(db.Config{Driver: "sqlite3"})
	if err == nil {
		t.Fatal("expected error for empty DSN")
	}
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	conn, err := db.Open(db.Config{Driver: "sqlite3", DSN: filepath.Join(dir, "sacis.db")})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected parent directory to exist: %v", err)
	}
}

func TestProbe_Success(t *testing.T) {
	conn := openTestConnector(t)

	if err := conn.Probe(context.Background()); err != nil {
		t.Fatalf("Probe failed: %v", err)
	}
}

func TestProbe_UnreachableStore(t *testing.T) {
	// Read-only mode refuses to create the missing file.
	dsn := "file:" + filepath.Join(t.TempDir(), "missing", "sacis.db") + "?mode=ro"
	conn, err := db.Open(db.Config{Driver: "sqlite3", DSN: dsn})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	err = conn.Probe(context.Background())
	if err == nil {
		t.Fatal("expected probe to fail")
	}
	if !errors.Is(err, db.ErrConnection) {
		t.Errorf("expected ErrConnection, got %v", err)
	}
}

func TestInitSchema_Idempotent(t *testing.T) {
	conn := openTestConnector(t)
	ctx := context.Background()

	if err := conn.InitSchema(ctx); err != nil {
		t.Fatalf("first InitSchema failed: %v", err)
	}
	if err := conn.InitSchema(ctx); err != nil {
		t.Fatalf("second InitSchema failed: %v", err)
	}

	version, err := conn.SchemaVersion(ctx)
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version != db.LatestVersion() {
		t.Errorf("expected version %d, got %d", db.LatestVersion(), version)
	}
}

func TestDo_ReleasesConnectionOnError(t *testing.T) {
	conn := openTestConnector(t)
	ctx := context.Background()
	boom := errors.New("boom")

	// The pool holds one connection; a leak would block the second Do.
	err := conn.Do(ctx, "failing", func(ctx context.Context, c *db.Conn) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if err := conn.Probe(ctx); err != nil {
		t.Fatalf("Probe after failed Do: %v", err)
	}
}

func TestDo_ReleasesConnectionOnPanic(t *testing.T) {
	conn := openTestConnector(t)
	ctx := context.Background()

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		_ = conn.Do(ctx, "panicking", func(ctx context.Context, c *db.Conn) error {
			panic("boom")
		})
	}()

	if err := conn.Probe(ctx); err != nil {
		t.Fatalf("Probe after panicking Do: %v", err)
	}
}

func TestDo_ClassifiesConstraintViolation(t *testing.T) {
	conn := openTestConnector(t)
	ctx := context.Background()
	if err := conn.InitSchema(ctx); err != nil {
		t.Fatalf("InitSchema failed: %v", err)
	}

	err := conn.Do(ctx, "assignment.create", func(ctx context.Context, c *db.Conn) error {
		_, err := c.InsertReturningID(ctx,
			"INSERT INTO assignments (satellite_id, zone_id, frequency_minutes) VALUES (?, ?, ?)",
			99, 99, 60)
		return err
	})
	if !errors.Is(err, db.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestDo_ReportsOutcomeToObserver(t *testing.T) {
	obs := &recordingObserver{}
	conn, err := db.Open(db.Config{
		Driver: "sqlite3",
		DSN:    filepath.Join(t.TempDir(), "sacis.db"),
	}, db.WithObserver(obs))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()
	ctx := context.Background()

	_ = conn.Probe(ctx)
	_ = conn.Do(ctx, "broken", func(ctx context.Context, c *db.Conn) error {
		_, err := c.ExecContext(ctx, "SELECT * FROM no_such_table")
		return err
	})

	want := []string{"probe:ok", "broken:storage_error"}
	if len(obs.calls) != len(want) {
		t.Fatalf("expected %v, got %v", want, obs.calls)
	}
	for i := range want {
		if obs.calls[i] != want[i] {
			t.Errorf("call %d: expected %s, got %s", i, want[i], obs.calls[i])
		}
	}
}

func TestDo_TimeoutIsConnectionError(t *testing.T) {
	conn, err := db.Open(db.Config{
		Driver:    "sqlite3",
		DSN:       filepath.Join(t.TempDir(), "sacis.db"),
		OpTimeout: time.Millisecond,
	})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	err = conn.Do(context.Background(), "slow", func(ctx context.Context, c *db.Conn) error {
		<-ctx.Done()
		return ctx.Err()
	})
	if !errors.Is(err, db.ErrConnection) {
		t.Fatalf("expected ErrConnection, got %v", err)
	}
}

func TestDo_ReportsPanicToObserver(t *testing.T) {
	obs := &recordingObserver{}
	conn, err := db.Open(db.Config{
		Driver: "sqlite3",
		DSN:    filepath.Join(t.TempDir(), "sacis.db"),
	}, db.WithObserver(obs))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Fatalf("expected panic value boom, got %v", r)
			}
		}()
		_ = conn.Do(context.Background(), "panicking", func(ctx context.Context, c *db.Conn) error {
			panic("boom")
		})
	}()

	if len(obs.calls) != 1 || obs.calls[0] != "panicking:"+db.OutcomePanic {
		t.Errorf("expected panicking:panic, got %v", obs.calls)
	}
}
