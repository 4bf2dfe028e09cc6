// Package db owns the connection to the relational store: opening it,
// handing out one connection per unit of work, classifying driver errors,
// and bootstrapping the schema.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Config selects and tunes the store.
type Config struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	OpTimeout    time.Duration
}

// OperationObserver receives the outcome of every Do call.
type OperationObserver interface {
	ObserveOperation(op, outcome string, elapsed time.Duration)
}

// Outcome labels passed to OperationObserver.
const (
	OutcomeOK              = "ok"
	OutcomeConnectionError = "connection_error"
	OutcomeStorageError    = "storage_error"
	OutcomeError           = "error"
	OutcomePanic           = "panic"
)

// Connector hands out store connections, one per operation.
type Connector struct {
	db       *sql.DB
	dialect  Dialect
	timeout  time.Duration
	logger   *zap.Logger
	observer OperationObserver
}

// Option customizes a Connector.
type Option func(*Connector)

// WithLogger sets the logger used for per-operation debug lines.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Connector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver registers an observer for operation outcomes.
func WithObserver(o OperationObserver) Option {
	return func(c *Connector) { c.observer = o }
}

// WithTimeout bounds every Do call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Connector) { c.timeout = d }
}

// Open opens the store described by cfg. The handle is lazy: reachability
// is first tested by Acquire or Probe.
func Open(cfg Config, opts ...Option) (*Connector, error) {
	dialect, err := ParseDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is required")
	}
	if dialect == DialectSQLite {
		if err := ensureParentDir(dsn); err != nil {
			return nil, &ConnectionError{Op: "open", Err: err}
		}
		dsn = sqliteDSN(dsn)
	}

	sqlDB, err := sql.Open(dialect.String(), dsn)
	if err != nil {
		return nil, &ConnectionError{Op: "open", Err: err}
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	opts = append([]Option{WithTimeout(cfg.OpTimeout)}, opts...)
	return NewConnector(sqlDB, dialect, opts...), nil
}

// NewConnector wraps an already opened handle.
func NewConnector(sqlDB *sql.DB, dialect Dialect, opts ...Option) *Connector {
	c := &Connector{
		db:      sqlDB,
		dialect: dialect,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dialect returns the store's SQL dialect.
func (c *Connector) Dialect() Dialect { return c.dialect }

// Close closes the underlying handle.
func (c *Connector) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Acquire returns a connection for exactly one unit of work. The caller
// must Release it; Do does that automatically.
func (c *Connector) Acquire(ctx context.Context) (*Conn, error) {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return nil, &ConnectionError{Op: "acquire", Err: err}
	}
	return &Conn{conn: conn, dialect: c.dialect}, nil
}

// Do acquires a connection, runs fn on it, and releases it on every exit
// path, including when fn fails or panics.
func (c *Connector) Do(ctx context.Context, op string, fn func(ctx context.Context, conn *Conn) error) (err error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			c.finish(op, &panicError{value: r}, time.Since(start))
			panic(r)
		}
		c.finish(op, err, time.Since(start))
	}()

	conn, err := c.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := conn.Release(); releaseErr != nil && !errors.Is(releaseErr, sql.ErrConnDone) {
			c.logger.Warn("release connection", zap.String("op", op), zap.Error(releaseErr))
		}
	}()

	return Classify(op, fn(ctx, conn))
}

// Probe checks that the store is reachable and answers a trivial query.
func (c *Connector) Probe(ctx context.Context) error {
	return c.Do(ctx, "probe", func(ctx context.Context, conn *Conn) error {
		if err := conn.conn.PingContext(ctx); err != nil {
			return &ConnectionError{Op: "probe", Err: err}
		}
		var one int
		if err := conn.conn.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
			return &ConnectionError{Op: "probe", Err: err}
		}
		return nil
	})
}

func (c *Connector) finish(op string, err error, elapsed time.Duration) {
	outcome := outcomeOf(err)
	if c.observer != nil {
		c.observer.ObserveOperation(op, outcome, elapsed)
	}
	if err != nil {
		c.logger.Debug("store operation failed",
			zap.String("op", op),
			zap.String("outcome", outcome),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return
	}
	c.logger.Debug("store operation",
		zap.String("op", op),
		zap.Duration("elapsed", elapsed))
}

// panicError reports a panic in an operation to the observer and logger.
// It is never returned; the panic is re-raised.
type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func outcomeOf(err error) string {
	var pe *panicError
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &pe):
		return OutcomePanic
	case errors.Is(err, ErrConnection):
		return OutcomeConnectionError
	case errors.Is(err, ErrStorage):
		return OutcomeStorageError
	default:
		return OutcomeError
	}
}

// Conn is a single store connection bound to the connector's dialect.
type Conn struct {
	conn    *sql.Conn
	dialect Dialect
}

// Release returns the connection.
func (c *Conn) Release() error {
	return c.conn.Close()
}

// ExecContext runs a statement that returns no rows.
func (c *Conn) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.conn.ExecContext(ctx, c.dialect.Rebind(query), args...)
}

// QueryContext runs a statement that returns rows.
func (c *Conn) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.conn.QueryContext(ctx, c.dialect.Rebind(query), args...)
}

// InsertReturningID runs an INSERT and returns the id the store generated.
// The query must not carry its own RETURNING clause.
func (c *Conn) InsertReturningID(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	err := c.conn.QueryRowContext(ctx, c.dialect.Rebind(query)+" RETURNING id", args...).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// BeginTx starts a transaction on this connection. Only schema migrations
// use it; repository operations are single auto-committed statements.
func (c *Conn) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return c.conn.BeginTx(ctx, nil)
}

// DefaultPath returns the default SQLite database path (~/.sacis/sacis.db).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".sacis", "sacis.db"), nil
}

func ensureParentDir(dsn string) error {
	if strings.HasPrefix(dsn, "file:") || strings.HasPrefix(dsn, ":memory:") {
		return nil
	}
	path := dsn
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}

// sqliteDSN enables foreign keys and a busy timeout on every connection.
func sqliteDSN(dsn string) string {
	params := []string{}
	if !strings.Contains(dsn, "_foreign_keys") && !strings.Contains(dsn, "_fk=") {
		params = append(params, "_foreign_keys=on")
	}
	if !strings.Contains(dsn, "_busy_timeout") {
		params = append(params, "_busy_timeout=5000")
	}
	if len(params) == 0 {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}
