package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrConnection = errors.New("store unavailable")
	ErrStorage    = errors.New("store rejected statement")
)

// ConnectionError reports that the store could not be reached or refused
// the credentials. Every failure is terminal for the operation; nothing retries.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	if e.Op == "" {
		return "connection error: " + e.Err.Error()
	}
	return "connection error (" + e.Op + "): " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Is matches ErrConnection.
func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }

// StorageError reports a statement the store rejected: constraint
// violations, malformed SQL, type mismatches.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	if e.Op == "" {
		return "storage error: " + e.Err.Error()
	}
	return "storage error (" + e.Op + "): " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is matches ErrStorage.
func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// Classify wraps a driver error in ConnectionError or StorageError.
// Errors that are already classified are returned unchanged.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var connErr *ConnectionError
	var storageErr *StorageError
	if errors.As(err, &connErr) || errors.As(err, &storageErr) {
		return err
	}
	if isConnectionFailure(err) {
		return &ConnectionError{Op: op, Err: err}
	}
	return &StorageError{Op: op, Err: err}
}

func isConnectionFailure(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrCantOpen, sqlite3.ErrNotADB, sqlite3.ErrAuth, sqlite3.ErrPerm:
			return true
		}
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// 08: connection exception, 28: invalid authorization, 3D: unknown database
		switch pqErr.Code.Class() {
		case "08", "28", "3D":
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
