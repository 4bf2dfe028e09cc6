package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/example/sacis/internal/db"
)

// Env holds the settings read from SACIS_* environment variables.
type Env struct {
	DBDriver       string        `env:"SACIS_DB_DRIVER" envDefault:"sqlite3"`
	DBDSN          string        `env:"SACIS_DB_DSN"`
	DBMaxOpenConns int           `env:"SACIS_DB_MAX_OPEN_CONNS" envDefault:"1"`
	DBOpTimeout    time.Duration `env:"SACIS_DB_OP_TIMEOUT" envDefault:"10s"`

	LogLevel  string `env:"SACIS_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"SACIS_LOG_FORMAT" envDefault:"console"`

	// ActorID overrides the profile's user ID when set.
	ActorID int64 `env:"SACIS_ACTOR_ID"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (*Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

// StoreConfig returns the connector settings. An empty DSN selects the
// default SQLite file under ~/.sacis.
func (e *Env) StoreConfig() (db.Config, error) {
	dsn := e.DBDSN
	if dsn == "" {
		dialect, err := db.ParseDialect(e.DBDriver)
		if err != nil {
			return db.Config{}, err
		}
		if dialect != db.DialectSQLite {
			return db.Config{}, fmt.Errorf("SACIS_DB_DSN is required for driver %s", e.DBDriver)
		}
		if dsn, err = db.DefaultPath(); err != nil {
			return db.Config{}, err
		}
	}
	return db.Config{
		Driver:       e.DBDriver,
		DSN:          dsn,
		MaxOpenConns: e.DBMaxOpenConns,
		OpTimeout:    e.DBOpTimeout,
	}, nil
}
