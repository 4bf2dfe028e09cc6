// Package wire provides dependency injection for the SACIS application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	cliadapter "github.com/example/sacis/internal/adapters/cli"
	"github.com/example/sacis/internal/adapters/sqlstore"
	"github.com/example/sacis/internal/app"
	"github.com/example/sacis/internal/config"
	"github.com/example/sacis/internal/db"
	"github.com/example/sacis/internal/logging"
	"github.com/example/sacis/internal/observability"
	"github.com/example/sacis/internal/ports/primary"
)

var (
	env       *config.Env
	logger    *zap.Logger
	metrics   *observability.StoreMetrics
	connector *db.Connector

	satelliteService  primary.SatelliteService
	zoneService       primary.ZoneService
	assignmentService primary.AssignmentService
	logService        primary.LogService
	operatorService   primary.OperatorService

	once    sync.Once
	initErr error
)

// Init builds the process singletons. It is safe to call repeatedly; the
// first error is returned on every call.
func Init() error {
	once.Do(func() { initErr = initServices() })
	return initErr
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() error {
	var err error
	env, err = config.LoadEnv()
	if err != nil {
		return err
	}

	logger, err = logging.New(env.LogLevel, env.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	metrics, err = observability.NewStoreMetrics(prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	storeCfg, err := env.StoreConfig()
	if err != nil {
		return err
	}
	connector, err = db.Open(storeCfg, db.WithLogger(logger), db.WithObserver(metrics))
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	// Create repository adapters (secondary ports) with the injected connector
	satelliteRepo := sqlstore.NewSatelliteRepository(connector)
	zoneRepo := sqlstore.NewZoneRepository(connector)
	assignmentRepo := sqlstore.NewAssignmentRepository(connector)
	logRepo := sqlstore.NewLogRepository(connector)
	userRepo := sqlstore.NewUserRepository(connector)

	// Create services (primary ports implementation)
	satelliteService = app.NewSatelliteService(satelliteRepo, logRepo, logger)
	zoneService = app.NewZoneService(zoneRepo, logRepo, logger)
	assignmentService = app.NewAssignmentService(assignmentRepo, logRepo, logger)
	logService = app.NewLogService(logRepo)
	operatorService = app.NewOperatorService(userRepo)

	logger.Debug("services initialized",
		zap.String("driver", storeCfg.Driver),
		zap.Stringer("dialect", connector.Dialect()))
	return nil
}

// EnsureSchema initializes the store and brings its schema up to date.
func EnsureSchema(ctx context.Context) error {
	if err := Init(); err != nil {
		return err
	}
	return connector.InitSchema(ctx)
}

// Env returns the parsed environment. Init must have succeeded.
func Env() *config.Env {
	return env
}

// Logger returns the process logger, or a no-op logger before Init.
func Logger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Connector returns the store connector. Init must have succeeded.
func Connector() *db.Connector {
	return connector
}

// MetricsHandler serves the store operation metrics.
func MetricsHandler() http.Handler {
	return metrics.Handler()
}

// Close releases the store connections.
func Close() error {
	if connector == nil {
		return nil
	}
	return connector.Close()
}

// OperatorService returns the singleton OperatorService instance.
func OperatorService() primary.OperatorService {
	return operatorService
}

// SatelliteAdapter returns a new SatelliteAdapter writing to out.
// Each call creates a new adapter (adapters are stateless translators).
func SatelliteAdapter(out io.Writer) *cliadapter.SatelliteAdapter {
	return cliadapter.NewSatelliteAdapter(satelliteService, out)
}

// ZoneAdapter returns a new ZoneAdapter writing to out.
func ZoneAdapter(out io.Writer) *cliadapter.ZoneAdapter {
	return cliadapter.NewZoneAdapter(zoneService, out)
}

// AssignmentAdapter returns a new AssignmentAdapter writing to out.
func AssignmentAdapter(out io.Writer) *cliadapter.AssignmentAdapter {
	return cliadapter.NewAssignmentAdapter(assignmentService, satelliteService, zoneService, out)
}

// LogAdapter returns a new LogAdapter writing to out.
func LogAdapter(out io.Writer) *cliadapter.LogAdapter {
	return cliadapter.NewLogAdapter(logService, out)
}
