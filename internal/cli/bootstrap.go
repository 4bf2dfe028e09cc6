// Package cli provides CLI commands for the SACIS application.
package cli

import (
	gocontext "context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/sacis/internal/config"
	"github.com/example/sacis/internal/ctxutil"
	"github.com/example/sacis/internal/ports/primary"
	"github.com/example/sacis/internal/wire"
)

// globalActorID stores the operator for the current CLI invocation.
// Set once at startup by DetectAndStoreActor().
var globalActorID int64

// DetectAndStoreActor resolves the acting operator: SACIS_ACTOR_ID first,
// then the profile written by `sacis init`. No operator is not an error;
// actions are then recorded without attribution.
func DetectAndStoreActor() {
	globalActorID = 0
	if env := wire.Env(); env != nil && env.ActorID > 0 {
		globalActorID = env.ActorID
		return
	}

	home, err := config.HomeDir()
	if err != nil {
		return
	}
	cfg, err := config.LoadConfig(home)
	if err != nil {
		if !errors.Is(err, config.ErrNoProfile) {
			wire.Logger().Warn("ignoring operator profile", zap.Error(err))
		}
		return
	}
	globalActorID = cfg.UserID
}

// GetActorID returns the stored actor ID from CLI startup, or zero.
func GetActorID() int64 {
	return globalActorID
}

// NewContext creates a context.Background() with the current actor ID embedded.
// CLI commands should use this instead of context.Background() directly.
func NewContext() gocontext.Context {
	return ctxutil.WithActorID(gocontext.Background(), globalActorID)
}

// verifyActor returns actorID if the operator exists in the active store.
// A stale ID, e.g. a profile written against another store, is dropped
// with a warning so changes are recorded unattributed instead of failing
// on the assigned_by reference.
func verifyActor(ctx gocontext.Context, operators primary.OperatorService, logger *zap.Logger, actorID int64) int64 {
	if actorID <= 0 {
		return 0
	}
	user, err := operators.GetOperator(ctx, actorID)
	if err != nil {
		logger.Warn("could not verify operator; changes will not be attributed",
			zap.Int64("user_id", actorID), zap.Error(err))
		return 0
	}
	if user == nil {
		logger.Warn("operator not found in store; changes will not be attributed",
			zap.Int64("user_id", actorID))
		return 0
	}
	return actorID
}

// requireStore is the PersistentPreRunE of every command that touches
// records: it builds the services, brings the schema up to date and
// resolves the operator.
func requireStore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = gocontext.Background()
	}
	if err := wire.EnsureSchema(ctx); err != nil {
		return err
	}
	DetectAndStoreActor()
	globalActorID = verifyActor(ctx, wire.OperatorService(), wire.Logger(), globalActorID)
	return nil
}
