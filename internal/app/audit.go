package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/sacis/internal/ctxutil"
	"github.com/example/sacis/internal/ports/primary"
	"github.com/example/sacis/internal/ports/secondary"
)

// auditor appends the audit entry that follows every successful mutation.
// The entry is a separate commit from the mutation it describes.
type auditor struct {
	logRepo secondary.LogRepository
	logger  *zap.Logger
}

func newAuditor(logRepo secondary.LogRepository, logger *zap.Logger) *auditor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &auditor{logRepo: logRepo, logger: logger}
}

// record appends one entry attributed to the context's actor. A failure is
// logged and returned wrapping primary.ErrAuditFailed.
func (a *auditor) record(ctx context.Context, eventType, details string) error {
	if _, err := a.logRepo.Append(ctx, eventType, details, ctxutil.ActorFromContext(ctx)); err != nil {
		a.logger.Warn("audit append failed",
			zap.String("event_type", eventType),
			zap.String("details", details),
			zap.Error(err))
		return fmt.Errorf("%w (%s): %w", primary.ErrAuditFailed, eventType, err)
	}
	return nil
}

// rejected converts a failed guard into a validation error.
func rejected(reason string) error {
	return fmt.Errorf("%w: %s", primary.ErrValidation, reason)
}

// changes renders "field=value" pairs for audit details.
type changes []string

func (c *changes) add(field string, value any) {
	*c = append(*c, fmt.Sprintf("%s=%v", field, value))
}
