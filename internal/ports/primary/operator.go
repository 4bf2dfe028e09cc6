package primary

import (
	"context"

	"github.com/example/sacis/internal/models"
)

// OperatorService defines the primary port for operator accounts.
// Accounts only identify who performed an action; nothing authenticates
// against them.
type OperatorService interface {
	// EnsureOperator returns the named operator, creating it if absent.
	EnsureOperator(ctx context.Context, username string) (*models.User, error)

	// GetOperator returns the operator with the given ID, or nil if the
	// active store has no such user.
	GetOperator(ctx context.Context, userID int64) (*models.User, error)
}
