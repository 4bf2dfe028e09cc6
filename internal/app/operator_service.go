package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/sacis/internal/models"
	"github.com/example/sacis/internal/ports/primary"
	"github.com/example/sacis/internal/ports/secondary"
)

// DefaultOperatorRole is the role given to operators created by init.
const DefaultOperatorRole = "operator"

// OperatorServiceImpl implements the OperatorService interface.
type OperatorServiceImpl struct {
	userRepo secondary.UserRepository
}

// NewOperatorService creates a new OperatorService with injected dependencies.
func NewOperatorService(userRepo secondary.UserRepository) *OperatorServiceImpl {
	return &OperatorServiceImpl{userRepo: userRepo}
}

// EnsureOperator returns the named operator, creating it if absent.
func (s *OperatorServiceImpl) EnsureOperator(ctx context.Context, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, rejected("username is required")
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	user := &models.User{Username: username, Role: DefaultOperatorRole}
	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create operator %s: %w", username, err)
	}
	user.ID = id
	return user, nil
}

// GetOperator returns the operator with the given ID, or nil if absent.
func (s *OperatorServiceImpl) GetOperator(ctx context.Context, userID int64) (*models.User, error) {
	if userID <= 0 {
		return nil, nil
	}
	return s.userRepo.GetByID(ctx, userID)
}

// Ensure OperatorServiceImpl implements the interface
var _ primary.OperatorService = (*OperatorServiceImpl)(nil)
