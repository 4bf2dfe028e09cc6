package primary

import (
	"context"

	"github.com/example/sacis/internal/models"
)

// AssignmentService defines the primary port for assignment operations.
type AssignmentService interface {
	// CreateAssignment assigns a satellite to a zone. The store sets the
	// initial status and the assignment time.
	CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (*CreateAssignmentResponse, error)

	// ListAssignments lists every assignment ordered by ID.
	ListAssignments(ctx context.Context) ([]*models.Assignment, error)

	// UpdateAssignment changes the fields set in req. An empty request is a no-op.
	UpdateAssignment(ctx context.Context, req UpdateAssignmentRequest) error

	// StartAssignment moves an assignment to in_progress.
	StartAssignment(ctx context.Context, assignmentID int64) error

	// CompleteAssignment moves an assignment to completed.
	CompleteAssignment(ctx context.Context, assignmentID int64) error

	// DeleteAssignment deletes an assignment. A missing ID is not an error.
	DeleteAssignment(ctx context.Context, assignmentID int64) error
}

// CreateAssignmentRequest contains parameters for creating an assignment.
type CreateAssignmentRequest struct {
	SatelliteID      int64
	ZoneID           int64
	FrequencyMinutes *int // Optional: nil means 60
}

// CreateAssignmentResponse contains the result of creating an assignment.
type CreateAssignmentResponse struct {
	AssignmentID int64
}

// UpdateAssignmentRequest contains parameters for updating an assignment.
type UpdateAssignmentRequest struct {
	AssignmentID     int64
	SatelliteID      *int64
	ZoneID           *int64
	FrequencyMinutes *int
	Status           *string
}
