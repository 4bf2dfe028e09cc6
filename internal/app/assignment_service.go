package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	coreassignment "github.com/example/sacis/internal/core/assignment"
	"github.com/example/sacis/internal/ctxutil"
	"github.com/example/sacis/internal/models"
	"github.com/example/sacis/internal/ports/primary"
	"github.com/example/sacis/internal/ports/secondary"
)

// AssignmentServiceImpl implements the AssignmentService interface.
type AssignmentServiceImpl struct {
	assignmentRepo secondary.AssignmentRepository
	audit          *auditor
}

// NewAssignmentService creates a new AssignmentService with injected dependencies.
func NewAssignmentService(
	assignmentRepo secondary.AssignmentRepository,
	logRepo secondary.LogRepository,
	logger *zap.Logger,
) *AssignmentServiceImpl {
	return &AssignmentServiceImpl{
		assignmentRepo: assignmentRepo,
		audit:          newAuditor(logRepo, logger),
	}
}

// CreateAssignment assigns a satellite to a zone. The acting operator, if
// known, is recorded as assigned_by.
func (s *AssignmentServiceImpl) CreateAssignment(ctx context.Context, req primary.CreateAssignmentRequest) (*primary.CreateAssignmentResponse, error) {
	frequency := models.DefaultFrequencyMinutes
	if req.FrequencyMinutes != nil {
		frequency = *req.FrequencyMinutes
	}

	guard := coreassignment.CanCreateAssignment(coreassignment.CreateAssignmentContext{
		SatelliteID:      req.SatelliteID,
		ZoneID:           req.ZoneID,
		FrequencyMinutes: frequency,
	})
	if !guard.Allowed {
		return nil, rejected(guard.Reason)
	}

	id, err := s.assignmentRepo.Create(ctx, &models.Assignment{
		SatelliteID:      req.SatelliteID,
		ZoneID:           req.ZoneID,
		FrequencyMinutes: frequency,
		AssignedBy:       ctxutil.ActorFromContext(ctx),
	})
	if err != nil {
		return nil, err
	}

	resp := &primary.CreateAssignmentResponse{AssignmentID: id}
	details := fmt.Sprintf("Assignment %d sat:%d zone:%d", id, req.SatelliteID, req.ZoneID)
	return resp, s.audit.record(ctx, models.EventAssignmentCreate, details)
}

// ListAssignments lists every assignment ordered by ID.
func (s *AssignmentServiceImpl) ListAssignments(ctx context.Context) ([]*models.Assignment, error) {
	return s.assignmentRepo.List(ctx)
}

// UpdateAssignment changes the fields set in req.
func (s *AssignmentServiceImpl) UpdateAssignment(ctx context.Context, req primary.UpdateAssignmentRequest) error {
	guard := coreassignment.CanUpdateAssignment(coreassignment.UpdateAssignmentContext{
		AssignmentID:     req.AssignmentID,
		SatelliteID:      req.SatelliteID,
		ZoneID:           req.ZoneID,
		FrequencyMinutes: req.FrequencyMinutes,
		Status:           req.Status,
	})
	if !guard.Allowed {
		return rejected(guard.Reason)
	}

	patch := secondary.AssignmentPatch{
		SatelliteID:      req.SatelliteID,
		ZoneID:           req.ZoneID,
		FrequencyMinutes: req.FrequencyMinutes,
		Status:           req.Status,
	}
	if patch.IsEmpty() {
		return nil
	}

	if err := s.assignmentRepo.Update(ctx, req.AssignmentID, patch); err != nil {
		return err
	}
	return s.audit.record(ctx, models.EventAssignmentUpdate, describeAssignmentUpdate(req))
}

// StartAssignment moves an assignment to in_progress.
func (s *AssignmentServiceImpl) StartAssignment(ctx context.Context, assignmentID int64) error {
	status := models.AssignmentStatusInProgress
	return s.UpdateAssignment(ctx, primary.UpdateAssignmentRequest{AssignmentID: assignmentID, Status: &status})
}

// CompleteAssignment moves an assignment to completed.
func (s *AssignmentServiceImpl) CompleteAssignment(ctx context.Context, assignmentID int64) error {
	status := models.AssignmentStatusCompleted
	return s.UpdateAssignment(ctx, primary.UpdateAssignmentRequest{AssignmentID: assignmentID, Status: &status})
}

// DeleteAssignment deletes an assignment.
func (s *AssignmentServiceImpl) DeleteAssignment(ctx context.Context, assignmentID int64) error {
	if err := s.assignmentRepo.Delete(ctx, assignmentID); err != nil {
		return err
	}
	return s.audit.record(ctx, models.EventAssignmentDelete, fmt.Sprintf("Assignment %d deleted", assignmentID))
}

func describeAssignmentUpdate(req primary.UpdateAssignmentRequest) string {
	var c changes
	if req.SatelliteID != nil {
		c.add("sat", *req.SatelliteID)
	}
	if req.ZoneID != nil {
		c.add("zone", *req.ZoneID)
	}
	if req.FrequencyMinutes != nil {
		c.add("frequency_minutes", *req.FrequencyMinutes)
	}
	if req.Status != nil {
		c.add("status", *req.Status)
	}

	if len(c) == 1 && req.Status != nil {
		return fmt.Sprintf("Assignment %d -> %s", req.AssignmentID, *req.Status)
	}
	return fmt.Sprintf("Assignment %d updated: %s", req.AssignmentID, strings.Join(c, ", "))
}

// Ensure AssignmentServiceImpl implements the interface
var _ primary.AssignmentService = (*AssignmentServiceImpl)(nil)
