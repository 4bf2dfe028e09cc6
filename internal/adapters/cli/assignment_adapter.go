package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/example/sacis/internal/db"
	"github.com/example/sacis/internal/ports/primary"
)

// AssignmentAdapter translates CLI operations to AssignmentService calls.
// Listing resolves satellite and zone names through their services.
type AssignmentAdapter struct {
	service    primary.AssignmentService
	satellites primary.SatelliteService
	zones      primary.ZoneService
	out        io.Writer
}

// NewAssignmentAdapter creates a new AssignmentAdapter.
func NewAssignmentAdapter(
	service primary.AssignmentService,
	satellites primary.SatelliteService,
	zones primary.ZoneService,
	out io.Writer,
) *AssignmentAdapter {
	return &AssignmentAdapter{service: service, satellites: satellites, zones: zones, out: out}
}

// Create assigns a satellite to a zone. Failures become a short operator
// message; nothing is left half-written because the insert is atomic.
func (a *AssignmentAdapter) Create(ctx context.Context, req primary.CreateAssignmentRequest) error {
	resp, err := a.service.CreateAssignment(ctx, req)
	if resp == nil {
		return assignmentNotCreated(req, err)
	}
	return finish(a.out, err, "Created assignment %d: satellite %d -> zone %d", resp.AssignmentID, req.SatelliteID, req.ZoneID)
}

func assignmentNotCreated(req primary.CreateAssignmentRequest, err error) error {
	switch {
	case errors.Is(err, primary.ErrValidation):
		return fmt.Errorf("assignment not created: %w", err)
	case errors.Is(err, db.ErrStorage):
		return fmt.Errorf("assignment not created: the store rejected it, check that satellite %d and zone %d exist (sacis doctor verifies the operator): %w",
			req.SatelliteID, req.ZoneID, err)
	case errors.Is(err, db.ErrConnection):
		return fmt.Errorf("assignment not created: the store is unreachable (try: sacis doctor): %w", err)
	default:
		return fmt.Errorf("assignment not created: %w", err)
	}
}

// List prints every assignment with satellite and zone names.
func (a *AssignmentAdapter) List(ctx context.Context) error {
	assignments, err := a.service.ListAssignments(ctx)
	if err != nil {
		return fmt.Errorf("failed to list assignments: %w", err)
	}

	if len(assignments) == 0 {
		fmt.Fprintln(a.out, "No assignments found")
		return nil
	}

	satNames := map[int64]string{}
	satellites, err := a.satellites.ListSatellites(ctx)
	if err != nil {
		return fmt.Errorf("failed to list satellites: %w", err)
	}
	for _, s := range satellites {
		satNames[s.ID] = s.Name
	}

	zoneNames := map[int64]string{}
	zones, err := a.zones.ListZones(ctx)
	if err != nil {
		return fmt.Errorf("failed to list zones: %w", err)
	}
	for _, z := range zones {
		zoneNames[z.ID] = z.Name
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "ID\tSATELLITE\tZONE\tEVERY\tSTATUS\tASSIGNED AT")
	for _, as := range assignments {
		fmt.Fprintf(w, "%d\t%s\t%s\t%dm\t%s\t%s\n",
			as.ID,
			nameOrID(satNames, as.SatelliteID),
			nameOrID(zoneNames, as.ZoneID),
			as.FrequencyMinutes,
			colorAssignmentStatus(as.Status),
			formatOptionalTime(&as.AssignedAt))
	}
	return w.Flush()
}

func nameOrID(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("#%d", id)
}

// Update applies a partial update.
func (a *AssignmentAdapter) Update(ctx context.Context, req primary.UpdateAssignmentRequest) error {
	if req.SatelliteID == nil && req.ZoneID == nil && req.FrequencyMinutes == nil && req.Status == nil {
		return fmt.Errorf("must specify at least one field to update")
	}
	err := a.service.UpdateAssignment(ctx, req)
	return finish(a.out, err, "Assignment %d updated", req.AssignmentID)
}

// Start marks an assignment in progress.
func (a *AssignmentAdapter) Start(ctx context.Context, assignmentID int64) error {
	err := a.service.StartAssignment(ctx, assignmentID)
	return finish(a.out, err, "Assignment %d in progress", assignmentID)
}

// Complete marks an assignment completed.
func (a *AssignmentAdapter) Complete(ctx context.Context, assignmentID int64) error {
	err := a.service.CompleteAssignment(ctx, assignmentID)
	return finish(a.out, err, "Assignment %d completed", assignmentID)
}

// Delete deletes an assignment.
func (a *AssignmentAdapter) Delete(ctx context.Context, assignmentID int64) error {
	err := a.service.DeleteAssignment(ctx, assignmentID)
	return finish(a.out, err, "Assignment %d deleted", assignmentID)
}
