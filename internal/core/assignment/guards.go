// Package assignment contains the pure business logic for assignment operations.
// Guards are pure functions that evaluate preconditions without side effects.
package assignment

import (
	"fmt"
	"slices"
	"strings"

	"github.com/example/sacis/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CreateAssignmentContext provides context for assignment creation guards.
type CreateAssignmentContext struct {
	SatelliteID      int64
	ZoneID           int64
	FrequencyMinutes int
}

// UpdateAssignmentContext provides context for assignment update guards.
// Nil fields are not being changed.
type UpdateAssignmentContext struct {
	AssignmentID     int64
	SatelliteID      *int64
	ZoneID           *int64
	FrequencyMinutes *int
	Status           *string
}

// CanCreateAssignment evaluates whether an assignment can be created.
// Whether the satellite and zone exist is left to the store.
// Rules:
// - Satellite and zone IDs must be positive
// - Frequency must be at least one minute
func CanCreateAssignment(ctx CreateAssignmentContext) GuardResult {
	if ctx.SatelliteID <= 0 {
		return GuardResult{Allowed: false, Reason: "satellite ID is required"}
	}
	if ctx.ZoneID <= 0 {
		return GuardResult{Allowed: false, Reason: "zone ID is required"}
	}
	return checkFrequency(ctx.FrequencyMinutes)
}

// CanUpdateAssignment evaluates whether an assignment update is acceptable.
func CanUpdateAssignment(ctx UpdateAssignmentContext) GuardResult {
	if ctx.SatelliteID != nil && *ctx.SatelliteID <= 0 {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("invalid satellite ID %d", *ctx.SatelliteID)}
	}
	if ctx.ZoneID != nil && *ctx.ZoneID <= 0 {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("invalid zone ID %d", *ctx.ZoneID)}
	}
	if ctx.FrequencyMinutes != nil {
		if r := checkFrequency(*ctx.FrequencyMinutes); !r.Allowed {
			return r
		}
	}
	if ctx.Status != nil && !slices.Contains(models.AssignmentStatuses, *ctx.Status) {
		return GuardResult{
			Allowed: false,
			Reason: fmt.Sprintf("invalid status %q for assignment %d (must be one of %s)",
				*ctx.Status, ctx.AssignmentID, strings.Join(models.AssignmentStatuses, ", ")),
		}
	}
	return GuardResult{Allowed: true}
}

func checkFrequency(minutes int) GuardResult {
	if minutes <= 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("frequency must be a positive number of minutes, got %d", minutes),
		}
	}
	return GuardResult{Allowed: true}
}
