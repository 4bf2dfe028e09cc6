// Package zone contains the pure business logic for zone operations.
package zone

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

// CreateZoneContext provides context for zone creation guards.
type CreateZoneContext struct {
	Name     string
	Priority string
}

// UpdateZoneContext provides context for zone update guards.
// Nil fields are not being changed.
type UpdateZoneContext struct {
	ZoneID   int64
	Name     *string
	Priority *string
}

// CanCreateZone evaluates whether a zone can be created.
// Rules:
// - Name must not be blank
// - Priority must be CRITICAL, HIGH, MEDIUM or LOW
func CanCreateZone(ctx CreateZoneContext) GuardResult {
	if strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{Allowed: false, Reason: "zone name is required"}
	}
	return checkPriority(ctx.Priority)
}

// CanUpdateZone evaluates whether a zone update is acceptable.
func CanUpdateZone(ctx UpdateZoneContext) GuardResult {
	if ctx.Name != nil && strings.TrimSpace(*ctx.Name) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot rename zone %d to a blank name", ctx.ZoneID),
		}
	}
	if ctx.Priority != nil {
		return checkPriority(*ctx.Priority)
	}
	return GuardResult{Allowed: true}
}

func checkPriority(priority string) GuardResult {
	if !slices.Contains(models.ZonePriorities, priority) {
		return GuardResult{
			Allowed: false,
			Reason: fmt.Sprintf("invalid priority %q (must be one of %s)",
				priority, strings.Join(models.ZonePriorities, ", ")),
		}
	}
	return GuardResult{Allowed: true}
}
