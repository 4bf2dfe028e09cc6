// Package satellite contains the pure business logic for satellite operations.
// Guards are pure functions that evaluate preconditions without side effects.
package satellite

import (
	"fmt"
	"strings"
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

// CreateSatelliteContext provides context for satellite creation guards.
type CreateSatelliteContext struct {
	Name string
}

// UpdateSatelliteContext provides context for satellite update guards.
// Name is nil when the update leaves the name alone.
type UpdateSatelliteContext struct {
	SatelliteID int64
	Name        *string
}

// CanCreateSatellite evaluates whether a satellite can be created.
// Rules:
// - Name must not be blank
func CanCreateSatellite(ctx CreateSatelliteContext) GuardResult {
	if strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{Allowed: false, Reason: "satellite name is required"}
	}
	return GuardResult{Allowed: true}
}

// CanUpdateSatellite evaluates whether a satellite update is acceptable.
// Rules:
// - A new name, if given, must not be blank
func CanUpdateSatellite(ctx UpdateSatelliteContext) GuardResult {
	if ctx.Name != nil && strings.TrimSpace(*ctx.Name) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot rename satellite %d to a blank name", ctx.SatelliteID),
		}
	}
	return GuardResult{Allowed: true}
}
