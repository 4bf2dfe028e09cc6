package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/example/sacis/internal/config"
	"github.com/example/sacis/internal/db"
	"github.com/example/sacis/internal/ports/primary"
	"github.com/example/sacis/internal/wire"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate SACIS configuration and store connectivity",
		Long: `Health check for SACIS.

Validates:
- SACIS_* environment configuration
- Store reachability and credentials
- Schema version
- Operator profile (~/.sacis/config.json)

Examples:
  sacis doctor              # Run full health check
  sacis doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := runChecks(cmd.Context())

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				printChecks(cmd.OutOrStdout(), results, hasErrors)
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

func runChecks(ctx context.Context) []CheckResult {
	if err := wire.Init(); err != nil {
		return []CheckResult{{Name: "Configuration", Status: "✗", Details: "  " + err.Error()}}
	}

	results := []CheckResult{{Name: "Configuration", Status: "✓"}}

	conn := wire.Connector()
	if err := conn.Probe(ctx); err != nil {
		details := "  " + err.Error()
		if errors.Is(err, db.ErrConnection) {
			details += "\n  Check SACIS_DB_DRIVER and SACIS_DB_DSN"
		}
		return append(results, CheckResult{Name: "Store", Status: "✗", Details: details})
	}
	results = append(results, CheckResult{Name: "Store", Status: "✓"})
	results = append(results, checkSchema(ctx, conn))
	results = append(results, checkProfile(ctx, wire.OperatorService()))
	return results
}

// checkSchema compares the applied schema version with the latest known one.
func checkSchema(ctx context.Context, conn *db.Connector) CheckResult {
	version, err := conn.SchemaVersion(ctx)
	if err != nil {
		// No schema_version table yet.
		return CheckResult{Name: "Schema", Status: "⚠", Details: "  Store not initialized. Run 'sacis init'."}
	}
	if version < db.LatestVersion() {
		return CheckResult{
			Name:    "Schema",
			Status:  "⚠",
			Details: fmt.Sprintf("  Schema v%d, latest is v%d. Any store command upgrades it.", version, db.LatestVersion()),
		}
	}
	return CheckResult{Name: "Schema", Status: "✓"}
}

// checkProfile validates the operator profile written by init and that
// its user exists in the active store.
func checkProfile(ctx context.Context, operators primary.OperatorService) CheckResult {
	home, err := config.HomeDir()
	if err != nil {
		return CheckResult{Name: "Profile", Status: "✗", Details: "  " + err.Error()}
	}
	cfg, err := config.LoadConfig(home)
	if errors.Is(err, config.ErrNoProfile) {
		return CheckResult{
			Name:    "Profile",
			Status:  "⚠",
			Details: "  No operator profile; changes will not be attributed. Run 'sacis init --username NAME'.",
		}
	}
	if err != nil {
		return CheckResult{Name: "Profile", Status: "✗", Details: "  " + err.Error()}
	}
	if cfg.UserID <= 0 {
		return CheckResult{Name: "Profile", Status: "⚠", Details: "  Profile has no user ID. Re-run 'sacis init'."}
	}
	user, err := operators.GetOperator(ctx, cfg.UserID)
	if err != nil {
		return CheckResult{Name: "Profile", Status: "⚠", Details: "  Could not look up operator: " + err.Error()}
	}
	if user == nil {
		return CheckResult{
			Name:    "Profile",
			Status:  "⚠",
			Details: fmt.Sprintf("  User %d from the profile is not in this store; changes will not be attributed. Re-run 'sacis init'.", cfg.UserID),
		}
	}
	return CheckResult{Name: "Profile", Status: "✓"}
}

func printChecks(out io.Writer, results []CheckResult, hasErrors bool) {
	// Print compact table
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Check              Status")
	fmt.Fprintln(out, "─────────────────────────")
	for _, r := range results {
		fmt.Fprintf(out, "%-18s %s\n", r.Name, r.Status)
	}
	fmt.Fprintln(out)

	// Print details for non-passing checks
	hasDetails := false
	for _, r := range results {
		if r.Status != "✓" && r.Details != "" {
			if !hasDetails {
				fmt.Fprintln(out, "Details:")
				hasDetails = true
			}
			fmt.Fprintf(out, "\n%s:\n%s\n", r.Name, r.Details)
		}
	}

	if hasErrors {
		fmt.Fprintln(out, "\n⚠ Issues found.")
	} else {
		fmt.Fprintln(out, "All checks passed.")
	}
}
