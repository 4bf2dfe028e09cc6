// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/example/sacis/internal/models"
	"github.com/example/sacis/internal/ports/primary"
)

const timeLayout = "2006-01-02 15:04:05"

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

// finish prints the success line and, if the audit step failed, a warning.
// A failed audit does not undo the change, so it is not returned as an error.
func finish(out io.Writer, err error, format string, args ...any) error {
	if err != nil && !errors.Is(err, primary.ErrAuditFailed) {
		return err
	}
	fmt.Fprintf(out, "✓ "+format+"\n", args...)
	if err != nil {
		fmt.Fprintf(out, "%s change saved but not recorded in the audit log: %v\n",
			color.New(color.FgYellow).Sprint("!"), err)
	}
	return nil
}

func colorSatelliteStatus(status string) string {
	switch status {
	case models.SatelliteStatusOperational:
		return color.New(color.FgGreen).Sprint(status)
	case models.SatelliteStatusDegraded, models.SatelliteStatusMaintenance:
		return color.New(color.FgYellow).Sprint(status)
	case models.SatelliteStatusOffline:
		return color.New(color.FgRed).Sprint(status)
	default:
		return status
	}
}

func colorPriority(priority string) string {
	switch priority {
	case models.ZonePriorityCritical:
		return color.New(color.FgRed, color.Bold).Sprint(priority)
	case models.ZonePriorityHigh:
		return color.New(color.FgYellow).Sprint(priority)
	default:
		return priority
	}
}

func colorAssignmentStatus(status string) string {
	switch status {
	case models.AssignmentStatusInProgress:
		return color.New(color.FgCyan).Sprint(status)
	case models.AssignmentStatusCompleted:
		return color.New(color.FgGreen).Sprint(status)
	default:
		return status
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format(timeLayout)
}
