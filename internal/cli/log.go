package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/sacis/internal/adapters/export"
	"github.com/example/sacis/internal/models"
	"github.com/example/sacis/internal/ports/primary"
	"github.com/example/sacis/internal/wire"
)

var logCmd = &cobra.Command{
	Use:               "log",
	Short:             "View the audit log",
	Long:              "View, follow, and export the audit trail of satellite, zone, and assignment changes",
	PersistentPreRunE: requireStore,
}

func logFilters(cmd *cobra.Command) primary.LogFilters {
	limit, _ := cmd.Flags().GetInt("limit")
	entityType, _ := cmd.Flags().GetString("type")
	return primary.LogFilters{EntityType: entityType, Limit: limit}
}

// exportFilters is logFilters without the default cap: an export holds
// every matching entry unless --limit is given.
func exportFilters(cmd *cobra.Command) primary.LogFilters {
	filters := logFilters(cmd)
	if !cmd.Flags().Changed("limit") {
		filters.Limit = models.NoLogLimit
	}
	return filters
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent activity, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.LogAdapter(cmd.OutOrStdout()).List(NewContext(), logFilters(cmd))
	},
}

var logTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Show recent activity, oldest first",
	Long: `Show recent activity oldest first. With --follow, keep polling and print
new entries as they are recorded until interrupted.

Examples:
  sacis log tail --follow
  sacis log tail --follow --type assignment --metrics-addr :9464`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		follow, _ := cmd.Flags().GetBool("follow")
		interval, _ := cmd.Flags().GetDuration("interval")
		metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

		if interval <= 0 {
			return fmt.Errorf("--interval must be positive, got %s", interval)
		}

		ctx := NewContext()
		if !follow {
			lastID, err := wire.LogAdapter(cmd.OutOrStdout()).Backlog(ctx, logFilters(cmd))
			if err != nil {
				return err
			}
			if lastID == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No log entries found")
			}
			return nil
		}

		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		if metricsAddr != "" {
			shutdown := serveMetrics(metricsAddr)
			defer shutdown()
		}

		return wire.LogAdapter(cmd.OutOrStdout()).Tail(ctx, logFilters(cmd), interval)
	},
}

// serveMetrics exposes store metrics on addr until the returned func is called.
func serveMetrics(addr string) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", wire.MetricsHandler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	logger := wire.Logger()
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", zap.String("addr", addr), zap.Error(err))
		}
	}()
	logger.Info("serving metrics", zap.String("addr", addr))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

var logExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the audit log to XLSX or CSV",
	Long: `Export audit log entries, most recent first. Every matching entry is
exported unless --limit is given.

Examples:
  sacis log export --out audit.xlsx
  sacis log export --format csv --type zone --limit 1000 > zones.csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		formatFlag, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")

		format, err := export.ParseFormat(formatFlag)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		var f *os.File
		if outPath != "" {
			f, err = os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outPath, err)
			}
			defer func() {
				if f != nil {
					_ = f.Close()
				}
			}()
			out = f
		} else if format == export.FormatXLSX {
			return fmt.Errorf("xlsx export needs --out; use --format csv to write to stdout")
		}

		n, err := wire.LogAdapter(cmd.OutOrStdout()).Export(NewContext(), out, format, exportFilters(cmd))
		if err != nil {
			return fmt.Errorf("failed to export logs: %w", err)
		}

		if f != nil {
			err := f.Close()
			f = nil
			if err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %d log entries to %s\n", n, outPath)
		}
		return nil
	},
}

// LogCmd returns the log command
func LogCmd() *cobra.Command {
	for _, c := range []*cobra.Command{logListCmd, logTailCmd, logExportCmd} {
		c.Flags().StringP("type", "t", "", "Only entries for one entity: satellite, zone, assignment")
	}
	logListCmd.Flags().IntP("limit", "n", 0, "Maximum number of entries (default 100)")
	logTailCmd.Flags().IntP("limit", "n", 0, "Maximum number of backlog entries (default 100)")
	logExportCmd.Flags().IntP("limit", "n", 0, "Maximum number of entries (default: all)")
	logTailCmd.Flags().BoolP("follow", "f", false, "Keep polling for new entries")
	logTailCmd.Flags().Duration("interval", time.Second, "Polling interval with --follow")
	logTailCmd.Flags().String("metrics-addr", "", "Serve Prometheus store metrics on this address while following")
	logExportCmd.Flags().String("format", string(export.FormatXLSX), "Export format: xlsx or csv")
	logExportCmd.Flags().StringP("out", "o", "", "Output file (required for xlsx)")

	logCmd.AddCommand(logListCmd)
	logCmd.AddCommand(logTailCmd)
	logCmd.AddCommand(logExportCmd)

	return logCmd
}
