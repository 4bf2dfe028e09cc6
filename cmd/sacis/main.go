package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/sacis/internal/cli"
	"github.com/example/sacis/internal/version"
	"github.com/example/sacis/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "sacis",
		Short:   "SACIS - Satellite coverage assignment console",
		Version: version.String(),
		Long: `SACIS keeps the registry of satellites and coverage zones, assigns
satellites to zones, and records every change in an audit log.

Store selection comes from SACIS_DB_DRIVER and SACIS_DB_DSN (default:
SQLite at ~/.sacis/sacis.db).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	// Entity commands
	rootCmd.AddCommand(cli.SatelliteCmd())
	rootCmd.AddCommand(cli.ZoneCmd())
	rootCmd.AddCommand(cli.AssignmentCmd())
	rootCmd.AddCommand(cli.LogCmd())

	err := rootCmd.Execute()
	_ = wire.Logger().Sync()
	_ = wire.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
