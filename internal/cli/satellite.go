package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/sacis/internal/ports/primary"
	"github.com/example/sacis/internal/wire"
)

var satelliteCmd = &cobra.Command{
	Use:               "satellite",
	Short:             "Manage satellites",
	Long:              "Create, list, update, and delete satellites in the SACIS registry",
	PersistentPreRunE: requireStore,
}

var satelliteCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Register a new satellite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		status, _ := cmd.Flags().GetString("status")

		req := primary.CreateSatelliteRequest{
			Name:      args[0],
			Status:    status,
			Available: changedBool(cmd, "available"),
		}
		if s := changedString(cmd, "telemetry"); s != nil && *s != "none" {
			t, err := parseTelemetry(*s)
			if err != nil {
				return err
			}
			req.LastTelemetry = &t
		}
		if s := changedString(cmd, "orbit"); s != nil {
			orbit, err := parseOrbit(*s)
			if err != nil {
				return err
			}
			req.OrbitParams = orbit
		}

		return wire.SatelliteAdapter(cmd.OutOrStdout()).Create(ctx, req)
	},
}

var satelliteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List satellites",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.SatelliteAdapter(cmd.OutOrStdout()).List(NewContext())
	},
}

var satelliteUpdateCmd = &cobra.Command{
	Use:   "update [satellite-id]",
	Short: "Update satellite fields",
	Long: `Update only the fields whose flags are given.

Examples:
  sacis satellite update 3 --status offline --available=false
  sacis satellite update 3 --telemetry 2024-05-01T12:00:00Z
  sacis satellite update 3 --telemetry none --orbit ""   # clear both`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "satellite")
		if err != nil {
			return err
		}

		req := primary.UpdateSatelliteRequest{
			SatelliteID: id,
			Name:        changedString(cmd, "name"),
			Status:      changedString(cmd, "status"),
			Available:   changedBool(cmd, "available"),
		}
		if s := changedString(cmd, "telemetry"); s != nil {
			t, err := parseTelemetry(*s)
			if err != nil {
				return err
			}
			req.LastTelemetry = &t
		}
		if s := changedString(cmd, "orbit"); s != nil {
			orbit, err := parseOrbit(*s)
			if err != nil {
				return err
			}
			req.OrbitParams = &orbit
		}

		return wire.SatelliteAdapter(cmd.OutOrStdout()).Update(NewContext(), req)
	},
}

var satelliteDeleteCmd = &cobra.Command{
	Use:   "delete [satellite-id]",
	Short: "Delete a satellite",
	Long:  "Delete a satellite. A satellite still referenced by assignments cannot be deleted.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "satellite")
		if err != nil {
			return err
		}
		return wire.SatelliteAdapter(cmd.OutOrStdout()).Delete(NewContext(), id)
	},
}

// SatelliteCmd returns the satellite command
func SatelliteCmd() *cobra.Command {
	// Add flags
	satelliteCreateCmd.Flags().StringP("status", "s", "", "Operational status (default: operational)")
	satelliteCreateCmd.Flags().String("telemetry", "", "Last telemetry time (RFC 3339)")
	satelliteCreateCmd.Flags().String("orbit", "", "Orbit parameters as a JSON document")
	satelliteCreateCmd.Flags().Bool("available", true, "Whether the satellite can take assignments")

	satelliteUpdateCmd.Flags().StringP("name", "n", "", "New name")
	satelliteUpdateCmd.Flags().StringP("status", "s", "", "New status")
	satelliteUpdateCmd.Flags().String("telemetry", "", "Last telemetry time (RFC 3339, or 'none' to clear)")
	satelliteUpdateCmd.Flags().String("orbit", "", "Orbit parameters as JSON (empty to clear)")
	satelliteUpdateCmd.Flags().Bool("available", true, "Whether the satellite can take assignments")

	// Add subcommands
	satelliteCmd.AddCommand(satelliteCreateCmd)
	satelliteCmd.AddCommand(satelliteListCmd)
	satelliteCmd.AddCommand(satelliteUpdateCmd)
	satelliteCmd.AddCommand(satelliteDeleteCmd)

	return satelliteCmd
}
