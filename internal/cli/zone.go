package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/sacis/internal/ports/primary"
	"github.com/example/sacis/internal/wire"
)

var zoneCmd = &cobra.Command{
	Use:               "zone",
	Short:             "Manage coverage zones",
	Long:              "Create, list, update, and delete the geographic zones satellites cover",
	PersistentPreRunE: requireStore,
}

var zoneCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new zone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		priority, _ := cmd.Flags().GetString("priority")

		req := primary.CreateZoneRequest{
			Name:       args[0],
			PolygonGeo: changedString(cmd, "polygon"),
			Priority:   priority,
			Restricted: changedBool(cmd, "restricted"),
		}
		return wire.ZoneAdapter(cmd.OutOrStdout()).Create(NewContext(), req)
	},
}

var zoneListCmd = &cobra.Command{
	Use:   "list",
	Short: "List zones",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ZoneAdapter(cmd.OutOrStdout()).List(NewContext())
	},
}

var zoneUpdateCmd = &cobra.Command{
	Use:   "update [zone-id]",
	Short: "Update zone fields",
	Long: `Update only the fields whose flags are given.

Examples:
  sacis zone update 2 --priority HIGH --restricted
  sacis zone update 2 --polygon ""   # clear the geometry`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "zone")
		if err != nil {
			return err
		}

		req := primary.UpdateZoneRequest{
			ZoneID:     id,
			Name:       changedString(cmd, "name"),
			PolygonGeo: changedString(cmd, "polygon"),
			Priority:   changedString(cmd, "priority"),
			Restricted: changedBool(cmd, "restricted"),
		}
		return wire.ZoneAdapter(cmd.OutOrStdout()).Update(NewContext(), req)
	},
}

var zoneDeleteCmd = &cobra.Command{
	Use:   "delete [zone-id]",
	Short: "Delete a zone",
	Long:  "Delete a zone. A zone still referenced by assignments cannot be deleted.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "zone")
		if err != nil {
			return err
		}
		return wire.ZoneAdapter(cmd.OutOrStdout()).Delete(NewContext(), id)
	},
}

// ZoneCmd returns the zone command
func ZoneCmd() *cobra.Command {
	zoneCreateCmd.Flags().String("polygon", "", "Serialized zone geometry (e.g. WKT)")
	zoneCreateCmd.Flags().StringP("priority", "p", "", "Priority: CRITICAL, HIGH, MEDIUM, LOW (default: MEDIUM)")
	zoneCreateCmd.Flags().Bool("restricted", false, "Mark the zone as restricted")

	zoneUpdateCmd.Flags().StringP("name", "n", "", "New name")
	zoneUpdateCmd.Flags().String("polygon", "", "Serialized zone geometry (empty to clear)")
	zoneUpdateCmd.Flags().StringP("priority", "p", "", "New priority")
	zoneUpdateCmd.Flags().Bool("restricted", false, "Whether the zone is restricted")

	zoneCmd.AddCommand(zoneCreateCmd)
	zoneCmd.AddCommand(zoneListCmd)
	zoneCmd.AddCommand(zoneUpdateCmd)
	zoneCmd.AddCommand(zoneDeleteCmd)

	return zoneCmd
}
