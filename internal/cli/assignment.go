package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/sacis/internal/models"
	"github.com/example/sacis/internal/ports/primary"
	"github.com/example/sacis/internal/wire"
)

var assignmentCmd = &cobra.Command{
	Use:               "assignment",
	Aliases:           []string{"assign"},
	Short:             "Manage satellite-to-zone assignments",
	Long:              "Assign satellites to zones, track their progress, and remove them",
	PersistentPreRunE: requireStore,
}

var assignmentCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Assign a satellite to a zone",
	Long: `Assign a satellite to a zone. The acting operator is recorded as the assigner.

Examples:
  sacis assignment create --satellite 1 --zone 2
  sacis assignment create --satellite 1 --zone 2 --every 15`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		satelliteID, _ := cmd.Flags().GetInt64("satellite")
		zoneID, _ := cmd.Flags().GetInt64("zone")

		req := primary.CreateAssignmentRequest{
			SatelliteID:      satelliteID,
			ZoneID:           zoneID,
			FrequencyMinutes: changedInt(cmd, "every"),
		}
		return wire.AssignmentAdapter(cmd.OutOrStdout()).Create(NewContext(), req)
	},
}

var assignmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assignments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.AssignmentAdapter(cmd.OutOrStdout()).List(NewContext())
	},
}

var assignmentStartCmd = &cobra.Command{
	Use:   "start [assignment-id]",
	Short: "Mark an assignment in progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "assignment")
		if err != nil {
			return err
		}
		return wire.AssignmentAdapter(cmd.OutOrStdout()).Start(NewContext(), id)
	},
}

var assignmentCompleteCmd = &cobra.Command{
	Use:   "complete [assignment-id]",
	Short: "Mark an assignment completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "assignment")
		if err != nil {
			return err
		}
		return wire.AssignmentAdapter(cmd.OutOrStdout()).Complete(NewContext(), id)
	},
}

var assignmentUpdateCmd = &cobra.Command{
	Use:   "update [assignment-id]",
	Short: "Update assignment fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "assignment")
		if err != nil {
			return err
		}

		req := primary.UpdateAssignmentRequest{
			AssignmentID:     id,
			SatelliteID:      changedInt64(cmd, "satellite"),
			ZoneID:           changedInt64(cmd, "zone"),
			FrequencyMinutes: changedInt(cmd, "every"),
			Status:           changedString(cmd, "status"),
		}
		return wire.AssignmentAdapter(cmd.OutOrStdout()).Update(NewContext(), req)
	},
}

var assignmentDeleteCmd = &cobra.Command{
	Use:   "delete [assignment-id]",
	Short: "Delete an assignment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "assignment")
		if err != nil {
			return err
		}
		return wire.AssignmentAdapter(cmd.OutOrStdout()).Delete(NewContext(), id)
	},
}

// AssignmentCmd returns the assignment command
func AssignmentCmd() *cobra.Command {
	assignmentCreateCmd.Flags().Int64("satellite", 0, "Satellite ID (required)")
	assignmentCreateCmd.Flags().Int64("zone", 0, "Zone ID (required)")
	assignmentCreateCmd.Flags().Int("every", models.DefaultFrequencyMinutes, "Revisit frequency in minutes (must be positive)")
	_ = assignmentCreateCmd.MarkFlagRequired("satellite")
	_ = assignmentCreateCmd.MarkFlagRequired("zone")

	assignmentUpdateCmd.Flags().Int64("satellite", 0, "New satellite ID")
	assignmentUpdateCmd.Flags().Int64("zone", 0, "New zone ID")
	assignmentUpdateCmd.Flags().Int("every", 0, "New revisit frequency in minutes")
	assignmentUpdateCmd.Flags().StringP("status", "s", "",
		fmt.Sprintf("New status: %s, %s, %s",
			models.AssignmentStatusPending, models.AssignmentStatusInProgress, models.AssignmentStatusCompleted))

	assignmentCmd.AddCommand(assignmentCreateCmd)
	assignmentCmd.AddCommand(assignmentListCmd)
	assignmentCmd.AddCommand(assignmentStartCmd)
	assignmentCmd.AddCommand(assignmentCompleteCmd)
	assignmentCmd.AddCommand(assignmentUpdateCmd)
	assignmentCmd.AddCommand(assignmentDeleteCmd)

	return assignmentCmd
}
