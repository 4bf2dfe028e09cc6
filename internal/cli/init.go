package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/sacis/internal/config"
	"github.com/example/sacis/internal/wire"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the SACIS store and operator profile",
		Long: `Create or upgrade the store schema, register the operator, and write
~/.sacis/config.json so later commands are attributed to that operator.

Safe to re-run: existing tables and users are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ctx := cmd.Context()

			if err := wire.EnsureSchema(ctx); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}
			version, err := wire.Connector().SchemaVersion(ctx)
			if err != nil {
				return fmt.Errorf("failed to read schema version: %w", err)
			}
			fmt.Fprintf(out, "✓ Store ready (%s, schema v%d)\n", wire.Connector().Dialect(), version)

			user, err := wire.OperatorService().EnsureOperator(ctx, username)
			if err != nil {
				return fmt.Errorf("failed to register operator: %w", err)
			}
			fmt.Fprintf(out, "✓ Operator %s (user %d)\n", user.Username, user.ID)

			home, err := config.HomeDir()
			if err != nil {
				return err
			}
			cfg := &config.Config{
				Version:  config.ProfileVersion,
				UserID:   user.ID,
				Username: user.Username,
			}
			if err := config.SaveConfig(home, cfg); err != nil {
				return fmt.Errorf("failed to save profile: %w", err)
			}
			fmt.Fprintln(out, "✓ Profile written to ~/.sacis/config.json")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  sacis satellite create SAT-1")
			fmt.Fprintln(out, "  sacis zone create \"North\" --priority HIGH")
			fmt.Fprintln(out, "  sacis assignment create --satellite 1 --zone 1")

			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Operator name (required)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
