package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/sacis/internal/models"
)

func newLogFlagsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "export"}
	cmd.Flags().IntP("limit", "n", 0, "")
	cmd.Flags().StringP("type", "t", "", "")
	return cmd
}

func TestExportFilters_DefaultIsUncapped(t *testing.T) {
	cmd := newLogFlagsCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--type", "zone"}))

	filters := exportFilters(cmd)
	assert.Equal(t, models.NoLogLimit, filters.Limit)
	assert.Equal(t, "zone", filters.EntityType)

	// list keeps the default cap
	assert.Equal(t, 0, logFilters(cmd).Limit)
}

func TestExportFilters_ExplicitLimit(t *testing.T) {
	cmd := newLogFlagsCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"-n", "250"}))

	assert.Equal(t, 250, exportFilters(cmd).Limit)
}
