package cli

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := parseID(" 42 ", "satellite")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "0", "-3", "SAT-7", "1.5"} {
		_, err := parseID(bad, "satellite")
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseID_MessageNamesEntity(t *testing.T) {
	_, err := parseID("north", "zone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid zone ID 'north'")
	assert.Contains(t, err.Error(), "sacis zone list")
}

func TestParseTelemetry(t *testing.T) {
	got, err := parseTelemetry("2024-05-01T12:00:00Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	got, err = parseTelemetry("none")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = parseTelemetry("yesterday")
	assert.Error(t, err)
}

func TestParseOrbit(t *testing.T) {
	got, err := parseOrbit(`{"alt_km": 550}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"alt_km": 550}`, string(got))

	got, err = parseOrbit("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseOrbit("{alt_km")
	assert.Error(t, err)
}

func TestChangedFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.Flags().String("name", "", "")
	cmd.Flags().String("status", "", "")
	cmd.Flags().Bool("available", true, "")
	cmd.Flags().Int("every", 0, "")
	cmd.Flags().Int64("zone", 0, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--name", "", "--available=false", "--zone", "4"}))

	name := changedString(cmd, "name")
	require.NotNil(t, name)
	assert.Equal(t, "", *name)
	assert.Nil(t, changedString(cmd, "status"))

	available := changedBool(cmd, "available")
	require.NotNil(t, available)
	assert.False(t, *available)

	assert.Nil(t, changedInt(cmd, "every"))
	zone := changedInt64(cmd, "zone")
	require.NotNil(t, zone)
	assert.Equal(t, int64(4), *zone)
}
