package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// parseID parses a numeric record ID from a positional argument.
func parseID(arg, entityType string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID '%s'. IDs are positive integers, see: sacis %s list", entityType, arg, entityType)
	}
	return id, nil
}

// parseTelemetry parses an RFC 3339 timestamp. "none" yields the zero
// time, which clears the stored value on update.
func parseTelemetry(s string) (time.Time, error) {
	if s == "none" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --telemetry '%s'. Use RFC 3339, e.g. 2024-05-01T12:00:00Z", s)
	}
	return t, nil
}

// parseOrbit checks that s is a JSON document. An empty string is
// returned as-is and clears the stored value on update.
func parseOrbit(s string) (json.RawMessage, error) {
	if s == "" {
		return json.RawMessage{}, nil
	}
	if !json.Valid([]byte(s)) {
		return nil, fmt.Errorf("invalid --orbit: not a JSON document")
	}
	return json.RawMessage(s), nil
}

// changedString returns a pointer to the flag value when the flag was set.
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// changedBool returns a pointer to the flag value when the flag was set.
func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

// changedInt returns a pointer to the flag value when the flag was set.
func changedInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

// changedInt64 returns a pointer to the flag value when the flag was set.
func changedInt64(cmd *cobra.Command, name string) *int64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt64(name)
	return &v
}
