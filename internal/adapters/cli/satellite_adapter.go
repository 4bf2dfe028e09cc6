package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/sacis/internal/ports/primary"
)

// SatelliteAdapter translates CLI operations to SatelliteService calls.
type SatelliteAdapter struct {
	service primary.SatelliteService
	out     io.Writer
}

// NewSatelliteAdapter creates a new SatelliteAdapter with the given service.
func NewSatelliteAdapter(service primary.SatelliteService, out io.Writer) *SatelliteAdapter {
	return &SatelliteAdapter{service: service, out: out}
}

// Create creates a satellite.
func (a *SatelliteAdapter) Create(ctx context.Context, req primary.CreateSatelliteRequest) error {
	resp, err := a.service.CreateSatellite(ctx, req)
	if resp == nil {
		return err
	}
	return finish(a.out, err, "Created satellite %d: %s", resp.SatelliteID, resp.Satellite.Name)
}

// List prints every satellite.
func (a *SatelliteAdapter) List(ctx context.Context) error {
	satellites, err := a.service.ListSatellites(ctx)
	if err != nil {
		return fmt.Errorf("failed to list satellites: %w", err)
	}

	if len(satellites) == 0 {
		fmt.Fprintln(a.out, "No satellites found")
		return nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tAVAILABLE\tLAST TELEMETRY\tORBIT")
	for _, s := range satellites {
		orbit := "-"
		if s.HasOrbitParams() {
			orbit = string(s.OrbitParams)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Name, colorSatelliteStatus(s.Status), yesNo(s.Available),
			formatOptionalTime(s.LastTelemetry), orbit)
	}
	return w.Flush()
}

// Update applies a partial update.
func (a *SatelliteAdapter) Update(ctx context.Context, req primary.UpdateSatelliteRequest) error {
	if req.Name == nil && req.Status == nil && req.LastTelemetry == nil &&
		req.OrbitParams == nil && req.Available == nil {
		return fmt.Errorf("must specify at least one field to update")
	}
	err := a.service.UpdateSatellite(ctx, req)
	return finish(a.out, err, "Satellite %d updated", req.SatelliteID)
}

// Delete deletes a satellite.
func (a *SatelliteAdapter) Delete(ctx context.Context, satelliteID int64) error {
	err := a.service.DeleteSatellite(ctx, satelliteID)
	return finish(a.out, err, "Satellite %d deleted", satelliteID)
}
