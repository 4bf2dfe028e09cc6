package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/sacis/internal/ports/primary"
)

// ZoneAdapter translates CLI operations to ZoneService calls.
type ZoneAdapter struct {
	service primary.ZoneService
	out     io.Writer
}

// NewZoneAdapter creates a new ZoneAdapter with the given service.
func NewZoneAdapter(service primary.ZoneService, out io.Writer) *ZoneAdapter {
	return &ZoneAdapter{service: service, out: out}
}

// Create creates a zone.
func (a *ZoneAdapter) Create(ctx context.Context, req primary.CreateZoneRequest) error {
	resp, err := a.service.CreateZone(ctx, req)
	if resp == nil {
		return err
	}
	return finish(a.out, err, "Created zone %d: %s (%s)", resp.ZoneID, resp.Zone.Name, resp.Zone.Priority)
}

// List prints every zone.
func (a *ZoneAdapter) List(ctx context.Context) error {
	zones, err := a.service.ListZones(ctx)
	if err != nil {
		return fmt.Errorf("failed to list zones: %w", err)
	}

	if len(zones) == 0 {
		fmt.Fprintln(a.out, "No zones found")
		return nil
	}

	w := newTable(a.out)
	fmt.Fprintln(w, "ID\tNAME\tPRIORITY\tRESTRICTED\tPOLYGON")
	for _, z := range zones {
		polygon := "-"
		if z.PolygonGeo != nil {
			polygon = *z.PolygonGeo
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			z.ID, z.Name, colorPriority(z.Priority), yesNo(z.Restricted), polygon)
	}
	return w.Flush()
}

// Update applies a partial update.
func (a *ZoneAdapter) Update(ctx context.Context, req primary.UpdateZoneRequest) error {
	if req.Name == nil && req.PolygonGeo == nil && req.Priority == nil && req.Restricted == nil {
		return fmt.Errorf("must specify at least one field to update")
	}
	err := a.service.UpdateZone(ctx, req)
	return finish(a.out, err, "Zone %d updated", req.ZoneID)
}

// Delete deletes a zone.
func (a *ZoneAdapter) Delete(ctx context.Context, zoneID int64) error {
	err := a.service.DeleteZone(ctx, zoneID)
	return finish(a.out, err, "Zone %d deleted", zoneID)
}
