package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	corezone "github.com/example/sacis/internal/core/zone"
	"github.com/example/sacis/internal/models"
	"github.com/example/sacis/internal/ports/primary"
	"github.com/example/sacis/internal/ports/secondary"
)

// ZoneServiceImpl implements the ZoneService interface.
type ZoneServiceImpl struct {
	zoneRepo secondary.ZoneRepository
	audit    *auditor
}

// NewZoneService creates a new ZoneService with injected dependencies.
func NewZoneService(
	zoneRepo secondary.ZoneRepository,
	logRepo secondary.LogRepository,
	logger *zap.Logger,
) *ZoneServiceImpl {
	return &ZoneServiceImpl{
		zoneRepo: zoneRepo,
		audit:    newAuditor(logRepo, logger),
	}
}

// CreateZone creates a zone, applying defaults for omitted fields.
func (s *ZoneServiceImpl) CreateZone(ctx context.Context, req primary.CreateZoneRequest) (*primary.CreateZoneResponse, error) {
	zone := &models.Zone{
		Name:       strings.TrimSpace(req.Name),
		PolygonGeo: req.PolygonGeo,
		Priority:   req.Priority,
		Restricted: models.DefaultZoneRestricted,
	}
	if zone.Priority == "" {
		zone.Priority = models.DefaultZonePriority
	}
	if req.Restricted != nil {
		zone.Restricted = *req.Restricted
	}

	guard := corezone.CanCreateZone(corezone.CreateZoneContext{Name: zone.Name, Priority: zone.Priority})
	if !guard.Allowed {
		return nil, rejected(guard.Reason)
	}

	id, err := s.zoneRepo.Create(ctx, zone)
	if err != nil {
		return nil, err
	}
	zone.ID = id

	resp := &primary.CreateZoneResponse{ZoneID: id, Zone: zone}
	return resp, s.audit.record(ctx, models.EventZoneCreate, fmt.Sprintf("Created zone: %s", zone.Name))
}

// ListZones lists every zone ordered by ID.
func (s *ZoneServiceImpl) ListZones(ctx context.Context) ([]*models.Zone, error) {
	return s.zoneRepo.List(ctx)
}

// UpdateZone changes the fields set in req.
func (s *ZoneServiceImpl) UpdateZone(ctx context.Context, req primary.UpdateZoneRequest) error {
	req.Name = trimmed(req.Name)
	guard := corezone.CanUpdateZone(corezone.UpdateZoneContext{
		ZoneID:   req.ZoneID,
		Name:     req.Name,
		Priority: req.Priority,
	})
	if !guard.Allowed {
		return rejected(guard.Reason)
	}

	patch := secondary.ZonePatch{
		Name:       req.Name,
		PolygonGeo: req.PolygonGeo,
		Priority:   req.Priority,
		Restricted: req.Restricted,
	}
	if patch.IsEmpty() {
		return nil
	}

	if err := s.zoneRepo.Update(ctx, req.ZoneID, patch); err != nil {
		return err
	}
	return s.audit.record(ctx, models.EventZoneUpdate, describeZoneUpdate(req))
}

// DeleteZone deletes a zone.
func (s *ZoneServiceImpl) DeleteZone(ctx context.Context, zoneID int64) error {
	if err := s.zoneRepo.Delete(ctx, zoneID); err != nil {
		return err
	}
	return s.audit.record(ctx, models.EventZoneDelete, fmt.Sprintf("Zone %d deleted", zoneID))
}

func describeZoneUpdate(req primary.UpdateZoneRequest) string {
	var c changes
	if req.Name != nil {
		c.add("name", *req.Name)
	}
	if req.PolygonGeo != nil {
		if *req.PolygonGeo == "" {
			c.add("polygon_geo", "none")
		} else {
			c.add("polygon_geo", "updated")
		}
	}
	if req.Priority != nil {
		c.add("priority", *req.Priority)
	}
	if req.Restricted != nil {
		c.add("restricted", *req.Restricted)
	}

	if len(c) == 1 && req.Name != nil {
		return fmt.Sprintf("Zone %d renamed to %s", req.ZoneID, *req.Name)
	}
	return fmt.Sprintf("Zone %d updated: %s", req.ZoneID, strings.Join(c, ", "))
}

// Ensure ZoneServiceImpl implements the interface
var _ primary.ZoneService = (*ZoneServiceImpl)(nil)
