package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	coresatellite "github.com/example/sacis/internal/core/satellite"
	"github.com/example/sacis/internal/models"
	"github.com/example/sacis/internal/ports/primary"
	"github.com/example/sacis/internal/ports/secondary"
)

// SatelliteServiceImpl implements the SatelliteService interface.
type SatelliteServiceImpl struct {
	satelliteRepo secondary.SatelliteRepository
	audit         *auditor
}

// NewSatelliteService creates a new SatelliteService with injected dependencies.
func NewSatelliteService(
	satelliteRepo secondary.SatelliteRepository,
	logRepo secondary.LogRepository,
	logger *zap.Logger,
) *SatelliteServiceImpl {
	return &SatelliteServiceImpl{
		satelliteRepo: satelliteRepo,
		audit:         newAuditor(logRepo, logger),
	}
}

// CreateSatellite creates a satellite, applying defaults for omitted fields.
func (s *SatelliteServiceImpl) CreateSatellite(ctx context.Context, req primary.CreateSatelliteRequest) (*primary.CreateSatelliteResponse, error) {
	guard := coresatellite.CanCreateSatellite(coresatellite.CreateSatelliteContext{Name: req.Name})
	if !guard.Allowed {
		return nil, rejected(guard.Reason)
	}

	sat := &models.Satellite{
		Name:          strings.TrimSpace(req.Name),
		Status:        req.Status,
		LastTelemetry: req.LastTelemetry,
		OrbitParams:   req.OrbitParams,
		Available:     models.DefaultSatelliteAvailable,
	}
	if sat.Status == "" {
		sat.Status = models.DefaultSatelliteStatus
	}
	if req.Available != nil {
		sat.Available = *req.Available
	}

	id, err := s.satelliteRepo.Create(ctx, sat)
	if err != nil {
		return nil, err
	}
	sat.ID = id

	resp := &primary.CreateSatelliteResponse{SatelliteID: id, Satellite: sat}
	return resp, s.audit.record(ctx, models.EventSatelliteCreate, fmt.Sprintf("Created satellite: %s", sat.Name))
}

// ListSatellites lists every satellite ordered by ID.
func (s *SatelliteServiceImpl) ListSatellites(ctx context.Context) ([]*models.Satellite, error) {
	return s.satelliteRepo.List(ctx)
}

// UpdateSatellite changes the fields set in req.
func (s *SatelliteServiceImpl) UpdateSatellite(ctx context.Context, req primary.UpdateSatelliteRequest) error {
	req.Name = trimmed(req.Name)
	guard := coresatellite.CanUpdateSatellite(coresatellite.UpdateSatelliteContext{
		SatelliteID: req.SatelliteID,
		Name:        req.Name,
	})
	if !guard.Allowed {
		return rejected(guard.Reason)
	}

	patch := secondary.SatellitePatch{
		Name:          req.Name,
		Status:        req.Status,
		LastTelemetry: req.LastTelemetry,
		OrbitParams:   req.OrbitParams,
		Available:     req.Available,
	}
	if patch.IsEmpty() {
		return nil
	}

	if err := s.satelliteRepo.Update(ctx, req.SatelliteID, patch); err != nil {
		return err
	}
	return s.audit.record(ctx, models.EventSatelliteUpdate, describeSatelliteUpdate(req))
}

// DeleteSatellite deletes a satellite.
func (s *SatelliteServiceImpl) DeleteSatellite(ctx context.Context, satelliteID int64) error {
	if err := s.satelliteRepo.Delete(ctx, satelliteID); err != nil {
		return err
	}
	return s.audit.record(ctx, models.EventSatelliteDelete, fmt.Sprintf("Satellite %d deleted", satelliteID))
}

func describeSatelliteUpdate(req primary.UpdateSatelliteRequest) string {
	var c changes
	if req.Name != nil {
		c.add("name", *req.Name)
	}
	if req.Status != nil {
		c.add("status", *req.Status)
	}
	if req.LastTelemetry != nil {
		if req.LastTelemetry.IsZero() {
			c.add("last_telemetry", "none")
		} else {
			c.add("last_telemetry", req.LastTelemetry.UTC().Format("2006-01-02T15:04:05Z"))
		}
	}
	if req.OrbitParams != nil {
		c.add("orbit_params", "updated")
	}
	if req.Available != nil {
		c.add("available", *req.Available)
	}

	if len(c) == 1 && req.Name != nil {
		return fmt.Sprintf("Satellite %d renamed to %s", req.SatelliteID, *req.Name)
	}
	return fmt.Sprintf("Satellite %d updated: %s", req.SatelliteID, strings.Join(c, ", "))
}

// Ensure SatelliteServiceImpl implements the interface
var _ primary.SatelliteService = (*SatelliteServiceImpl)(nil)

// trimmed returns a copy of *v without surrounding whitespace, or nil.
func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}
