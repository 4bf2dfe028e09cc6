package app

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/example/sacis/internal/models"
	"github.com/example/sacis/internal/ports/primary"
	"github.com/example/sacis/internal/ports/secondary"
)

// mockZoneRepository implements secondary.ZoneRepository for testing.
type mockZoneRepository struct {
	zones     []*models.Zone
	updates   []secondary.ZonePatch
	createErr error
	updateErr error
	deleteErr error
}

func newMockZoneRepository() *mockZoneRepository {
	return &mockZoneRepository{}
}

func (m *mockZoneRepository) Create(ctx context.Context, zone *models.Zone) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	stored := *zone
	stored.ID = int64(len(m.zones) + 1)
	m.zones = append(m.zones, &stored)
	return stored.ID, nil
}

func (m *mockZoneRepository) List(ctx context.Context) ([]*models.Zone, error) {
	return m.zones, nil
}

func (m *mockZoneRepository) Update(ctx context.Context, id int64, patch secondary.ZonePatch) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates = append(m.updates, patch)
	return nil
}

func (m *mockZoneRepository) Delete(ctx context.Context, id int64) error {
	return m.deleteErr
}

func newTestZoneService() (*ZoneServiceImpl, *mockZoneRepository, *mockLogRepository) {
	zoneRepo := newMockZoneRepository()
	logRepo := newMockLogRepository()
	return NewZoneService(zoneRepo, logRepo, zap.NewNop()), zoneRepo, logRepo
}

func TestCreateZone_AppliesDefaults(t *testing.T) {
	service, zoneRepo, logRepo := newTestZoneService()

	resp, err := service.CreateZone(context.Background(), primary.CreateZoneRequest{Name: "Zona Norte"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.ZoneID != 1 || resp.Zone.Priority != models.ZonePriorityMedium || resp.Zone.Restricted {
		t.Errorf("unexpected response %+v", resp.Zone)
	}
	if zoneRepo.zones[0].PolygonGeo != nil {
		t.Error("expected no polygon")
	}

	entry := logRepo.last(t)
	if entry.EventType != models.EventZoneCreate || entry.Details != "Created zone: Zona Norte" {
		t.Errorf("unexpected audit entry %+v", entry)
	}
}

func TestCreateZone_InvalidPriorityRejected(t *testing.T) {
	service, zoneRepo, logRepo := newTestZoneService()

	_, err := service.CreateZone(context.Background(), primary.CreateZoneRequest{Name: "Z", Priority: "ALTA"})
	if !errors.Is(err, primary.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(zoneRepo.zones) != 0 || len(logRepo.entries) != 0 {
		t.Error("expected nothing to be written")
	}
}

func TestCreateZone_Restricted(t *testing.T) {
	service, zoneRepo, _ := newTestZoneService()
	polygon := `{"type":"Polygon","coordinates":[]}`

	_, err := service.CreateZone(context.Background(), primary.CreateZoneRequest{
		Name:       "Base",
		PolygonGeo: &polygon,
		Priority:   models.ZonePriorityCritical,
		Restricted: ptr(true),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !zoneRepo.zones[0].Restricted || *zoneRepo.zones[0].PolygonGeo != polygon {
		t.Errorf("unexpected stored zone %+v", zoneRepo.zones[0])
	}
}

func TestUpdateZone(t *testing.T) {
	service, zoneRepo, logRepo := newTestZoneService()

	err := service.UpdateZone(context.Background(), primary.UpdateZoneRequest{
		ZoneID:     3,
		Priority:   ptr(models.ZonePriorityHigh),
		Restricted: ptr(true),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(zoneRepo.updates) != 1 {
		t.Fatalf("expected 1 update, got %d", len(zoneRepo.updates))
	}
	if zoneRepo.updates[0].Name != nil {
		t.Error("expected name to be left alone")
	}
	want := "Zone 3 updated: priority=HIGH, restricted=true"
	if got := logRepo.last(t).Details; got != want {
		t.Errorf("expected details %q, got %q", want, got)
	}
}

func TestUpdateZone_Rename(t *testing.T) {
	service, _, logRepo := newTestZoneService()

	if err := service.UpdateZone(context.Background(), primary.UpdateZoneRequest{ZoneID: 1, Name: ptr("Zona Sur")}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := logRepo.last(t).Details; got != "Zone 1 renamed to Zona Sur" {
		t.Errorf("unexpected details %q", got)
	}
}

func TestUpdateZone_TrimsName(t *testing.T) {
	service, zoneRepo, logRepo := newTestZoneService()

	if err := service.UpdateZone(context.Background(), primary.UpdateZoneRequest{ZoneID: 1, Name: ptr("  Zona Sur \t")}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(zoneRepo.updates) != 1 || *zoneRepo.updates[0].Name != "Zona Sur" {
		t.Errorf("expected trimmed name in patch, got %+v", zoneRepo.updates)
	}
	if got := logRepo.last(t).Details; got != "Zone 1 renamed to Zona Sur" {
		t.Errorf("unexpected details %q", got)
	}
}

func TestUpdateZone_EmptyRequestIsNoOp(t *testing.T) {
	service, zoneRepo, logRepo := newTestZoneService()

	if err := service.UpdateZone(context.Background(), primary.UpdateZoneRequest{ZoneID: 1}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(zoneRepo.updates) != 0 || len(logRepo.entries) != 0 {
		t.Error("expected no writes")
	}
}

func TestDeleteZone(t *testing.T) {
	service, _, logRepo := newTestZoneService()

	if err := service.DeleteZone(context.Background(), 4); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	entry := logRepo.last(t)
	if entry.EventType != models.EventZoneDelete || entry.Details != "Zone 4 deleted" {
		t.Errorf("unexpected audit entry %+v", entry)
	}
}

func TestDeleteZone_StoreErrorSkipsAudit(t *testing.T) {
	service, zoneRepo, logRepo := newTestZoneService()
	zoneRepo.deleteErr = errors.New("referenced")

	if err := service.DeleteZone(context.Background(), 1); err == nil {
		t.Fatal("expected error")
	}
	if len(logRepo.entries) != 0 {
		t.Error("expected no audit entry")
	}
}
