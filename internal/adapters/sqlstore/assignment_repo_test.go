package sqlstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/sacis/internal/adapters/sqlstore"
	"github.com/example/sacis/internal/db"
	"github.com/example/sacis/internal/models"
	"github.com/example/sacis/internal/ports/secondary"
)

func TestAssignmentRepository_Create(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlstore.NewAssignmentRepository(conn)
	ctx := context.Background()

	userID := seedUser(t, conn, "ana")
	satID := seedSatellite(t, conn, "SAT-7")
	zoneID := seedZone(t, conn, "Zona Norte")

	before := time.Now().Add(-time.Minute)
	id, err := repo.Create(ctx, &models.Assignment{
		SatelliteID:      satID,
		ZoneID:           zoneID,
		FrequencyMinutes: 15,
		AssignedBy:       &userID,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	assignments, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(assignments) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(assignments))
	}
	got := assignments[0]
	if got.ID != id {
		t.Errorf("expected id %d, got %d", id, got.ID)
	}
	if got.FrequencyMinutes != 15 {
		t.Errorf("expected frequency 15, got %d", got.FrequencyMinutes)
	}
	if got.Status != models.AssignmentStatusPending {
		t.Errorf("expected status 'pending', got %q", got.Status)
	}
	if got.AssignedBy == nil || *got.AssignedBy != userID {
		t.Errorf("expected assigned_by %d, got %v", userID, got.AssignedBy)
	}
	if got.AssignedAt.Before(before) {
		t.Errorf("expected assigned_at to be set at creation, got %v", got.AssignedAt)
	}
}

func TestAssignmentRepository_CreateUnknownSatellite(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlstore.NewAssignmentRepository(conn)
	ctx := context.Background()

	zoneID := seedZone(t, conn, "Zona Norte")

	_, err := repo.Create(ctx, &models.Assignment{SatelliteID: 99, ZoneID: zoneID, FrequencyMinutes: 60})
	if !errors.Is(err, db.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}

	assignments, _ := repo.List(ctx)
	if len(assignments) != 0 {
		t.Errorf("expected no partial insert, got %d rows", len(assignments))
	}
}

func TestAssignmentRepository_UpdateStatusKeepsFrequency(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlstore.NewAssignmentRepository(conn)
	ctx := context.Background()

	id := seedAssignment(t, conn, seedSatellite(t, conn, "SAT-7"), seedZone(t, conn, "Zona Norte"))

	err := repo.Update(ctx, id, secondary.AssignmentPatch{Status: ptr(models.AssignmentStatusInProgress)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	assignments, _ := repo.List(ctx)
	got := assignments[0]
	if got.Status != models.AssignmentStatusInProgress {
		t.Errorf("expected status 'in_progress', got %q", got.Status)
	}
	if got.FrequencyMinutes != models.DefaultFrequencyMinutes {
		t.Errorf("expected frequency %d, got %d", models.DefaultFrequencyMinutes, got.FrequencyMinutes)
	}
}

func TestAssignmentRepository_UpdateMissingID(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlstore.NewAssignmentRepository(conn)
	ctx := context.Background()

	id := seedAssignment(t, conn, seedSatellite(t, conn, "SAT-7"), seedZone(t, conn, "Zona Norte"))

	err := repo.Update(ctx, 999, secondary.AssignmentPatch{Status: ptr(models.AssignmentStatusCompleted)})
	if err != nil {
		t.Fatalf("expected no error for missing id, got %v", err)
	}

	assignments, _ := repo.List(ctx)
	if len(assignments) != 1 || assignments[0].ID != id || assignments[0].Status != models.AssignmentStatusPending {
		t.Errorf("expected store unchanged, got %+v", assignments)
	}
}

func TestAssignmentRepository_CreateUnknownAssigner(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlstore.NewAssignmentRepository(conn)
	ctx := context.Background()

	stale := int64(42)
	_, err := repo.Create(ctx, &models.Assignment{
		SatelliteID:      seedSatellite(t, conn, "SAT-7"),
		ZoneID:           seedZone(t, conn, "Zona Norte"),
		FrequencyMinutes: models.DefaultFrequencyMinutes,
		AssignedBy:       &stale,
	})
	if !errors.Is(err, db.ErrStorage) {
		t.Fatalf("expected ErrStorage for unknown assigner, got %v", err)
	}
}

func TestAssignmentRepository_UpdateRejectedStatus(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlstore.NewAssignmentRepository(conn)

	id := seedAssignment(t, conn, seedSatellite(t, conn, ""), seedZone(t, conn, ""))

	err := repo.Update(context.Background(), id, secondary.AssignmentPatch{Status: ptr("cancelled")})
	if !errors.Is(err, db.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestAssignmentRepository_UpdateClearsAssignedBy(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlstore.NewAssignmentRepository(conn)
	ctx := context.Background()

	userID := seedUser(t, conn, "ana")
	id, _ := repo.Create(ctx, &models.Assignment{
		SatelliteID:      seedSatellite(t, conn, ""),
		ZoneID:           seedZone(t, conn, ""),
		FrequencyMinutes: 60,
		AssignedBy:       &userID,
	})

	if err := repo.Update(ctx, id, secondary.AssignmentPatch{AssignedBy: ptr(int64(0))}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	assignments, _ := repo.List(ctx)
	if assignments[0].AssignedBy != nil {
		t.Errorf("expected assigned_by cleared, got %d", *assignments[0].AssignedBy)
	}
}

func TestAssignmentRepository_UpdateEmptyPatchIsNoOp(t *testing.T) {
	repo := sqlstore.NewAssignmentRepository(brokenStore(t))

	if err := repo.Update(context.Background(), 1, secondary.AssignmentPatch{}); err != nil {
		t.Errorf("expected empty patch to be a no-op, got %v", err)
	}
}

func TestAssignmentRepository_Delete(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlstore.NewAssignmentRepository(conn)
	ctx := context.Background()

	satID := seedSatellite(t, conn, "")
	zoneID := seedZone(t, conn, "")
	first := seedAssignment(t, conn, satID, zoneID)
	second := seedAssignment(t, conn, satID, zoneID)

	if err := repo.Delete(ctx, first); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(ctx, 999); err != nil {
		t.Fatalf("expected no error deleting missing id, got %v", err)
	}

	assignments, _ := repo.List(ctx)
	if len(assignments) != 1 || assignments[0].ID != second {
		t.Errorf("expected only assignment %d to remain, got %+v", second, assignments)
	}
}

// Create SAT-7 and Zona Norte, assign them, then start the assignment.
func TestRepositories_CoverageScenario(t *testing.T) {
	conn := setupTestDB(t)
	satellites := sqlstore.NewSatelliteRepository(conn)
	zones := sqlstore.NewZoneRepository(conn)
	assignments := sqlstore.NewAssignmentRepository(conn)
	ctx := context.Background()

	satID, err := satellites.Create(ctx, &models.Satellite{
		Name:      "SAT-7",
		Status:    models.DefaultSatelliteStatus,
		Available: models.DefaultSatelliteAvailable,
	})
	if err != nil || satID != 1 {
		t.Fatalf("expected satellite id 1, got %d (err %v)", satID, err)
	}
	zoneID, err := zones.Create(ctx, &models.Zone{
		Name:       "Zona Norte",
		Priority:   models.DefaultZonePriority,
		Restricted: models.DefaultZoneRestricted,
	})
	if err != nil || zoneID != 1 {
		t.Fatalf("expected zone id 1, got %d (err %v)", zoneID, err)
	}
	assignmentID, err := assignments.Create(ctx, &models.Assignment{
		SatelliteID:      satID,
		ZoneID:           zoneID,
		FrequencyMinutes: models.DefaultFrequencyMinutes,
	})
	if err != nil || assignmentID != 1 {
		t.Fatalf("expected assignment id 1, got %d (err %v)", assignmentID, err)
	}

	sats, _ := satellites.List(ctx)
	if sats[0].Status != "operational" || !sats[0].Available {
		t.Errorf("unexpected satellite defaults: %+v", sats[0])
	}
	zs, _ := zones.List(ctx)
	if zs[0].Priority != "MEDIUM" {
		t.Errorf("expected priority MEDIUM, got %q", zs[0].Priority)
	}

	err = assignments.Update(ctx, assignmentID, secondary.AssignmentPatch{Status: ptr(models.AssignmentStatusInProgress)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	as, _ := assignments.List(ctx)
	if as[0].Status != "in_progress" {
		t.Errorf("expected status in_progress, got %q", as[0].Status)
	}
	if as[0].FrequencyMinutes != 60 {
		t.Errorf("expected frequency 60, got %d", as[0].FrequencyMinutes)
	}
}
