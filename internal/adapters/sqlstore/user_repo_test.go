package sqlstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/sacis/internal/adapters/sqlstore"
	"github.com/example/sacis/internal/db"
	"github.com/example/sacis/internal/models"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlstore.NewUserRepository(conn)
	ctx := context.Background()

	id, err := repo.Create(ctx, &models.User{Username: "ana", Role: "operator"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	user, err := repo.GetByUsername(ctx, "ana")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if user == nil {
		t.Fatal("expected user, got nil")
	}
	if user.ID != id || user.Role != "operator" {
		t.Errorf("unexpected user: %+v", user)
	}
	if user.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestUserRepository_GetMissing(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlstore.NewUserRepository(conn)

	user, err := repo.GetByUsername(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if user != nil {
		t.Errorf("expected nil, got %+v", user)
	}
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlstore.NewUserRepository(conn)
	ctx := context.Background()

	repo.Create(ctx, &models.User{Username: "ana", Role: "operator"})
	_, err := repo.Create(ctx, &models.User{Username: "ana", Role: "admin"})
	if !errors.Is(err, db.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlstore.NewUserRepository(conn)
	ctx := context.Background()

	id, err := repo.Create(ctx, &models.User{Username: "ana", Role: "operator"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if user == nil || user.Username != "ana" {
		t.Fatalf("expected ana, got %+v", user)
	}

	missing, err := repo.GetByID(ctx, 42)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing user, got %+v", missing)
	}
}
