package repository

import (
	"context"
	"testing"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	user := CreateIsolatedTestUser(t, db, prefix, "alice", false)

	repo := NewUserRepository(db)
	found, err := repo.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}

	if found.Username != user.Username {
		t.Errorf("Expected username '%s', got '%s'", user.Username, found.Username)
	}
	if found.IsAdmin {
		t.Error("Expected is_admin to be false")
	}
}

func TestUserRepository_SetAdmin(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	user := CreateIsolatedTestUser(t, db, prefix, "lister", false)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.SetAdmin(ctx, user.ID, true); err != nil {
		t.Fatalf("Failed to set admin flag: %v", err)
	}

	found, _ := repo.GetByID(ctx, user.ID)
	if !found.IsAdmin {
		t.Error("Expected is_admin to be true after SetAdmin")
	}
}

func TestUserRepository_ExistsByUsername(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	user := CreateIsolatedTestUser(t, db, prefix, "alice", false)
	repo := NewUserRepository(db)
	ctx := context.Background()

	exists, err := repo.ExistsByUsername(ctx, user.Username)
	if err != nil {
		t.Fatalf("Failed to check username: %v", err)
	}
	if !exists {
		t.Error("Expected username to exist")
	}

	exists, _ = repo.ExistsByUsername(ctx, prefix+"_nobody")
	if exists {
		t.Error("Expected unknown username to not exist")
	}
}
