package repository

import (
	"context"
	"testing"

	"github.com/VISHALLkandharee/Room-Finder/internal/model"
	"github.com/lib/pq"
)

func createRoomFixture(t *testing.T, repo *RoomRepository, prefix, ownerID, title, location string, rent int, pt model.PropertyType, tp model.TenantPreference) *model.Room {
	t.Helper()

	room := &model.Room{
		OwnerID:          ownerID,
		Title:            prefix + "_" + title,
		Location:         location,
		City:             "Bangalore",
		RentPrice:        rent,
		PropertyType:     pt,
		TenantPreference: tp,
		ContactNumber:    "+91 9876543210",
		Images:           pq.StringArray{"https://img.test.example.com/1.jpg", "https://img.test.example.com/2.jpg"},
	}
	if err := repo.Create(context.Background(), room); err != nil {
		t.Fatalf("Failed to create room fixture: %v", err)
	}
	return room
}

func TestRoomRepository_CreateAndGet(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	owner := CreateIsolatedTestUser(t, db, prefix, "owner", true)
	repo := NewRoomRepository(db)

	created := createRoomFixture(t, repo, prefix, owner.ID, "Cozy 1BHK", "Koramangala", 12000, model.PropertyType1BHK, model.TenantPreferenceBachelor)

	if created.ID == 0 {
		t.Error("Expected room ID to be assigned")
	}
	if created.CreatedAt.IsZero() {
		t.Error("Expected created_at to be assigned")
	}

	found, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Failed to get room: %v", err)
	}
	if found.Title != created.Title {
		t.Errorf("Expected title '%s', got '%s'", created.Title, found.Title)
	}
	if len(found.Images) != 2 || found.Images[0] != created.Images[0] {
		t.Errorf("Expected images to round-trip in order, got %v", found.Images)
	}
}

func TestRoomRepository_GetByID_NotFound(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	repo := NewRoomRepository(db)

	if _, err := repo.GetByID(context.Background(), 999999999); err != ErrRoomNotFound {
		t.Errorf("Expected ErrRoomNotFound, got %v", err)
	}
}

func TestRoomRepository_ListFiltered(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	owner := CreateIsolatedTestUser(t, db, prefix, "owner", true)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	// Fixture of 5 rooms; only the first two satisfy all four predicates
	// of the filter below.
	match1 := createRoomFixture(t, repo, prefix, owner.ID, "Match early", "Koramangala 4th Block", 8000, model.PropertyType1BHK, model.TenantPreferenceBachelor)
	match2 := createRoomFixture(t, repo, prefix, owner.ID, "Match late", "koramangala", 15000, model.PropertyType1BHK, model.TenantPreferenceFamily)
	createRoomFixture(t, repo, prefix, owner.ID, "Wrong area", "Indiranagar", 9000, model.PropertyType1BHK, model.TenantPreferenceBachelor)
	createRoomFixture(t, repo, prefix, owner.ID, "Too expensive", "Koramangala", 25000, model.PropertyType1BHK, model.TenantPreferenceGirls)
	createRoomFixture(t, repo, prefix, owner.ID, "Wrong type", "Koramangala", 10000, model.PropertyType2BHK, model.TenantPreferenceWorking)

	filter := &RoomFilter{
		Location:     "Koramangala",
		MinPrice:     intPtr(5000),
		MaxPrice:     intPtr(15000),
		PropertyType: "1BHK",
	}

	rooms, err := repo.List(ctx, filter)
	if err != nil {
		t.Fatalf("Failed to list rooms: %v", err)
	}

	// Other tests may run in parallel, so only count our prefix.
	var matched []*model.Room
	for _, r := range rooms {
		if len(r.Title) > len(prefix) && r.Title[:len(prefix)] == prefix {
			matched = append(matched, r)
		}
	}

	if len(matched) != 2 {
		t.Fatalf("Expected exactly 2 matching rooms, got %d", len(matched))
	}
	// Newest first: match2 was inserted after match1.
	if matched[0].ID != match2.ID || matched[1].ID != match1.ID {
		t.Errorf("Expected newest-first order [%d %d], got [%d %d]",
			match2.ID, match1.ID, matched[0].ID, matched[1].ID)
	}
}

func TestRoomRepository_ListByOwner(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	alice := CreateIsolatedTestUser(t, db, prefix, "alice", true)
	bob := CreateIsolatedTestUser(t, db, prefix, "bob", true)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	createRoomFixture(t, repo, prefix, alice.ID, "Alices room", "HSR Layout", 10000, model.PropertyType1Bed, model.TenantPreferenceWorking)
	createRoomFixture(t, repo, prefix, bob.ID, "Bobs room", "HSR Layout", 11000, model.PropertyType2Bed, model.TenantPreferenceFamily)

	rooms, err := repo.ListByOwner(ctx, alice.ID)
	if err != nil {
		t.Fatalf("Failed to list rooms by owner: %v", err)
	}

	if len(rooms) != 1 {
		t.Fatalf("Expected 1 room for alice, got %d", len(rooms))
	}
	if rooms[0].OwnerID != alice.ID {
		t.Errorf("Expected owner %s, got %s", alice.ID, rooms[0].OwnerID)
	}
}

func TestRoomRepository_DeleteTwice(t *testing.T) {
	db, prefix := SetupIsolatedTestDB(t)
	defer db.Close()
	defer CleanupTestDataByPrefix(t, db, prefix)

	owner := CreateIsolatedTestUser(t, db, prefix, "owner", true)
	repo := NewRoomRepository(db)
	ctx := context.Background()

	room := CreateIsolatedTestRoom(t, db, prefix, owner.ID, "Doomed room", 7000)

	if err := repo.Delete(ctx, room.ID); err != nil {
		t.Fatalf("Failed to delete room: %v", err)
	}

	// Delete is not idempotent: the second call must report the row gone.
	if err := repo.Delete(ctx, room.ID); err != ErrRoomNotFound {
		t.Errorf("Expected ErrRoomNotFound on second delete, got %v", err)
	}

	if _, err := repo.GetByID(ctx, room.ID); err != ErrRoomNotFound {
		t.Errorf("Expected ErrRoomNotFound after delete, got %v", err)
	}
}
