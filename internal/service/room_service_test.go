package service

import (
	"context"
	"testing"

	"github.com/VISHALLkandharee/Room-Finder/internal/model"
	apperrors "github.com/VISHALLkandharee/Room-Finder/internal/pkg/errors"
	"github.com/VISHALLkandharee/Room-Finder/internal/repository"
	"go.uber.org/zap"
)

func validCreateInput() *CreateRoomInput {
	return &CreateRoomInput{
		Title:            "Sunny 1BHK near metro",
		Description:      "South facing, semi furnished",
		Location:         "Koramangala",
		City:             "Bangalore",
		RentPrice:        12000,
		PropertyType:     "1BHK",
		TenantPreference: "Bachelor",
		ContactNumber:    "+91 9876543210",
		Images:           []string{"https://img.test.example.com/cover.jpg"},
	}
}

func TestCreateRoomInputValidate(t *testing.T) {
	if errs := validCreateInput().validate(); errs.HasErrors() {
		t.Fatalf("Expected valid input, got: %v", errs)
	}

	cases := []struct {
		name   string
		mutate func(*CreateRoomInput)
		field  string
	}{
		{"EmptyTitle", func(in *CreateRoomInput) { in.Title = "" }, "title"},
		{"EmptyLocation", func(in *CreateRoomInput) { in.Location = "  " }, "location"},
		{"EmptyCity", func(in *CreateRoomInput) { in.City = "" }, "city"},
		{"NegativeRent", func(in *CreateRoomInput) { in.RentPrice = -1 }, "rent_price"},
		{"UnknownPropertyType", func(in *CreateRoomInput) { in.PropertyType = "4BHK" }, "property_type"},
		{"UnknownTenantPreference", func(in *CreateRoomInput) { in.TenantPreference = "Anyone" }, "tenant_preference"},
		{"BadContactNumber", func(in *CreateRoomInput) { in.ContactNumber = "call me" }, "contact_number"},
		{"NoImages", func(in *CreateRoomInput) { in.Images = nil }, "images"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreateInput()
			tc.mutate(in)
			errs := in.validate()
			if !errs.HasErrors() {
				t.Fatal("Expected validation errors, got none")
			}
			found := false
			for _, e := range errs {
				if e.Field == tc.field {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected an error on field %q, got: %v", tc.field, errs)
			}
		})
	}
}

func TestRoomServiceCreateRequiresLister(t *testing.T) {
	svc := NewRoomService(nil, nil, zap.NewNop())

	_, err := svc.Create(context.Background(), model.Identity{UserID: "user-1", IsAdmin: false}, validCreateInput())
	if err != apperrors.ErrNotLister {
		t.Errorf("Expected ErrNotLister for non-lister account, got: %v", err)
	}

	_, err = svc.Create(context.Background(), model.Identity{}, validCreateInput())
	if err != apperrors.ErrUnauthorized {
		t.Errorf("Expected ErrUnauthorized for anonymous caller, got: %v", err)
	}
}

func TestRoomServiceCreateRejectsInvalidInputBeforeInsert(t *testing.T) {
	// A nil repository would panic if Create reached the insert.
	svc := NewRoomService(nil, nil, zap.NewNop())

	in := validCreateInput()
	in.Images = nil

	_, err := svc.Create(context.Background(), model.Identity{UserID: "user-1", IsAdmin: true}, in)
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("Expected AppError, got: %v", err)
	}
	if appErr.Code != apperrors.ErrValidation.Code || appErr.Message != apperrors.ErrValidation.Message {
		t.Errorf("Expected validation error, got: %v", appErr)
	}
	if appErr.Details == nil {
		t.Error("Expected field details on validation error")
	}
}

func TestRoomServiceDeleteRequiresConfirmation(t *testing.T) {
	svc := NewRoomService(nil, nil, zap.NewNop())

	err := svc.Delete(context.Background(), model.Identity{UserID: "user-1", IsAdmin: true}, 42, false)
	if err != apperrors.ErrNotConfirmed {
		t.Errorf("Expected ErrNotConfirmed, got: %v", err)
	}
}

func TestRoomServiceCreateAndGet(t *testing.T) {
	db, prefix := repository.SetupIsolatedTestDB(t)
	defer db.Close()
	defer repository.CleanupTestDataByPrefix(t, db, prefix)

	owner := repository.CreateIsolatedTestUser(t, db, prefix, "lister", true)
	svc := NewRoomService(repository.NewRoomRepository(db), nil, zap.NewNop())

	in := validCreateInput()
	in.Title = prefix + "_" + in.Title

	room, err := svc.Create(context.Background(), owner.Identity(), in)
	if err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}
	if room.ID == 0 {
		t.Error("Expected room ID to be assigned")
	}

	got, err := svc.GetByID(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("Failed to get room: %v", err)
	}
	if got.OwnerID != owner.ID {
		t.Errorf("Expected owner %s, got %s", owner.ID, got.OwnerID)
	}
	if got.RentPrice != 12000 {
		t.Errorf("Expected rent 12000, got %d", got.RentPrice)
	}
}

func TestRoomServiceGetByIDNotFound(t *testing.T) {
	db, prefix := repository.SetupIsolatedTestDB(t)
	defer db.Close()
	defer repository.CleanupTestDataByPrefix(t, db, prefix)

	svc := NewRoomService(repository.NewRoomRepository(db), nil, zap.NewNop())

	_, err := svc.GetByID(context.Background(), 99999999)
	if err != apperrors.ErrRoomNotFound {
		t.Errorf("Expected ErrRoomNotFound, got: %v", err)
	}
}

func TestRoomServiceDeleteEnforcesOwnership(t *testing.T) {
	db, prefix := repository.SetupIsolatedTestDB(t)
	defer db.Close()
	defer repository.CleanupTestDataByPrefix(t, db, prefix)

	owner := repository.CreateIsolatedTestUser(t, db, prefix, "owner", true)
	other := repository.CreateIsolatedTestUser(t, db, prefix, "other", true)
	room := repository.CreateIsolatedTestRoom(t, db, prefix, owner.ID, "Deletable", 8000)

	repo := repository.NewRoomRepository(db)
	feed := NewListingFeed(repo, zap.NewNop())
	svc := NewRoomService(repo, feed, zap.NewNop())

	err := svc.Delete(context.Background(), other.Identity(), room.ID, true)
	if err != apperrors.ErrNotOwner {
		t.Fatalf("Expected ErrNotOwner for non-owner, got: %v", err)
	}

	if err := svc.Delete(context.Background(), owner.Identity(), room.ID, true); err != nil {
		t.Fatalf("Owner failed to delete own room: %v", err)
	}

	_, err = svc.GetByID(context.Background(), room.ID)
	if err != apperrors.ErrRoomNotFound {
		t.Errorf("Expected room to be gone, got: %v", err)
	}

	err = svc.Delete(context.Background(), owner.Identity(), room.ID, true)
	if err != apperrors.ErrRoomNotFound {
		t.Errorf("Expected ErrRoomNotFound on second delete, got: %v", err)
	}
}

func TestRoomServiceListMyRooms(t *testing.T) {
	db, prefix := repository.SetupIsolatedTestDB(t)
	defer db.Close()
	defer repository.CleanupTestDataByPrefix(t, db, prefix)

	owner := repository.CreateIsolatedTestUser(t, db, prefix, "owner", true)
	stranger := repository.CreateIsolatedTestUser(t, db, prefix, "stranger", true)
	repository.CreateIsolatedTestRoom(t, db, prefix, owner.ID, "Mine 1", 7000)
	repository.CreateIsolatedTestRoom(t, db, prefix, owner.ID, "Mine 2", 9000)
	repository.CreateIsolatedTestRoom(t, db, prefix, stranger.ID, "Not mine", 5000)

	svc := NewRoomService(repository.NewRoomRepository(db), nil, zap.NewNop())

	rooms, err := svc.ListMyRooms(context.Background(), owner.Identity())
	if err != nil {
		t.Fatalf("Failed to list own rooms: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("Expected 2 rooms, got %d", len(rooms))
	}
	for _, room := range rooms {
		if room.OwnerID != owner.ID {
			t.Errorf("Got a room owned by %s in my listings", room.OwnerID)
		}
	}
}
