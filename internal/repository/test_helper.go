package repository

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/VISHALLkandharee/Room-Finder/internal/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Global counter so parallel tests never collide on fixture names.
var testCounter int64

// GenerateUniquePrefix generates a unique test prefix
func GenerateUniquePrefix() string {
	count := atomic.AddInt64(&testCounter, 1)
	return uuid.New().String()[:8] + "_" + time.Now().Format("150405") + "_" + string(rune(count%26+'a'))
}

// SetupIsolatedTestDB connects to the test database, skipping the test
// when it is unreachable. Each test gets a unique prefix for its data.
func SetupIsolatedTestDB(t *testing.T) (*sqlx.DB, string) {
	t.Helper()

	dsn := "host=localhost port=5432 user=postgres password=postgres dbname=roomfinder_test sslmode=disable"
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Skipf("Skipping test, could not connect to test database: %v", err)
	}

	prefix := GenerateUniquePrefix()

	return db, prefix
}

// CleanupTestDataByPrefix removes only the data this test created
func CleanupTestDataByPrefix(t *testing.T, db *sqlx.DB, prefix string) {
	t.Helper()

	ctx := context.Background()

	// Delete in foreign key dependency order
	_, _ = db.ExecContext(ctx, "DELETE FROM rooms WHERE owner_id IN (SELECT id FROM users WHERE username LIKE $1)", prefix+"%")
	_, _ = db.ExecContext(ctx, "DELETE FROM rooms WHERE title LIKE $1", prefix+"%")
	_, _ = db.ExecContext(ctx, "DELETE FROM users WHERE username LIKE $1", prefix+"%")
	_, _ = db.ExecContext(ctx, "DELETE FROM users WHERE email LIKE $1", prefix+"%")
}

// CreateIsolatedTestUser creates a prefixed test user
func CreateIsolatedTestUser(t *testing.T, db *sqlx.DB, prefix, name string, isAdmin bool) *model.User {
	t.Helper()

	userRepo := NewUserRepository(db)
	username := prefix + "_" + name
	user := &model.User{
		Username:     username,
		Email:        username + "@test.example.com",
		PasswordHash: "hashedpassword",
		IsAdmin:      isAdmin,
	}

	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// CreateIsolatedTestRoom creates a prefixed room listing owned by ownerID
func CreateIsolatedTestRoom(t *testing.T, db *sqlx.DB, prefix, ownerID, title string, rentPrice int) *model.Room {
	t.Helper()

	roomRepo := NewRoomRepository(db)
	room := &model.Room{
		OwnerID:          ownerID,
		Title:            prefix + "_" + title,
		Location:         "Koramangala",
		City:             "Bangalore",
		RentPrice:        rentPrice,
		PropertyType:     model.PropertyType1BHK,
		TenantPreference: model.TenantPreferenceBachelor,
		ContactNumber:    "+91 9876543210",
		Images:           pq.StringArray{"https://img.test.example.com/cover.jpg"},
	}

	if err := roomRepo.Create(context.Background(), room); err != nil {
		t.Fatalf("Failed to create test room: %v", err)
	}
	return room
}
