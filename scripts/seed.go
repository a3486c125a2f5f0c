package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/VISHALLkandharee/Room-Finder/internal/config"
	"github.com/VISHALLkandharee/Room-Finder/internal/model"
	"github.com/VISHALLkandharee/Room-Finder/internal/pkg/database"
	"github.com/VISHALLkandharee/Room-Finder/internal/pkg/utils"
	"github.com/VISHALLkandharee/Room-Finder/internal/repository"
	"go.uber.org/zap"
)

func main() {
	log.Println("Starting database seed...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := zap.NewNop()
	db, err := database.NewPostgres(&cfg.Database, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)

	log.Println("Creating users...")
	users := []struct {
		username    string
		email       string
		password    string
		displayName string
		isAdmin     bool
	}{
		{"vishal", "vishal@example.com", "password123", "Vishal Kandharee", true},
		{"priya", "priya@example.com", "password123", "Priya Sharma", true},
		{"rahul", "rahul@example.com", "password123", "Rahul Mehta", false},
		{"ananya", "ananya@example.com", "password123", "Ananya Iyer", false},
	}

	createdUsers := map[string]*model.User{}
	for _, u := range users {
		hash, _ := utils.HashPassword(u.password)
		user := &model.User{
			Username:     u.username,
			Email:        u.email,
			PasswordHash: hash,
			DisplayName:  sql.NullString{String: u.displayName, Valid: true},
			IsAdmin:      u.isAdmin,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Printf("Skipping user %s: %v", u.username, err)
			continue
		}
		createdUsers[u.username] = user
		log.Printf("Created user %s (lister=%v)", u.username, u.isAdmin)
	}

	log.Println("Creating room listings...")
	rooms := []struct {
		owner            string
		title            string
		description      string
		location         string
		city             string
		rentPrice        int
		propertyType     model.PropertyType
		tenantPreference model.TenantPreference
		contactNumber    string
		images           []string
	}{
		{
			"vishal", "Sunny 1BHK near Sony Signal",
			"Semi furnished, east facing, 24x7 water.",
			"Koramangala", "Bangalore", 18000,
			model.PropertyType1BHK, model.TenantPreferenceBachelor,
			"+91 9876543210",
			[]string{
				"https://images.example.com/rooms/koramangala-1bhk-front.jpg",
				"https://images.example.com/rooms/koramangala-1bhk-kitchen.jpg",
			},
		},
		{
			"vishal", "Spacious 2BHK with balcony",
			"Fully furnished, covered parking, near metro.",
			"Indiranagar", "Bangalore", 32000,
			model.PropertyType2BHK, model.TenantPreferenceFamily,
			"+91 9876543210",
			[]string{
				"https://images.example.com/rooms/indiranagar-2bhk-living.jpg",
				"https://images.example.com/rooms/indiranagar-2bhk-balcony.jpg",
				"https://images.example.com/rooms/indiranagar-2bhk-bedroom.jpg",
			},
		},
		{
			"priya", "Single room for working women",
			"Attached bathroom, wifi included, food optional.",
			"HSR Layout", "Bangalore", 9500,
			model.PropertyType1Bed, model.TenantPreferenceGirls,
			"+91 9812345678",
			[]string{
				"https://images.example.com/rooms/hsr-1bed-room.jpg",
			},
		},
		{
			"priya", "Shared 2 bed near IT park",
			"Walking distance from tech park, ideal for professionals.",
			"Hinjewadi", "Pune", 12000,
			model.PropertyType2Bed, model.TenantPreferenceWorking,
			"+91 9812345678",
			[]string{
				"https://images.example.com/rooms/hinjewadi-2bed-room.jpg",
				"https://images.example.com/rooms/hinjewadi-2bed-common.jpg",
			},
		},
	}

	for _, r := range rooms {
		owner, ok := createdUsers[r.owner]
		if !ok {
			log.Printf("Skipping listing %q, owner %s was not created", r.title, r.owner)
			continue
		}
		room := &model.Room{
			OwnerID:          owner.ID,
			Title:            r.title,
			Description:      sql.NullString{String: r.description, Valid: true},
			Location:         r.location,
			City:             r.city,
			RentPrice:        r.rentPrice,
			PropertyType:     r.propertyType,
			TenantPreference: r.tenantPreference,
			ContactNumber:    r.contactNumber,
			Images:           r.images,
		}
		if err := roomRepo.Create(ctx, room); err != nil {
			log.Printf("Skipping listing %q: %v", r.title, err)
			continue
		}
		log.Printf("Created listing %q in %s (%d)", r.title, r.location, r.rentPrice)
	}

	log.Println("Seed complete.")
}
