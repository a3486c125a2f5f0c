package response

import (
	"time"

	"github.com/VISHALLkandharee/Room-Finder/internal/model"
)

// RoomResponse represents a room listing response
type RoomResponse struct {
	ID               int64    `json:"id"`
	OwnerID          string   `json:"owner_id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	City             string   `json:"city"`
	RentPrice        int      `json:"rent_price"`
	PropertyType     string   `json:"property_type"`
	TenantPreference string   `json:"tenant_preference"`
	ContactNumber    string   `json:"contact_number"`
	Images           []string `json:"images"`
	CoverImage       string   `json:"cover_image"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

// NewRoomResponse creates a room response from model
func NewRoomResponse(room *model.Room) *RoomResponse {
	return &RoomResponse{
		ID:               room.ID,
		OwnerID:          room.OwnerID,
		Title:            room.Title,
		Description:      room.GetDescription(),
		Location:         room.Location,
		City:             room.City,
		RentPrice:        room.RentPrice,
		PropertyType:     string(room.PropertyType),
		TenantPreference: string(room.TenantPreference),
		ContactNumber:    room.ContactNumber,
		Images:           room.Images,
		CoverImage:       room.CoverImage(),
		CreatedAt:        room.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        room.UpdatedAt.Format(time.RFC3339),
	}
}

// RoomListResponse represents a list of room listings
type RoomListResponse struct {
	Rooms []*RoomResponse `json:"rooms"`
	Total int             `json:"total"`
}

// NewRoomListResponse creates a room list response
func NewRoomListResponse(rooms []*model.Room) *RoomListResponse {
	roomResponses := make([]*RoomResponse, len(rooms))
	for i, room := range rooms {
		roomResponses[i] = NewRoomResponse(room)
	}

	return &RoomListResponse{
		Rooms: roomResponses,
		Total: len(roomResponses),
	}
}

// UploadResponse represents the outcome of an image batch upload
type UploadResponse struct {
	URLs    []string      `json:"urls"`
	Skipped []SkippedFile `json:"skipped,omitempty"`
}

// SkippedFile names a file left out of the batch and why
type SkippedFile struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}
