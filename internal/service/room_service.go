package service

import (
	"context"
	"database/sql"

	"github.com/VISHALLkandharee/Room-Finder/internal/model"
	apperrors "github.com/VISHALLkandharee/Room-Finder/internal/pkg/errors"
	"github.com/VISHALLkandharee/Room-Finder/internal/pkg/utils"
	"github.com/VISHALLkandharee/Room-Finder/internal/repository"
	"go.uber.org/zap"
)

type RoomService struct {
	roomRepo *repository.RoomRepository
	feed     *ListingFeed
	logger   *zap.Logger
}

func NewRoomService(roomRepo *repository.RoomRepository, feed *ListingFeed, logger *zap.Logger) *RoomService {
	return &RoomService{
		roomRepo: roomRepo,
		feed:     feed,
		logger:   logger,
	}
}

// CreateRoomInput represents listing creation input. Images are the
// already-uploaded public URLs, in display order.
type CreateRoomInput struct {
	Title            string
	Description      string
	Location         string
	City             string
	RentPrice        int
	PropertyType     string
	TenantPreference string
	ContactNumber    string
	Images           []string
}

func (in *CreateRoomInput) validate() utils.ValidationErrors {
	v := utils.NewValidator()
	v.ValidateTitle("title", in.Title)
	v.Required("location", in.Location)
	v.Required("city", in.City)
	v.ValidateContactNumber("contact_number", in.ContactNumber)
	v.MaxLength("description", in.Description, 2000)

	if in.RentPrice < 0 {
		v.AddError("rent_price", "must be a non-negative integer")
	}
	if !model.PropertyType(in.PropertyType).IsValid() {
		v.AddError("property_type", "must be one of 1BHK, 2BHK, 1Bed, 2Bed, 3Bed")
	}
	if !model.TenantPreference(in.TenantPreference).IsValid() {
		v.AddError("tenant_preference", "must be one of Bachelor, Family, Girls, Working")
	}
	if len(in.Images) == 0 {
		v.AddError("images", "at least one image is required")
	}

	return v.Errors()
}

// Create publishes a new listing. Only lister accounts may publish, and
// all validation happens before the insert is attempted.
func (s *RoomService) Create(ctx context.Context, identity model.Identity, input *CreateRoomInput) (*model.Room, error) {
	if identity.IsAnonymous() {
		return nil, apperrors.ErrUnauthorized
	}
	if !identity.IsAdmin {
		return nil, apperrors.ErrNotLister
	}

	if errs := input.validate(); errs.HasErrors() {
		return nil, apperrors.ErrValidation.WithDetails(errs)
	}

	room := &model.Room{
		OwnerID:          identity.UserID,
		Title:            input.Title,
		Location:         input.Location,
		City:             input.City,
		RentPrice:        input.RentPrice,
		PropertyType:     model.PropertyType(input.PropertyType),
		TenantPreference: model.TenantPreference(input.TenantPreference),
		ContactNumber:    input.ContactNumber,
		Images:           input.Images,
	}
	if input.Description != "" {
		room.Description = sql.NullString{String: input.Description, Valid: true}
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		s.logger.Error("Failed to create room", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	s.logger.Info("Room listed",
		zap.Int64("room_id", room.ID),
		zap.String("owner_id", identity.UserID),
		zap.String("location", room.Location),
	)

	return room, nil
}

// GetByID retrieves one listing; a missing id is NotFound, distinct from
// transport failures.
func (s *RoomService) GetByID(ctx context.Context, id int64) (*model.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return nil, apperrors.ErrRoomNotFound
		}
		s.logger.Error("Failed to get room", zap.Error(err))
		return nil, apperrors.ErrInternal
	}
	return room, nil
}

// List refreshes the listing feed with the given filter
func (s *RoomService) List(ctx context.Context, filter *repository.RoomFilter) ([]*model.Room, error) {
	return s.feed.Refresh(ctx, filter)
}

// Feed exposes the materialized listing view
func (s *RoomService) Feed() *ListingFeed {
	return s.feed
}

// ListMyRooms lists the caller's own listings, newest first
func (s *RoomService) ListMyRooms(ctx context.Context, identity model.Identity) ([]*model.Room, error) {
	if identity.IsAnonymous() {
		return nil, apperrors.ErrUnauthorized
	}

	rooms, err := s.roomRepo.ListByOwner(ctx, identity.UserID)
	if err != nil {
		s.logger.Error("Failed to list my rooms", zap.Error(err))
		return nil, apperrors.ErrInternal
	}
	return rooms, nil
}

// Delete removes a listing for good. The caller must own it and must
// confirm explicitly; an unconfirmed request fails before any lookup.
// The room is also evicted from the feed so it cannot flash back into
// view before the next refresh.
func (s *RoomService) Delete(ctx context.Context, identity model.Identity, roomID int64, confirm bool) error {
	if identity.IsAnonymous() {
		return apperrors.ErrUnauthorized
	}
	if !confirm {
		return apperrors.ErrNotConfirmed
	}

	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return apperrors.ErrRoomNotFound
		}
		s.logger.Error("Failed to get room", zap.Error(err))
		return apperrors.ErrInternal
	}

	if !room.IsOwnedBy(identity.UserID) {
		return apperrors.ErrNotOwner
	}

	if err := s.roomRepo.Delete(ctx, roomID); err != nil {
		if err == repository.ErrRoomNotFound {
			return apperrors.ErrRoomNotFound
		}
		s.logger.Error("Failed to delete room", zap.Error(err))
		return apperrors.ErrInternal
	}

	if s.feed != nil {
		s.feed.Discard(roomID)
	}

	s.logger.Info("Room deleted",
		zap.Int64("room_id", roomID),
		zap.String("deleted_by", identity.UserID),
	)

	return nil
}
