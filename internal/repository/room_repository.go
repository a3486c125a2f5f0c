package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/VISHALLkandharee/Room-Finder/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrRoomNotFound = errors.New("room not found")
)

type RoomRepository struct {
	db *sqlx.DB
}

func NewRoomRepository(db *sqlx.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create inserts a new room listing. The store assigns id and the
// timestamps; they are written back into the model.
func (r *RoomRepository) Create(ctx context.Context, room *model.Room) error {
	query := `
		INSERT INTO rooms (owner_id, title, description, location, city, rent_price,
		                   property_type, tenant_preference, contact_number, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		room.OwnerID,
		room.Title,
		room.Description,
		room.Location,
		room.City,
		room.RentPrice,
		room.PropertyType,
		room.TenantPreference,
		room.ContactNumber,
		room.Images,
	).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
}

// GetByID retrieves a room by ID
func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*model.Room, error) {
	var room model.Room
	query := `SELECT * FROM rooms WHERE id = $1`

	if err := r.db.GetContext(ctx, &room, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room by id: %w", err)
	}

	return &room, nil
}

// List executes the compiled filter query, newest first
func (r *RoomRepository) List(ctx context.Context, filter *RoomFilter) ([]*model.Room, error) {
	query, args := buildRoomListQuery(filter)

	var rooms []*model.Room
	if err := r.db.SelectContext(ctx, &rooms, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return rooms, nil
}

// ListByOwner lists rooms published by one owner, newest first
func (r *RoomRepository) ListByOwner(ctx context.Context, ownerID string) ([]*model.Room, error) {
	query := `SELECT * FROM rooms WHERE owner_id = $1 ORDER BY created_at DESC`

	var rooms []*model.Room
	if err := r.db.SelectContext(ctx, &rooms, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list rooms by owner: %w", err)
	}

	return rooms, nil
}

// Delete removes a room. The row is gone for good, so a repeated delete
// of the same id reports ErrRoomNotFound.
func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM rooms WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// CountByOwner counts rooms published by one owner
func (r *RoomRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM rooms WHERE owner_id = $1`

	if err := r.db.GetContext(ctx, &count, query, ownerID); err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}

	return count, nil
}
