package service

import (
	"context"
	"sync"

	"github.com/VISHALLkandharee/Room-Finder/internal/model"
	apperrors "github.com/VISHALLkandharee/Room-Finder/internal/pkg/errors"
	"github.com/VISHALLkandharee/Room-Finder/internal/repository"
	"go.uber.org/zap"
)

// roomLister is the slice of the room repository the feed needs. Narrowed
// to an interface so the supersede ordering can be driven in tests.
type roomLister interface {
	List(ctx context.Context, filter *repository.RoomFilter) ([]*model.Room, error)
}

// ListingFeed materializes the filtered room listing. Every filter change
// becomes a Refresh carrying a monotonically increasing token; only the
// response for the newest issued token may replace the held collection,
// so a slow stale fetch never overwrites a newer one (latest-filters-wins).
//
// On a failed refresh the previously applied collection is kept and the
// error recorded; callers decide how to surface it next to stale data.
type ListingFeed struct {
	lister roomLister
	logger *zap.Logger

	mu      sync.Mutex
	issued  uint64 // newest token handed out
	loading bool
	rooms   []*model.Room
	lastErr error
}

func NewListingFeed(lister roomLister, logger *zap.Logger) *ListingFeed {
	return &ListingFeed{
		lister: lister,
		logger: logger,
	}
}

// Refresh compiles and executes the filter query. The fetched rooms are
// returned to the caller either way; feed state is only touched when this
// refresh is still the newest one by the time its response arrives.
func (f *ListingFeed) Refresh(ctx context.Context, filter *repository.RoomFilter) ([]*model.Room, error) {
	f.mu.Lock()
	f.issued++
	token := f.issued
	f.loading = true
	f.mu.Unlock()

	rooms, err := f.lister.List(ctx, filter)
	if rooms == nil && err == nil {
		rooms = []*model.Room{}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if token != f.issued {
		// Superseded by a newer filter change; the caller still gets its
		// own result but the displayed collection is not ours to set.
		if err != nil {
			return nil, apperrors.ErrInternal
		}
		return rooms, nil
	}

	f.loading = false
	if err != nil {
		f.lastErr = err
		f.logger.Error("Failed to refresh listing", zap.Error(err))
		return nil, apperrors.ErrInternal
	}

	f.rooms = rooms
	f.lastErr = nil
	return rooms, nil
}

// Rooms returns a snapshot of the currently applied collection
func (f *ListingFeed) Rooms() []*model.Room {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*model.Room, len(f.rooms))
	copy(out, f.rooms)
	return out
}

// Loading reports whether the newest refresh is still in flight
func (f *ListingFeed) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Err returns the error of the last applied refresh, if any
func (f *ListingFeed) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Discard drops a deleted room from the held collection without a
// refetch, so it cannot reappear before the next refresh.
func (f *ListingFeed) Discard(roomID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// Refresh hands its slice to callers, so compact into a fresh one
	// instead of reusing the shared backing array.
	kept := make([]*model.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		if r.ID != roomID {
			kept = append(kept, r)
		}
	}
	f.rooms = kept
}
