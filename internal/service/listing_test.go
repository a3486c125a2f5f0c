package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/VISHALLkandharee/Room-Finder/internal/model"
	"github.com/VISHALLkandharee/Room-Finder/internal/repository"
	"go.uber.org/zap"
)

// scriptedLister parks expected List calls on a gate channel. The call
// sends on the gate when it enters and then blocks until the gate is
// closed, so tests control the order in which overlapping fetches
// resolve.
type scriptedLister struct {
	mu    sync.Mutex
	calls []chan struct{}
	rooms map[string][]*model.Room
	err   error
}

func newScriptedLister() *scriptedLister {
	return &scriptedLister{rooms: make(map[string][]*model.Room)}
}

func (l *scriptedLister) expectCall() chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	ch := make(chan struct{})
	l.calls = append(l.calls, ch)
	return ch
}

func (l *scriptedLister) List(ctx context.Context, filter *repository.RoomFilter) ([]*model.Room, error) {
	l.mu.Lock()
	var gate chan struct{}
	if len(l.calls) > 0 {
		gate = l.calls[0]
		l.calls = l.calls[1:]
	}
	err := l.err
	var rooms []*model.Room
	if filter != nil {
		rooms = l.rooms[filter.Location]
	}
	l.mu.Unlock()

	if gate != nil {
		gate <- struct{}{}
		<-gate
	}
	return rooms, err
}

func roomWithID(id int64, title string) *model.Room {
	return &model.Room{ID: id, Title: title}
}

func TestListingFeed_RefreshAppliesResult(t *testing.T) {
	lister := newScriptedLister()
	lister.rooms["Koramangala"] = []*model.Room{roomWithID(1, "A"), roomWithID(2, "B")}

	feed := NewListingFeed(lister, zap.NewNop())

	rooms, err := feed.Refresh(context.Background(), &repository.RoomFilter{Location: "Koramangala"})
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("Expected 2 rooms, got %d", len(rooms))
	}

	held := feed.Rooms()
	if len(held) != 2 || held[0].ID != 1 {
		t.Errorf("Expected feed to hold the fetched rooms, got %v", held)
	}
	if feed.Loading() {
		t.Error("Expected loading to clear after refresh")
	}
}

func TestListingFeed_EmptyResultReplacesCollection(t *testing.T) {
	lister := newScriptedLister()
	lister.rooms["HSR"] = []*model.Room{roomWithID(1, "A")}

	feed := NewListingFeed(lister, zap.NewNop())
	ctx := context.Background()

	if _, err := feed.Refresh(ctx, &repository.RoomFilter{Location: "HSR"}); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if _, err := feed.Refresh(ctx, &repository.RoomFilter{Location: "Nowhere"}); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if held := feed.Rooms(); len(held) != 0 {
		t.Errorf("Expected empty result to replace collection, got %d rooms", len(held))
	}
}

func TestListingFeed_LatestFiltersWins(t *testing.T) {
	lister := newScriptedLister()
	lister.rooms["F1"] = []*model.Room{roomWithID(1, "stale")}
	lister.rooms["F2"] = []*model.Room{roomWithID(2, "fresh")}

	feed := NewListingFeed(lister, zap.NewNop())
	ctx := context.Background()

	gateA := lister.expectCall()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = feed.Refresh(ctx, &repository.RoomFilter{Location: "F1"})
	}()
	<-gateA // A has taken its token and is parked in the store

	// The newer refresh runs to completion while A is parked; the stale
	// A response only arrives afterwards.
	if _, err := feed.Refresh(ctx, &repository.RoomFilter{Location: "F2"}); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	close(gateA)
	wg.Wait()

	held := feed.Rooms()
	if len(held) != 1 || held[0].ID != 2 {
		t.Fatalf("Expected the newer fetch's rooms to be displayed, got %v", held)
	}
}

func TestListingFeed_SupersededRefreshStillReturnsItsResult(t *testing.T) {
	lister := newScriptedLister()
	lister.rooms["F1"] = []*model.Room{roomWithID(1, "stale")}
	lister.rooms["F2"] = []*model.Room{roomWithID(2, "fresh")}

	feed := NewListingFeed(lister, zap.NewNop())
	ctx := context.Background()

	gateA := lister.expectCall()

	type result struct {
		rooms []*model.Room
		err   error
	}
	resA := make(chan result, 1)

	go func() {
		rooms, err := feed.Refresh(ctx, &repository.RoomFilter{Location: "F1"})
		resA <- result{rooms, err}
	}()
	<-gateA // A has taken its token and is parked in the store

	// Let the newer refresh complete while A is parked.
	if _, err := feed.Refresh(ctx, &repository.RoomFilter{Location: "F2"}); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	close(gateA)

	a := <-resA
	if a.err != nil {
		t.Fatalf("Superseded refresh returned error: %v", a.err)
	}
	if len(a.rooms) != 1 || a.rooms[0].ID != 1 {
		t.Errorf("Superseded caller should still get its own result, got %v", a.rooms)
	}
	if held := feed.Rooms(); len(held) != 1 || held[0].ID != 2 {
		t.Errorf("Feed must keep the newer result, got %v", held)
	}
}

func TestListingFeed_FailureKeepsPreviousCollection(t *testing.T) {
	lister := newScriptedLister()
	lister.rooms["OK"] = []*model.Room{roomWithID(1, "A")}

	feed := NewListingFeed(lister, zap.NewNop())
	ctx := context.Background()

	if _, err := feed.Refresh(ctx, &repository.RoomFilter{Location: "OK"}); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	lister.mu.Lock()
	lister.err = errors.New("connection reset")
	lister.mu.Unlock()

	if _, err := feed.Refresh(ctx, &repository.RoomFilter{Location: "OK"}); err == nil {
		t.Fatal("Expected refresh error")
	}

	if held := feed.Rooms(); len(held) != 1 {
		t.Errorf("Expected previous collection to survive a failed refresh, got %d rooms", len(held))
	}
	if feed.Err() == nil {
		t.Error("Expected feed to record the failure")
	}
	if feed.Loading() {
		t.Error("Expected loading to clear after a failed refresh")
	}
}

func TestListingFeed_DiscardRemovesDeletedRoom(t *testing.T) {
	lister := newScriptedLister()
	lister.rooms["OK"] = []*model.Room{roomWithID(1, "A"), roomWithID(2, "B")}

	feed := NewListingFeed(lister, zap.NewNop())

	if _, err := feed.Refresh(context.Background(), &repository.RoomFilter{Location: "OK"}); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	feed.Discard(1)

	held := feed.Rooms()
	if len(held) != 1 || held[0].ID != 2 {
		t.Errorf("Expected room 1 to be gone, got %v", held)
	}
}

func TestListingFeed_DiscardLeavesRefreshResultIntact(t *testing.T) {
	lister := newScriptedLister()
	lister.rooms["OK"] = []*model.Room{
		roomWithID(1, "A"), roomWithID(2, "B"), roomWithID(3, "C"),
	}

	feed := NewListingFeed(lister, zap.NewNop())

	rooms, err := feed.Refresh(context.Background(), &repository.RoomFilter{Location: "OK"})
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	// A handler may still be serializing this slice when a concurrent
	// delete evicts a room; the eviction must not write through it.
	feed.Discard(1)

	if len(rooms) != 3 || rooms[0].ID != 1 || rooms[1].ID != 2 || rooms[2].ID != 3 {
		ids := make([]int64, 0, len(rooms))
		for _, r := range rooms {
			ids = append(ids, r.ID)
		}
		t.Errorf("Expected caller's slice untouched by Discard, got ids %v", ids)
	}
	if held := feed.Rooms(); len(held) != 2 {
		t.Errorf("Expected 2 rooms after discard, got %d", len(held))
	}
}
