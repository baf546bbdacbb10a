// Package memory holds the content catalog and interaction sets in process.
// Snapshots are published by reference replacement, so any number of engine
// reads may run concurrently against one without locking; the store's own
// lock only guards the reference and the interaction maps.
package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pulsepress/discovery/internal/apperr"
	"github.com/pulsepress/discovery/internal/domain"
)

type interactionRecord struct {
	ID        string
	UserID    string
	ItemID    string
	CreatedAt time.Time
}

type Store struct {
	mu        sync.RWMutex
	snapshot  *domain.Snapshot
	users     map[string]struct{}
	likes     map[string][]interactionRecord
	bookmarks map[string][]interactionRecord
}

func NewStore() *Store {
	return &Store{
		snapshot:  (&domain.Snapshot{}).Index(),
		users:     make(map[string]struct{}),
		likes:     make(map[string][]interactionRecord),
		bookmarks: make(map[string][]interactionRecord),
	}
}

// Replace atomically publishes a new snapshot. The snapshot is indexed here
// so readers never observe one without its lookup maps.
func (s *Store) Replace(snapshot *domain.Snapshot) {
	snapshot.Index()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
	slog.Info("Published content snapshot",
		"items", len(snapshot.Items),
		"tags", len(snapshot.Tags),
		"authors", len(snapshot.Authors),
		"categories", len(snapshot.Categories),
	)
}

func (s *Store) Content(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, nil
}

// RegisterUser makes a user known to the store, so an empty interaction
// history is distinguishable from an unknown user id.
func (s *Store) RegisterUser(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = struct{}{}
}

func (s *Store) AddLike(userID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = struct{}{}
	s.likes[userID] = append(s.likes[userID], newRecord(userID, itemID))
}

func (s *Store) AddBookmark(userID, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = struct{}{}
	s.bookmarks[userID] = append(s.bookmarks[userID], newRecord(userID, itemID))
}

func (s *Store) Interactions(ctx context.Context, userID string) (*domain.Interactions, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[userID]; !ok {
		return nil, apperr.NewUnknownEntity("user", userID)
	}

	interactions := &domain.Interactions{
		Liked:      make(map[string]struct{}, len(s.likes[userID])),
		Bookmarked: make(map[string]struct{}, len(s.bookmarks[userID])),
	}
	for _, rec := range s.likes[userID] {
		interactions.Liked[rec.ItemID] = struct{}{}
	}
	for _, rec := range s.bookmarks[userID] {
		interactions.Bookmarked[rec.ItemID] = struct{}{}
	}
	return interactions, nil
}

func newRecord(userID, itemID string) interactionRecord {
	return interactionRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		ItemID:    itemID,
		CreatedAt: time.Now(),
	}
}
