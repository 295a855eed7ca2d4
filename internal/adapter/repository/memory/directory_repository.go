package memory

import (
	"context"
	"sort"
	"sync"

	"gorm.io/gorm"

	"github.com/teampulse/team-pulse/internal/domain/entities"
)

// DirectoryRepository is an in-memory implementation of
// repositories.DirectoryRepository for development / local mode and tests.
type DirectoryRepository struct {
	mu      sync.RWMutex
	entries map[entities.EntityRef]*entities.DirectoryEntry
}

// NewDirectoryRepository creates a new in-memory directory repository
func NewDirectoryRepository() *DirectoryRepository {
	return &DirectoryRepository{
		entries: make(map[entities.EntityRef]*entities.DirectoryEntry),
	}
}

// Put inserts or replaces an entry (seed helper for local mode and tests)
func (r *DirectoryRepository) Put(entry *entities.DirectoryEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *entry
	r.entries[entry.Ref()] = &clone
}

// Remove deletes an entry (test helper)
func (r *DirectoryRepository) Remove(ref entities.EntityRef) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, ref)
}

// List retrieves all entries of one kind, ordered by name
func (r *DirectoryRepository) List(_ context.Context, kind entities.EntityKind) ([]*entities.DirectoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.DirectoryEntry, 0)
	for ref, entry := range r.entries {
		if ref.Kind != kind {
			continue
		}
		clone := *entry
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// FindByRef retrieves a single entry by its tagged reference
func (r *DirectoryRepository) FindByRef(_ context.Context, ref entities.EntityRef) (*entities.DirectoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[ref]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *entry
	return &clone, nil
}
