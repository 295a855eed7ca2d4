package repositories

import (
	"context"

	"github.com/teampulse/team-pulse/internal/domain/entities"
)

// DirectoryRepository defines read-only access to the entity directories.
// The agenda subsystem uses it solely to resolve display names.
type DirectoryRepository interface {
	// List retrieves all entries of one kind, ordered by name
	List(ctx context.Context, kind entities.EntityKind) ([]*entities.DirectoryEntry, error)

	// FindByRef retrieves a single entry by its tagged reference
	FindByRef(ctx context.Context, ref entities.EntityRef) (*entities.DirectoryEntry, error)
}
