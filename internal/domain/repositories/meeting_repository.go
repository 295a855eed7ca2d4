package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/teampulse/team-pulse/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting record data access.
// Notes are embedded in the record; the two note mutations are targeted
// operations executed against the owning record so that concurrent
// writers never silently overwrite each other's notes.
type MeetingRepository interface {
	// Create creates a new meeting record
	Create(ctx context.Context, record *entities.MeetingRecord) error

	// FindByID retrieves a meeting record by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingRecord, error)

	// List retrieves meeting records with filters and pagination
	List(ctx context.Context, filters MeetingFilters) ([]*entities.MeetingRecord, int64, error)

	// ListAll retrieves every meeting record, for reference scanning
	ListAll(ctx context.Context) ([]*entities.MeetingRecord, error)

	// ListByOwner retrieves all records owned by one person, most recent first
	ListByOwner(ctx context.Context, owner entities.EntityRef) ([]*entities.MeetingRecord, error)

	// Update updates an existing meeting record
	Update(ctx context.Context, record *entities.MeetingRecord) error

	// MarkNoteDiscussed flips the discussed flag of the note identified by
	// (id, timestamp). Returns false when the record or the note does not
	// exist; returns true without writing when the note is already discussed.
	MarkNoteDiscussed(ctx context.Context, id uuid.UUID, timestamp time.Time) (bool, error)

	// AppendNote appends a note to the record's embedded note list
	AppendNote(ctx context.Context, id uuid.UUID, note entities.Note) error
}

// MeetingFilters represents filter options for listing meeting records
type MeetingFilters struct {
	OwnerKind *entities.EntityKind
	OwnerID   *string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
	SortBy    string // "date", "created_at"
	SortOrder string // "asc", "desc"
}
