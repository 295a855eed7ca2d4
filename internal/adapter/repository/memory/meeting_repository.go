package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/teampulse/team-pulse/internal/domain/entities"
	"github.com/teampulse/team-pulse/internal/domain/repositories"
)

// MeetingRepository is an in-memory implementation of
// repositories.MeetingRepository. It is NOT persistent and is only
// suitable for development / local mode and tests. Not-found conditions
// surface as gorm.ErrRecordNotFound so callers behave identically against
// either implementation.
type MeetingRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*entities.MeetingRecord
}

// NewMeetingRepository creates a new in-memory meeting repository
func NewMeetingRepository() *MeetingRepository {
	return &MeetingRepository{
		records: make(map[uuid.UUID]*entities.MeetingRecord),
	}
}

// Create creates a new meeting record
func (r *MeetingRepository) Create(_ context.Context, record *entities.MeetingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	now := time.Now().UTC()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now
	if record.Version == 0 {
		record.Version = 1
	}

	r.records[record.ID] = cloneRecord(record)
	return nil
}

// FindByID retrieves a meeting record by its ID
func (r *MeetingRepository) FindByID(_ context.Context, id uuid.UUID) (*entities.MeetingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return cloneRecord(record), nil
}

// List retrieves meeting records with filters and pagination
func (r *MeetingRepository) List(_ context.Context, filters repositories.MeetingFilters) ([]*entities.MeetingRecord, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*entities.MeetingRecord, 0, len(r.records))
	for _, record := range r.records {
		if filters.OwnerKind != nil && record.OwnerKind != *filters.OwnerKind {
			continue
		}
		if filters.OwnerID != nil && record.OwnerID != *filters.OwnerID {
			continue
		}
		if filters.From != nil && record.Date.Before(*filters.From) {
			continue
		}
		if filters.To != nil && record.Date.After(*filters.To) {
			continue
		}
		matched = append(matched, cloneRecord(record))
	}

	asc := filters.SortOrder == "asc"
	sort.Slice(matched, func(i, j int) bool {
		if asc {
			return matched[i].Date.Before(matched[j].Date)
		}
		return matched[i].Date.After(matched[j].Date)
	})

	total := int64(len(matched))
	if filters.Offset > 0 {
		if filters.Offset >= len(matched) {
			return []*entities.MeetingRecord{}, total, nil
		}
		matched = matched[filters.Offset:]
	}
	if filters.Limit > 0 && filters.Limit < len(matched) {
		matched = matched[:filters.Limit]
	}
	return matched, total, nil
}

// ListAll retrieves every meeting record
func (r *MeetingRepository) ListAll(_ context.Context) ([]*entities.MeetingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.MeetingRecord, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, cloneRecord(record))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// ListByOwner retrieves all records owned by one person, most recent first
func (r *MeetingRepository) ListByOwner(_ context.Context, owner entities.EntityRef) ([]*entities.MeetingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.MeetingRecord, 0)
	for _, record := range r.records {
		if record.OwnerKind == owner.Kind && record.OwnerID == owner.ID {
			out = append(out, cloneRecord(record))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update updates an existing meeting record
func (r *MeetingRepository) Update(_ context.Context, record *entities.MeetingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[record.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	record.Version++
	record.UpdatedAt = time.Now().UTC()
	r.records[record.ID] = cloneRecord(record)
	return nil
}

// MarkNoteDiscussed flips the discussed flag of one embedded note
func (r *MeetingRepository) MarkNoteDiscussed(_ context.Context, id uuid.UUID, timestamp time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return false, nil
	}
	idx, ok := record.FindNote(timestamp)
	if !ok {
		return false, nil
	}
	if record.Notes[idx].Discussed {
		return true, nil
	}
	record.Notes[idx].Discussed = true
	record.Version++
	record.UpdatedAt = time.Now().UTC()
	return true, nil
}

// AppendNote appends a note to the record's embedded note list
func (r *MeetingRepository) AppendNote(_ context.Context, id uuid.UUID, note entities.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	record.AppendNote(note)
	record.Version++
	record.UpdatedAt = time.Now().UTC()
	return nil
}

// cloneRecord copies a record so callers never alias internal state.
func cloneRecord(record *entities.MeetingRecord) *entities.MeetingRecord {
	out := *record
	out.Notes = make([]entities.Note, len(record.Notes))
	copy(out.Notes, record.Notes)
	if record.TopicsDiscussed != nil {
		out.TopicsDiscussed = append([]byte(nil), record.TopicsDiscussed...)
	}
	if record.ActionItems != nil {
		out.ActionItems = append([]byte(nil), record.ActionItems...)
	}
	return &out
}
