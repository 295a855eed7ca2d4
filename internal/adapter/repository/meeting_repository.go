package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/teampulse/team-pulse/internal/domain/entities"
	"github.com/teampulse/team-pulse/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting record repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create creates a new meeting record
func (r *meetingRepository) Create(ctx context.Context, record *entities.MeetingRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByID retrieves a meeting record by its ID
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.MeetingRecord, error) {
	var record entities.MeetingRecord
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&record).Error

	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List retrieves meeting records with filters and pagination
func (r *meetingRepository) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.MeetingRecord, int64, error) {
	var records []*entities.MeetingRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.MeetingRecord{})

	if filters.OwnerKind != nil {
		query = query.Where("owner_kind = ?", *filters.OwnerKind)
	}
	if filters.OwnerID != nil {
		query = query.Where("owner_id = ?", *filters.OwnerID)
	}
	if filters.From != nil {
		query = query.Where("date >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("date <= ?", *filters.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "date"
	if filters.SortBy != "" {
		sortBy = filters.SortBy
	}
	sortOrder := "DESC"
	if filters.SortOrder != "" {
		sortOrder = filters.SortOrder
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	err := query.Find(&records).Error
	return records, total, err
}

// ListAll retrieves every meeting record for reference scanning
func (r *meetingRepository) ListAll(ctx context.Context) ([]*entities.MeetingRecord, error) {
	var records []*entities.MeetingRecord
	err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

// ListByOwner retrieves all records owned by one person, most recent first
func (r *meetingRepository) ListByOwner(ctx context.Context, owner entities.EntityRef) ([]*entities.MeetingRecord, error) {
	var records []*entities.MeetingRecord
	err := r.db.WithContext(ctx).
		Where("owner_kind = ? AND owner_id = ?", owner.Kind, owner.ID).
		Order("date DESC, created_at DESC").
		Find(&records).Error
	return records, err
}

// Update updates an existing meeting record
func (r *meetingRepository) Update(ctx context.Context, record *entities.MeetingRecord) error {
	record.Version++
	return r.db.WithContext(ctx).Save(record).Error
}

// MarkNoteDiscussed flips the discussed flag of one embedded note. The
// record row is locked for the duration of the transaction and only the
// notes column is rewritten, so a concurrent note append cannot be lost.
func (r *meetingRepository) MarkNoteDiscussed(ctx context.Context, id uuid.UUID, timestamp time.Time) (bool, error) {
	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record entities.MeetingRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&record).Error; err != nil {
			return err
		}

		idx, ok := record.FindNote(timestamp)
		if !ok {
			return nil
		}
		found = true

		if record.Notes[idx].Discussed {
			// Idempotent no-op
			return nil
		}
		record.Notes[idx].Discussed = true

		return tx.Model(&entities.MeetingRecord{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"notes":   record.Notes,
				"version": gorm.Expr("version + 1"),
			}).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return found, nil
}

// AppendNote appends a note to the record's embedded note list under a
// row lock, rewriting only the notes column.
func (r *meetingRepository) AppendNote(ctx context.Context, id uuid.UUID, note entities.Note) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record entities.MeetingRecord
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&record).Error; err != nil {
			return err
		}

		record.AppendNote(note)

		return tx.Model(&entities.MeetingRecord{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"notes":   record.Notes,
				"version": gorm.Expr("version + 1"),
			}).Error
	})
}
