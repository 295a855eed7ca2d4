package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/teampulse/team-pulse/internal/domain/entities"
	"github.com/teampulse/team-pulse/internal/domain/repositories"
)

// directoryRepository implements the DirectoryRepository interface
type directoryRepository struct {
	db *gorm.DB
}

// NewDirectoryRepository creates a new directory repository
func NewDirectoryRepository(db *gorm.DB) repositories.DirectoryRepository {
	return &directoryRepository{db: db}
}

// List retrieves all entries of one kind, ordered by name
func (r *directoryRepository) List(ctx context.Context, kind entities.EntityKind) ([]*entities.DirectoryEntry, error) {
	var entries []*entities.DirectoryEntry
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("name ASC").
		Find(&entries).Error
	return entries, err
}

// FindByRef retrieves a single entry by its tagged reference
func (r *directoryRepository) FindByRef(ctx context.Context, ref entities.EntityRef) (*entities.DirectoryEntry, error) {
	var entry entities.DirectoryEntry
	err := r.db.WithContext(ctx).
		Where("kind = ? AND id = ?", ref.Kind, ref.ID).
		First(&entry).Error

	if err != nil {
		return nil, err
	}
	return &entry, nil
}
