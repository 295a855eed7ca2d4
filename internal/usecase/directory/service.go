package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teampulse/team-pulse/internal/domain/entities"
	"github.com/teampulse/team-pulse/internal/domain/repositories"
	"github.com/teampulse/team-pulse/internal/infrastructure/cache"
	usecaseErrors "github.com/teampulse/team-pulse/internal/usecase/errors"
)

// DefaultNameTTL bounds how stale a cached display name may get.
const DefaultNameTTL = 5 * time.Minute

// Service resolves entity references to display names and lists directory
// rosters. It is read-only and deliberately forgiving: a directory outage
// degrades to empty names and empty lists so agenda views built from
// already-fetched meeting data keep rendering.
type Service struct {
	entries repositories.DirectoryRepository
	cache   cache.Store
	logger  *zap.Logger
	ttl     time.Duration
}

// NewService creates a new directory service
func NewService(entries repositories.DirectoryRepository, store cache.Store, logger *zap.Logger, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultNameTTL
	}
	return &Service{
		entries: entries,
		cache:   store,
		logger:  logger,
		ttl:     ttl,
	}
}

// ResolveName returns the display name for a reference, or "" when the
// entry is missing, the reference is malformed, or the directory is
// unavailable. Results are cached with a short TTL.
func (s *Service) ResolveName(ctx context.Context, ref entities.EntityRef) string {
	if !ref.Kind.Valid() || ref.ID == "" {
		return ""
	}

	key := nameKey(ref)
	if name, ok := s.cache.Get(ctx, key); ok {
		return name
	}

	entry, err := s.entries.FindByRef(ctx, ref)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("directory lookup failed",
				zap.String("kind", string(ref.Kind)),
				zap.String("id", ref.ID),
				zap.Error(err),
			)
		}
		return ""
	}

	s.cache.Set(ctx, key, entry.Name, s.ttl)
	return entry.Name
}

// List returns all entries of one kind. A directory outage yields an
// empty list, never an error the caller has to special-case.
func (s *Service) List(ctx context.Context, kind entities.EntityKind) ([]*entities.DirectoryEntry, error) {
	if !kind.Valid() {
		return nil, usecaseErrors.ErrUnknownEntityKind
	}

	entries, err := s.entries.List(ctx, kind)
	if err != nil {
		s.logger.Warn("directory unavailable, serving empty roster",
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return []*entities.DirectoryEntry{}, nil
	}
	return entries, nil
}

// Get retrieves a single directory entry
func (s *Service) Get(ctx context.Context, ref entities.EntityRef) (*entities.DirectoryEntry, error) {
	if !ref.Kind.Valid() || ref.ID == "" {
		return nil, usecaseErrors.ErrInvalidEntityRef
	}

	entry, err := s.entries.FindByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get directory entry: %w", err)
	}
	return entry, nil
}

func nameKey(ref entities.EntityRef) string {
	return "directory:name:" + string(ref.Kind) + ":" + ref.ID
}
