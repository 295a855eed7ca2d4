package agenda

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teampulse/team-pulse/internal/domain/entities"
	"github.com/teampulse/team-pulse/internal/domain/repositories"
	usecaseErrors "github.com/teampulse/team-pulse/internal/usecase/errors"
)

// DefaultRecentItems is how many items a summary keeps per entity when
// the caller does not configure a limit.
const DefaultRecentItems = 5

// Service is the agenda cross-reference engine. Every read re-derives the
// reference index from the current meeting store contents; there is no
// cached state between calls.
type Service struct {
	meetings repositories.MeetingRepository
	logger   *zap.Logger
	recent   int
}

// NewService creates a new agenda service
func NewService(meetings repositories.MeetingRepository, logger *zap.Logger, recentItems int) *Service {
	if recentItems <= 0 {
		recentItems = DefaultRecentItems
	}
	return &Service{
		meetings: meetings,
		logger:   logger,
		recent:   recentItems,
	}
}

// buildIndex scans the full meeting store and groups referencing notes by
// target. A store outage degrades to an empty index so that read paths
// render empty agendas instead of failing.
func (s *Service) buildIndex(ctx context.Context) *Index {
	records, err := s.meetings.ListAll(ctx)
	if err != nil {
		s.logger.Warn("meeting store unavailable, serving empty agenda", zap.Error(err))
		return BuildIndex(nil)
	}
	return BuildIndex(ScanReferences(records, s.logger))
}

// GetAgendaItems returns every agenda item for one entity, most recent
// first. Absence of items is a valid, common result.
func (s *Service) GetAgendaItems(ctx context.Context, ref entities.EntityRef) ([]entities.AgendaItem, error) {
	if !ref.Kind.Valid() || ref.ID == "" {
		return nil, usecaseErrors.ErrInvalidEntityRef
	}

	bucket := s.buildIndex(ctx).Lookup(ref)
	items := make([]entities.AgendaItem, 0, len(bucket))
	for _, sn := range bucket {
		items = append(items, toAgendaItem(sn))
	}
	return items, nil
}

// GetSummary computes the per-entity roll-up for every entity of one kind
// in a single O(notes) pass. Entities with zero referencing notes are
// omitted; callers treat missing keys as the zero summary.
func (s *Service) GetSummary(ctx context.Context, kind entities.EntityKind) (map[string]entities.AgendaSummary, error) {
	if !kind.Valid() {
		return nil, usecaseErrors.ErrUnknownEntityKind
	}

	summaries := make(map[string]entities.AgendaSummary)
	for ref, bucket := range s.buildIndex(ctx).Buckets() {
		if ref.Kind != kind {
			continue
		}

		recent := make([]entities.AgendaItem, 0, s.recent)
		hasUnresolved := false
		for i, sn := range bucket {
			if i < s.recent {
				recent = append(recent, toAgendaItem(sn))
			}
			if !sn.Note.Discussed {
				hasUnresolved = true
			}
		}

		summaries[ref.ID] = entities.AgendaSummary{
			Count:         len(bucket),
			RecentItems:   recent,
			HasUnresolved: hasUnresolved,
		}
	}
	return summaries, nil
}

// MarkDiscussed flips the discussed flag of the note identified by
// (meetingID, timestamp). Returns false when the meeting or the note
// cannot be found, leaving the store untouched; marking an already
// discussed note is an idempotent no-op that still returns true.
func (s *Service) MarkDiscussed(ctx context.Context, meetingID uuid.UUID, timestamp time.Time) (bool, error) {
	found, err := s.meetings.MarkNoteDiscussed(ctx, meetingID, timestamp)
	if err != nil {
		return false, fmt.Errorf("failed to mark note discussed: %w", err)
	}
	if !found {
		s.logger.Info("mark discussed target not found",
			zap.String("meeting_id", meetingID.String()),
			zap.Time("timestamp", timestamp),
		)
	}
	return found, nil
}

// CrossReferenceInput represents input for the quick "add to agenda" action
type CrossReferenceInput struct {
	Author entities.EntityRef
	Target entities.EntityRef
	Text   string
}

// CrossReferenceResult reports where the injected note landed.
type CrossReferenceResult struct {
	Note           entities.Note
	MeetingID      uuid.UUID
	CreatedMeeting bool
}

// AddCrossReference leaves a note for the target entity without opening a
// full one-on-one editing flow: the note is appended to the author's most
// recent meeting record (a minimal record is created when the author has
// none) so it surfaces through the normal scanner path with no special
// casing.
func (s *Service) AddCrossReference(ctx context.Context, input CrossReferenceInput) (*CrossReferenceResult, error) {
	if !input.Author.Kind.IsPerson() || input.Author.ID == "" {
		return nil, usecaseErrors.ErrInvalidAuthor
	}
	if !input.Target.Kind.Valid() || input.Target.ID == "" {
		return nil, usecaseErrors.ErrInvalidEntityRef
	}
	if input.Text == "" {
		return nil, usecaseErrors.ErrEmptyNoteText
	}

	target := input.Target
	note := entities.Note{
		Text:             input.Text,
		ReferencedEntity: &target,
		CreatedBy:        input.Author.ID,
		Timestamp:        time.Now().UTC(),
		Discussed:        false,
	}

	records, err := s.meetings.ListByOwner(ctx, input.Author)
	if err != nil {
		return nil, fmt.Errorf("failed to list author meetings: %w", err)
	}

	if len(records) > 0 {
		latest := records[0]
		if err := s.meetings.AppendNote(ctx, latest.ID, note); err != nil {
			return nil, fmt.Errorf("failed to append note: %w", err)
		}
		return &CrossReferenceResult{Note: note, MeetingID: latest.ID}, nil
	}

	// No record to attach to: create a minimal one owned by the author.
	record := &entities.MeetingRecord{
		OwnerKind: input.Author.Kind,
		OwnerID:   input.Author.ID,
		Date:      time.Now().UTC(),
		Notes:     []entities.Note{note},
	}
	if err := s.meetings.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create meeting record: %w", err)
	}
	return &CrossReferenceResult{Note: note, MeetingID: record.ID, CreatedMeeting: true}, nil
}

func toAgendaItem(sn ScannedNote) entities.AgendaItem {
	return entities.AgendaItem{
		MeetingID:   sn.MeetingID,
		Timestamp:   sn.Note.Timestamp,
		Text:        sn.Note.Text,
		SourceOwner: sn.Owner,
		CreatedBy:   sn.Note.CreatedBy,
		IsDiscussed: sn.Note.Discussed,
	}
}
