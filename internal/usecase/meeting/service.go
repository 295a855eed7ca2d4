package meeting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teampulse/team-pulse/internal/domain/entities"
	"github.com/teampulse/team-pulse/internal/domain/repositories"
	usecaseErrors "github.com/teampulse/team-pulse/internal/usecase/errors"
)

// Service handles meeting record business logic. The agenda subsystem
// never deletes records, so no delete operation exists here.
type Service struct {
	meetings repositories.MeetingRepository
	logger   *zap.Logger
}

// NewService creates a new meeting service
func NewService(meetings repositories.MeetingRepository, logger *zap.Logger) *Service {
	return &Service{
		meetings: meetings,
		logger:   logger,
	}
}

// CreateMeetingInput represents input for creating a meeting record
type CreateMeetingInput struct {
	Owner           entities.EntityRef
	Date            *time.Time
	Mood            *string
	TopicsDiscussed json.RawMessage
	ActionItems     json.RawMessage
	Notes           []entities.Note
}

// CreateMeeting creates a new meeting record
func (s *Service) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.MeetingRecord, error) {
	if !input.Owner.Kind.IsPerson() || input.Owner.ID == "" {
		return nil, usecaseErrors.ErrInvalidOwner
	}

	date := time.Now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	record := &entities.MeetingRecord{
		OwnerKind:       input.Owner.Kind,
		OwnerID:         input.Owner.ID,
		Date:            date,
		Mood:            input.Mood,
		TopicsDiscussed: jsonOrEmptyArray(input.TopicsDiscussed),
		ActionItems:     jsonOrEmptyArray(input.ActionItems),
		Notes:           input.Notes,
	}
	if record.Notes == nil {
		record.Notes = []entities.Note{}
	}

	if err := s.meetings.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create meeting record: %w", err)
	}
	return record, nil
}

// GetMeeting retrieves a meeting record by ID
func (s *Service) GetMeeting(ctx context.Context, id uuid.UUID) (*entities.MeetingRecord, error) {
	record, err := s.meetings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting record: %w", err)
	}
	return record, nil
}

// ListMeetings retrieves meeting records with filters
func (s *Service) ListMeetings(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.MeetingRecord, int64, error) {
	records, total, err := s.meetings.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list meeting records: %w", err)
	}
	return records, total, nil
}

// UpdateMeetingInput represents input for updating a meeting record.
// Nil fields are left unchanged.
type UpdateMeetingInput struct {
	Date            *time.Time
	Mood            *string
	TopicsDiscussed json.RawMessage
	ActionItems     json.RawMessage
	Notes           []entities.Note
}

// UpdateMeeting rewrites the mutable fields of an existing record. This is
// the normal one-on-one editing flow; replacing notes[] here is how notes
// are appended outside the quick cross-reference action.
func (s *Service) UpdateMeeting(ctx context.Context, id uuid.UUID, input UpdateMeetingInput) (*entities.MeetingRecord, error) {
	record, err := s.meetings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting record: %w", err)
	}

	if input.Date != nil {
		record.Date = *input.Date
	}
	if input.Mood != nil {
		record.Mood = input.Mood
	}
	if input.TopicsDiscussed != nil {
		record.TopicsDiscussed = jsonOrEmptyArray(input.TopicsDiscussed)
	}
	if input.ActionItems != nil {
		record.ActionItems = jsonOrEmptyArray(input.ActionItems)
	}
	if input.Notes != nil {
		record.Notes = input.Notes
	}

	if err := s.meetings.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update meeting record: %w", err)
	}
	return record, nil
}

func jsonOrEmptyArray(raw json.RawMessage) []byte {
	if len(raw) == 0 {
		return []byte("[]")
	}
	return raw
}
