package meeting

import (
	"encoding/json"
	"time"
)

// NoteRequest represents one note in a create/update payload
type NoteRequest struct {
	Text             string            `json:"text" validate:"required,min=1,max=2000"`
	ReferencedEntity *EntityRefRequest `json:"referenced_entity,omitempty"`
	CreatedBy        string            `json:"created_by" validate:"required,min=1,max=64"`
	Timestamp        *time.Time        `json:"timestamp,omitempty"`
	Discussed        bool              `json:"discussed"`
}

// EntityRefRequest represents a tagged entity reference in a payload
type EntityRefRequest struct {
	Type string `json:"type" validate:"required,entitykind"`
	ID   string `json:"id" validate:"required,min=1,max=64"`
}

// CreateMeetingRequest represents the request to create a meeting record
type CreateMeetingRequest struct {
	OwnerType       string          `json:"owner_type" validate:"required,personkind"`
	OwnerID         string          `json:"owner_id" validate:"required,min=1,max=64"`
	Date            *time.Time      `json:"date,omitempty"`
	Mood            *string         `json:"mood,omitempty" validate:"omitempty,max=50"`
	TopicsDiscussed json.RawMessage `json:"topics_discussed,omitempty"`
	ActionItems     json.RawMessage `json:"action_items,omitempty"`
	Notes           []NoteRequest   `json:"notes,omitempty" validate:"omitempty,dive"`
}

// UpdateMeetingRequest represents the request to update a meeting record.
// Omitted fields are left unchanged; sending notes replaces the whole list
// (the normal one-on-one editing flow).
type UpdateMeetingRequest struct {
	Date            *time.Time      `json:"date,omitempty"`
	Mood            *string         `json:"mood,omitempty" validate:"omitempty,max=50"`
	TopicsDiscussed json.RawMessage `json:"topics_discussed,omitempty"`
	ActionItems     json.RawMessage `json:"action_items,omitempty"`
	Notes           []NoteRequest   `json:"notes,omitempty" validate:"omitempty,dive"`
}

// ListMeetingsRequest represents query parameters for listing meeting records
type ListMeetingsRequest struct {
	OwnerType *string `query:"owner_type" validate:"omitempty,personkind"`
	OwnerID   *string `query:"owner_id"`
	Page      int     `query:"page" validate:"omitempty,min=1"`
	PageSize  int     `query:"page_size" validate:"omitempty,min=1,max=100"`
	SortBy    string  `query:"sort_by" validate:"omitempty,oneof=date created_at"`
	SortOrder string  `query:"sort_order" validate:"omitempty,oneof=asc desc"`
}
