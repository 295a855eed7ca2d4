package meeting

import (
	"encoding/json"
	"time"
)

// EntityRefResponse represents a tagged entity reference
type EntityRefResponse struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// NoteResponse represents one embedded note
type NoteResponse struct {
	Text             string             `json:"text"`
	ReferencedEntity *EntityRefResponse `json:"referenced_entity,omitempty"`
	CreatedBy        string             `json:"created_by"`
	Timestamp        time.Time          `json:"timestamp"`
	Discussed        bool               `json:"discussed"`
}

// MeetingResponse represents a meeting record
type MeetingResponse struct {
	ID              string            `json:"id"`
	Owner           EntityRefResponse `json:"owner"`
	Date            time.Time         `json:"date"`
	Mood            *string           `json:"mood,omitempty"`
	TopicsDiscussed json.RawMessage   `json:"topics_discussed"`
	ActionItems     json.RawMessage   `json:"action_items"`
	Notes           []NoteResponse    `json:"notes"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// MeetingListResponse represents a paginated list of meeting records
type MeetingListResponse struct {
	Meetings   []*MeetingResponse `json:"meetings"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}
