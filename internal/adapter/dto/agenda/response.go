package agenda

import "time"

// EntityRefResponse is a tagged entity reference with its resolved display
// name attached (empty when the directory cannot resolve it)
type EntityRefResponse struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// AgendaItemResponse represents one agenda item
type AgendaItemResponse struct {
	MeetingID   string            `json:"meeting_id"`
	Timestamp   time.Time         `json:"timestamp"`
	Text        string            `json:"text"`
	SourceOwner EntityRefResponse `json:"source_owner"`
	CreatedBy   string            `json:"created_by"`
	IsDiscussed bool              `json:"is_discussed"`
}

// AgendaListResponse represents the full agenda for one entity
type AgendaListResponse struct {
	Entity EntityRefResponse    `json:"entity"`
	Items  []AgendaItemResponse `json:"items"`
	Total  int                  `json:"total"`
}

// SummaryEntryResponse represents the badge roll-up for one entity
type SummaryEntryResponse struct {
	Count         int                  `json:"count"`
	RecentItems   []AgendaItemResponse `json:"recent_items"`
	HasUnresolved bool                 `json:"has_unresolved"`
}

// SummaryResponse represents the roll-up for every entity of one kind.
// Entities without referencing notes are omitted; clients treat a missing
// key as the zero entry.
type SummaryResponse struct {
	Kind    string                          `json:"kind"`
	Entries map[string]SummaryEntryResponse `json:"entries"`
}

// MarkDiscussedResponse reports whether the flag was applied (or already set)
type MarkDiscussedResponse struct {
	Updated bool `json:"updated"`
}

// AddNoteResponse reports where the injected note landed
type AddNoteResponse struct {
	MeetingID      string       `json:"meeting_id"`
	CreatedMeeting bool         `json:"created_meeting"`
	Note           NoteResponse `json:"note"`
}

// NoteResponse represents an embedded note
type NoteResponse struct {
	Text             string             `json:"text"`
	ReferencedEntity *EntityRefResponse `json:"referenced_entity,omitempty"`
	CreatedBy        string             `json:"created_by"`
	Timestamp        time.Time          `json:"timestamp"`
	Discussed        bool               `json:"discussed"`
}
