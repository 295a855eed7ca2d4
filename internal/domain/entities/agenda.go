package entities

import (
	"time"

	"github.com/google/uuid"
)

// AgendaItem is the derived, entity-scoped view of a note: "this was said
// about you in somebody else's one-on-one". It is never persisted on its
// own; MeetingID and Timestamp are copied from the source note and
// together identify it.
type AgendaItem struct {
	MeetingID   uuid.UUID `json:"meeting_id"`
	Timestamp   time.Time `json:"timestamp"`
	Text        string    `json:"text"`
	SourceOwner EntityRef `json:"source_owner"`
	CreatedBy   string    `json:"created_by"`
	IsDiscussed bool      `json:"is_discussed"`
}

// AgendaSummary is the per-entity roll-up behind roster badges.
type AgendaSummary struct {
	Count         int          `json:"count"`
	RecentItems   []AgendaItem `json:"recent_items"`
	HasUnresolved bool         `json:"has_unresolved"`
}
