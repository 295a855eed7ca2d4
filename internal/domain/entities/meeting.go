package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Note is one entry in a meeting record's embedded note list. Notes carry
// no id of their own: the pair (meeting id, timestamp) identifies a note
// across the whole store.
type Note struct {
	Text             string     `json:"text"`
	ReferencedEntity *EntityRef `json:"referenced_entity,omitempty"`
	CreatedBy        string     `json:"created_by"`
	Timestamp        time.Time  `json:"timestamp"`
	Discussed        bool       `json:"discussed"`
}

// HasReference reports whether the note points at another entity.
// A reference without an id counts as absent.
func (n Note) HasReference() bool {
	return n.ReferencedEntity != nil && n.ReferencedEntity.ID != ""
}

// MeetingRecord is a one-on-one meeting record owned by exactly one
// person. Notes are embedded as an ordered, append-only jsonb list
// (insertion order significant, most recent last).
type MeetingRecord struct {
	ID              uuid.UUID                 `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerKind       EntityKind                `gorm:"type:varchar(20);not null;index:idx_meetings_owner" json:"-"`
	OwnerID         string                    `gorm:"type:varchar(64);not null;index:idx_meetings_owner" json:"-"`
	Date            time.Time                 `gorm:"not null;index" json:"date"`
	Mood            *string                   `gorm:"type:varchar(50)" json:"mood,omitempty"`
	TopicsDiscussed datatypes.JSON            `gorm:"type:jsonb;default:'[]'" json:"topics_discussed"`
	ActionItems     datatypes.JSON            `gorm:"type:jsonb;default:'[]'" json:"action_items"`
	Notes           datatypes.JSONSlice[Note] `gorm:"type:jsonb" json:"notes"`
	Version         int                       `gorm:"not null;default:1" json:"-"`
	CreatedAt       time.Time                 `gorm:"default:now()" json:"created_at"`
	UpdatedAt       time.Time                 `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for MeetingRecord
func (MeetingRecord) TableName() string {
	return "meeting_records"
}

// Owner returns the record owner as a tagged reference.
func (m *MeetingRecord) Owner() EntityRef {
	return EntityRef{Kind: m.OwnerKind, ID: m.OwnerID}
}

// FindNote locates the note with the exact given timestamp and returns
// its index in the notes list.
func (m *MeetingRecord) FindNote(timestamp time.Time) (int, bool) {
	for i := range m.Notes {
		if m.Notes[i].Timestamp.Equal(timestamp) {
			return i, true
		}
	}
	return -1, false
}

// AppendNote appends a note, preserving insertion order.
func (m *MeetingRecord) AppendNote(n Note) {
	m.Notes = append(m.Notes, n)
}
