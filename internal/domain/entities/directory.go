package entities

import "time"

// DirectoryEntry is a row in one of the entity directories (team members,
// peers, stakeholders, projects). The agenda engine only ever reads these
// to resolve display names; all agenda logic works on references alone.
type DirectoryEntry struct {
	Kind      EntityKind `gorm:"type:varchar(20);primaryKey" json:"type"`
	ID        string     `gorm:"type:varchar(64);primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(255);not null" json:"name"`
	Email     *string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Active    bool       `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time  `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time  `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for DirectoryEntry
func (DirectoryEntry) TableName() string {
	return "directory_entries"
}

// Ref returns the entry's tagged reference.
func (e *DirectoryEntry) Ref() EntityRef {
	return EntityRef{Kind: e.Kind, ID: e.ID}
}
