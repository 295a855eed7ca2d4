package directory

import "time"

// EntryResponse represents one directory entry
type EntryResponse struct {
	Type      string    `json:"type"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// RosterEntryResponse is a directory entry with its agenda badge attached
type RosterEntryResponse struct {
	EntryResponse
	AgendaCount   int  `json:"agenda_count"`
	HasUnresolved bool `json:"has_unresolved"`
}

// RosterResponse represents a roster of one kind with badge counts
type RosterResponse struct {
	Kind    string                 `json:"kind"`
	Entries []*RosterEntryResponse `json:"entries"`
	Total   int                    `json:"total"`
}
