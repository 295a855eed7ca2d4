package presenter

import (
	directorydto "github.com/teampulse/team-pulse/internal/adapter/dto/directory"
	"github.com/teampulse/team-pulse/internal/domain/entities"
)

// ToEntryResponse converts a DirectoryEntry to its DTO
func ToEntryResponse(entry *entities.DirectoryEntry) *directorydto.EntryResponse {
	if entry == nil {
		return nil
	}
	return &directorydto.EntryResponse{
		Type:      string(entry.Kind),
		ID:        entry.ID,
		Name:      entry.Name,
		Email:     entry.Email,
		Active:    entry.Active,
		CreatedAt: entry.CreatedAt,
	}
}

// ToRosterResponse merges a directory roster with its agenda badge
// summaries. Entities missing from the summary map get the zero badge.
func ToRosterResponse(kind entities.EntityKind, entries []*entities.DirectoryEntry, summaries map[string]entities.AgendaSummary) *directorydto.RosterResponse {
	out := make([]*directorydto.RosterEntryResponse, len(entries))
	for i, entry := range entries {
		roster := &directorydto.RosterEntryResponse{
			EntryResponse: *ToEntryResponse(entry),
		}
		if summary, ok := summaries[entry.ID]; ok {
			roster.AgendaCount = summary.Count
			roster.HasUnresolved = summary.HasUnresolved
		}
		out[i] = roster
	}
	return &directorydto.RosterResponse{
		Kind:    string(kind),
		Entries: out,
		Total:   len(out),
	}
}
