package presenter

import (
	agendadto "github.com/teampulse/team-pulse/internal/adapter/dto/agenda"
	"github.com/teampulse/team-pulse/internal/domain/entities"
)

// NameResolver turns an entity reference into a display name, returning
// "" when the directory cannot resolve it.
type NameResolver func(ref entities.EntityRef) string

// ToEntityRefResponse converts an EntityRef to its DTO, attaching the
// resolved display name when a resolver is supplied
func ToEntityRefResponse(ref entities.EntityRef, resolve NameResolver) agendadto.EntityRefResponse {
	out := agendadto.EntityRefResponse{
		Type: string(ref.Kind),
		ID:   ref.ID,
	}
	if resolve != nil {
		out.Name = resolve(ref)
	}
	return out
}

// ToAgendaItemResponse converts an AgendaItem to its DTO
func ToAgendaItemResponse(item entities.AgendaItem, resolve NameResolver) agendadto.AgendaItemResponse {
	return agendadto.AgendaItemResponse{
		MeetingID:   item.MeetingID.String(),
		Timestamp:   item.Timestamp,
		Text:        item.Text,
		SourceOwner: ToEntityRefResponse(item.SourceOwner, resolve),
		CreatedBy:   item.CreatedBy,
		IsDiscussed: item.IsDiscussed,
	}
}

// ToAgendaListResponse converts a full agenda to its DTO
func ToAgendaListResponse(ref entities.EntityRef, items []entities.AgendaItem, resolve NameResolver) *agendadto.AgendaListResponse {
	responses := make([]agendadto.AgendaItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToAgendaItemResponse(item, resolve)
	}
	return &agendadto.AgendaListResponse{
		Entity: ToEntityRefResponse(ref, resolve),
		Items:  responses,
		Total:  len(responses),
	}
}

// ToSummaryResponse converts a per-kind summary map to its DTO
func ToSummaryResponse(kind entities.EntityKind, summaries map[string]entities.AgendaSummary, resolve NameResolver) *agendadto.SummaryResponse {
	entries := make(map[string]agendadto.SummaryEntryResponse, len(summaries))
	for id, summary := range summaries {
		recent := make([]agendadto.AgendaItemResponse, len(summary.RecentItems))
		for i, item := range summary.RecentItems {
			recent[i] = ToAgendaItemResponse(item, resolve)
		}
		entries[id] = agendadto.SummaryEntryResponse{
			Count:         summary.Count,
			RecentItems:   recent,
			HasUnresolved: summary.HasUnresolved,
		}
	}
	return &agendadto.SummaryResponse{
		Kind:    string(kind),
		Entries: entries,
	}
}

// ToNoteResponse converts an embedded note to its agenda DTO
func ToNoteResponse(note entities.Note, resolve NameResolver) agendadto.NoteResponse {
	out := agendadto.NoteResponse{
		Text:      note.Text,
		CreatedBy: note.CreatedBy,
		Timestamp: note.Timestamp,
		Discussed: note.Discussed,
	}
	if note.ReferencedEntity != nil {
		ref := ToEntityRefResponse(*note.ReferencedEntity, resolve)
		out.ReferencedEntity = &ref
	}
	return out
}
