package presenter

import (
	"encoding/json"

	meetingdto "github.com/teampulse/team-pulse/internal/adapter/dto/meeting"
	"github.com/teampulse/team-pulse/internal/domain/entities"
)

// ToMeetingResponse converts a MeetingRecord entity to MeetingResponse DTO
func ToMeetingResponse(record *entities.MeetingRecord) *meetingdto.MeetingResponse {
	if record == nil {
		return nil
	}

	notes := make([]meetingdto.NoteResponse, len(record.Notes))
	for i, note := range record.Notes {
		notes[i] = toMeetingNoteResponse(note)
	}

	return &meetingdto.MeetingResponse{
		ID: record.ID.String(),
		Owner: meetingdto.EntityRefResponse{
			Type: string(record.OwnerKind),
			ID:   record.OwnerID,
		},
		Date:            record.Date,
		Mood:            record.Mood,
		TopicsDiscussed: json.RawMessage(record.TopicsDiscussed),
		ActionItems:     json.RawMessage(record.ActionItems),
		Notes:           notes,
		CreatedAt:       record.CreatedAt,
		UpdatedAt:       record.UpdatedAt,
	}
}

// ToMeetingListResponse converts a slice of MeetingRecords to MeetingListResponse
func ToMeetingListResponse(records []*entities.MeetingRecord, total int64, page, pageSize int) *meetingdto.MeetingListResponse {
	responses := make([]*meetingdto.MeetingResponse, len(records))
	for i, record := range records {
		responses[i] = ToMeetingResponse(record)
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &meetingdto.MeetingListResponse{
		Meetings:   responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

func toMeetingNoteResponse(note entities.Note) meetingdto.NoteResponse {
	out := meetingdto.NoteResponse{
		Text:      note.Text,
		CreatedBy: note.CreatedBy,
		Timestamp: note.Timestamp,
		Discussed: note.Discussed,
	}
	if note.ReferencedEntity != nil {
		out.ReferencedEntity = &meetingdto.EntityRefResponse{
			Type: string(note.ReferencedEntity.Kind),
			ID:   note.ReferencedEntity.ID,
		}
	}
	return out
}
