package agenda

import "time"

// MarkDiscussedRequest represents the request to mark an agenda item discussed
type MarkDiscussedRequest struct {
	MeetingID string    `json:"meeting_id" validate:"required,uuid"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
}

// AddNoteRequest represents the quick "add to agenda" action: leave a note
// for the target entity inside the author's own meeting record
type AddNoteRequest struct {
	AuthorType string `json:"author_type" validate:"required,personkind"`
	AuthorID   string `json:"author_id" validate:"required,min=1,max=64"`
	TargetType string `json:"target_type" validate:"required,entitykind"`
	TargetID   string `json:"target_id" validate:"required,min=1,max=64"`
	Text       string `json:"text" validate:"required,min=1,max=2000"`
}
