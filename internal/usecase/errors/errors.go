package errors

import "errors"

// Meeting errors
var (
	ErrMeetingNotFound = errors.New("meeting record not found")
	ErrInvalidOwner    = errors.New("meeting owner must be a team member or peer")
)

// Agenda errors
var (
	ErrUnknownEntityKind = errors.New("entity kind must be team_member, peer, stakeholder or project")
	ErrInvalidEntityRef  = errors.New("entity reference requires a known kind and a non-empty id")
	ErrInvalidAuthor     = errors.New("note author must be a team member or peer with an id")
	ErrEmptyNoteText     = errors.New("note text is required")
)

// Directory errors
var (
	ErrEntryNotFound = errors.New("directory entry not found")
)
