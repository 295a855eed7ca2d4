package errors

// ErrorCode identifies an application error category. Codes are grouped
// by concern so clients can range-match.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1006

	// Meeting records
	ErrorCode_MEETING_NOT_FOUND     ErrorCode = 3000
	ErrorCode_MEETING_INVALID_OWNER ErrorCode = 3002

	// Agenda cross-references
	ErrorCode_AGENDA_INVALID_ENTITY_REF  ErrorCode = 4000
	ErrorCode_AGENDA_UNKNOWN_ENTITY_KIND ErrorCode = 4001

	// Directory
	ErrorCode_DIRECTORY_ENTRY_NOT_FOUND ErrorCode = 5000

	// Database
	ErrorCode_DB_CONNECTION_FAILED ErrorCode = 7000
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_MEETING_NOT_FOUND:          "MEETING_NOT_FOUND",
	ErrorCode_MEETING_INVALID_OWNER:      "MEETING_INVALID_OWNER",
	ErrorCode_AGENDA_INVALID_ENTITY_REF:  "AGENDA_INVALID_ENTITY_REF",
	ErrorCode_AGENDA_UNKNOWN_ENTITY_KIND: "AGENDA_UNKNOWN_ENTITY_KIND",
	ErrorCode_DIRECTORY_ENTRY_NOT_FOUND:  "DIRECTORY_ENTRY_NOT_FOUND",
	ErrorCode_DB_CONNECTION_FAILED:       "DB_CONNECTION_FAILED",
}

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
