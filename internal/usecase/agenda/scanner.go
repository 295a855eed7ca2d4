package agenda

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teampulse/team-pulse/internal/domain/entities"
)

// ScannedNote is one hit from a reference scan: a note that points at
// another entity, together with where it was written.
type ScannedNote struct {
	Note      entities.Note
	MeetingID uuid.UUID
	Owner     entities.EntityRef
}

// ScanReferences walks the given meeting records and extracts every note
// that carries a reference to another entity. Notes without a reference
// (or with an empty target id) are ignored; notes with an unknown
// reference kind are logged and skipped, never fatal. A note without text
// is still scanned. Cost is O(total notes).
func ScanReferences(records []*entities.MeetingRecord, logger *zap.Logger) []ScannedNote {
	scanned := make([]ScannedNote, 0)
	for _, record := range records {
		for _, note := range record.Notes {
			if !note.HasReference() {
				continue
			}
			if !note.ReferencedEntity.Kind.Valid() {
				logger.Warn("skipping note with unknown reference kind",
					zap.String("meeting_id", record.ID.String()),
					zap.Time("timestamp", note.Timestamp),
					zap.String("kind", string(note.ReferencedEntity.Kind)),
				)
				continue
			}
			scanned = append(scanned, ScannedNote{
				Note:      note,
				MeetingID: record.ID,
				Owner:     record.Owner(),
			})
		}
	}
	return scanned
}
