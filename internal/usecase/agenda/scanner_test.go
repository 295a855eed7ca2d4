package agenda

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teampulse/team-pulse/internal/domain/entities"
)

func TestScanReferences_ExtractsOnlyReferencingNotes(t *testing.T) {
	meetingID := uuid.New()
	now := time.Now().UTC()

	records := []*entities.MeetingRecord{
		{
			ID:        meetingID,
			OwnerKind: entities.EntityKindTeamMember,
			OwnerID:   "alice",
			Notes: []entities.Note{
				{Text: "plain note", Timestamp: now},
				{
					Text:             "talk to bob about the rollout",
					ReferencedEntity: &entities.EntityRef{Kind: entities.EntityKindTeamMember, ID: "bob"},
					Timestamp:        now.Add(time.Minute),
				},
				{
					Text:             "empty target id",
					ReferencedEntity: &entities.EntityRef{Kind: entities.EntityKindPeer, ID: ""},
					Timestamp:        now.Add(2 * time.Minute),
				},
			},
		},
	}

	scanned := ScanReferences(records, zap.NewNop())
	if len(scanned) != 1 {
		t.Fatalf("expected 1 scanned note, got %d", len(scanned))
	}
	if scanned[0].Note.ReferencedEntity.ID != "bob" {
		t.Fatalf("unexpected target %q", scanned[0].Note.ReferencedEntity.ID)
	}
	if scanned[0].MeetingID != meetingID {
		t.Fatalf("unexpected meeting id %s", scanned[0].MeetingID)
	}
	if scanned[0].Owner != (entities.EntityRef{Kind: entities.EntityKindTeamMember, ID: "alice"}) {
		t.Fatalf("unexpected owner %+v", scanned[0].Owner)
	}
}

func TestScanReferences_SkipsUnknownKind(t *testing.T) {
	records := []*entities.MeetingRecord{
		{
			ID:        uuid.New(),
			OwnerKind: entities.EntityKindPeer,
			OwnerID:   "carol",
			Notes: []entities.Note{
				{
					Text:             "who is this",
					ReferencedEntity: &entities.EntityRef{Kind: "martian", ID: "zork"},
					Timestamp:        time.Now().UTC(),
				},
				{
					Text:             "project check-in",
					ReferencedEntity: &entities.EntityRef{Kind: entities.EntityKindProject, ID: "apollo"},
					Timestamp:        time.Now().UTC(),
				},
			},
		},
	}

	scanned := ScanReferences(records, zap.NewNop())
	if len(scanned) != 1 {
		t.Fatalf("expected unknown kind to be skipped, got %d notes", len(scanned))
	}
	if scanned[0].Note.ReferencedEntity.Kind != entities.EntityKindProject {
		t.Fatalf("unexpected kind %q", scanned[0].Note.ReferencedEntity.Kind)
	}
}

func TestScanReferences_KeepsEmptyTextNotes(t *testing.T) {
	records := []*entities.MeetingRecord{
		{
			ID:        uuid.New(),
			OwnerKind: entities.EntityKindTeamMember,
			OwnerID:   "alice",
			Notes: []entities.Note{
				{
					Text:             "",
					ReferencedEntity: &entities.EntityRef{Kind: entities.EntityKindStakeholder, ID: "vp-eng"},
					Timestamp:        time.Now().UTC(),
				},
			},
		},
	}

	scanned := ScanReferences(records, zap.NewNop())
	if len(scanned) != 1 {
		t.Fatalf("notes without text must still be scanned, got %d", len(scanned))
	}
}
