package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	agendadto "github.com/teampulse/team-pulse/internal/adapter/dto/agenda"
	"github.com/teampulse/team-pulse/internal/adapter/repository/memory"
	"github.com/teampulse/team-pulse/internal/domain/entities"
	"github.com/teampulse/team-pulse/internal/infrastructure/cache"
	agendaUsecase "github.com/teampulse/team-pulse/internal/usecase/agenda"
	directoryUsecase "github.com/teampulse/team-pulse/internal/usecase/directory"
	pkgvalidator "github.com/teampulse/team-pulse/pkg/validator"
)

type testEnv struct {
	echo     *echo.Echo
	handler  *Agenda
	meetings *memory.MeetingRepository
	entries  *memory.DirectoryRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	e := echo.New()
	e.Validator = pkgvalidator.New()

	meetings := memory.NewMeetingRepository()
	entries := memory.NewDirectoryRepository()
	logger := zap.NewNop()

	agendaSvc := agendaUsecase.NewService(meetings, logger, 0)
	directorySvc := directoryUsecase.NewService(entries, cache.NewMemoryStore(), logger, time.Minute)

	return &testEnv{
		echo:     e,
		handler:  NewAgendaHandler(agendaSvc, directorySvc, logger),
		meetings: meetings,
		entries:  entries,
	}
}

func (env *testEnv) seedMeeting(t *testing.T, ownerID string, notes ...entities.Note) *entities.MeetingRecord {
	t.Helper()
	record := &entities.MeetingRecord{
		OwnerKind: entities.EntityKindTeamMember,
		OwnerID:   ownerID,
		Date:      time.Now().UTC(),
		Notes:     notes,
	}
	if err := env.meetings.Create(context.Background(), record); err != nil {
		t.Fatalf("seed meeting: %v", err)
	}
	return record
}

func TestGetAgendaItemsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	ts := time.Now().UTC().Truncate(time.Second)

	env.entries.Put(&entities.DirectoryEntry{
		Kind: entities.EntityKindTeamMember, ID: "bob", Name: "Bob Chen", Active: true,
	})
	env.seedMeeting(t, "alice", entities.Note{
		Text:             "ask bob about hiring",
		ReferencedEntity: &entities.EntityRef{Kind: entities.EntityKindTeamMember, ID: "bob"},
		CreatedBy:        "alice",
		Timestamp:        ts,
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	c.SetPath("/v1/agenda/:kind/:id")
	c.SetParamNames("kind", "id")
	c.SetParamValues("team_member", "bob")

	if err := env.handler.GetAgendaItems(c); err != nil {
		t.Fatalf("GetAgendaItems: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp agendadto.AgendaListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("expected 1 item, got %d", resp.Total)
	}
	if resp.Entity.Name != "Bob Chen" {
		t.Fatalf("directory name must be attached, got %q", resp.Entity.Name)
	}
	if resp.Items[0].Text != "ask bob about hiring" {
		t.Fatalf("unexpected item text %q", resp.Items[0].Text)
	}
}

func TestGetAgendaItemsEndpoint_InvalidKind(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	c.SetPath("/v1/agenda/:kind/:id")
	c.SetParamNames("kind", "id")
	c.SetParamValues("martian", "zork")

	if err := env.handler.GetAgendaItems(c); err != nil {
		t.Fatalf("GetAgendaItems: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetSummaryEndpoint(t *testing.T) {
	env := newTestEnv(t)
	ts := time.Now().UTC().Truncate(time.Second)

	env.seedMeeting(t, "alice",
		entities.Note{
			Text:             "open item",
			ReferencedEntity: &entities.EntityRef{Kind: entities.EntityKindTeamMember, ID: "bob"},
			Timestamp:        ts,
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	c.SetPath("/v1/agenda/summary/:kind")
	c.SetParamNames("kind")
	c.SetParamValues("team_member")

	if err := env.handler.GetSummary(c); err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp agendadto.SummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	entry, ok := resp.Entries["bob"]
	if !ok {
		t.Fatalf("missing summary entry for bob")
	}
	if entry.Count != 1 || !entry.HasUnresolved {
		t.Fatalf("unexpected entry %+v", entry)
	}
}

func TestMarkDiscussedEndpoint(t *testing.T) {
	env := newTestEnv(t)
	ts := time.Now().UTC().Truncate(time.Second)

	record := env.seedMeeting(t, "alice", entities.Note{
		Text:             "open item",
		ReferencedEntity: &entities.EntityRef{Kind: entities.EntityKindTeamMember, ID: "bob"},
		Timestamp:        ts,
	})

	body, _ := json.Marshal(agendadto.MarkDiscussedRequest{
		MeetingID: record.ID.String(),
		Timestamp: ts,
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/agenda/discussed", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)

	if err := env.handler.MarkDiscussed(c); err != nil {
		t.Fatalf("MarkDiscussed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data agendadto.MarkDiscussedResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Data.Updated {
		t.Fatalf("expected updated=true")
	}

	got, _ := env.meetings.FindByID(context.Background(), record.ID)
	if !got.Notes[0].Discussed {
		t.Fatalf("note must be discussed in the store")
	}
}

func TestMarkDiscussedEndpoint_UnknownNote(t *testing.T) {
	env := newTestEnv(t)

	body, _ := json.Marshal(agendadto.MarkDiscussedRequest{
		MeetingID: "a2f1c6a8-7d28-4f06-9dd2-1f0a36a35a10",
		Timestamp: time.Now().UTC(),
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/agenda/discussed", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)

	if err := env.handler.MarkDiscussed(c); err != nil {
		t.Fatalf("MarkDiscussed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("unknown note must still be a 200, got %d", rec.Code)
	}

	var resp struct {
		Data agendadto.MarkDiscussedResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Updated {
		t.Fatalf("expected updated=false for unknown note")
	}
}

func TestAddNoteEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.seedMeeting(t, "alice")

	body := `{
		"author_type": "team_member",
		"author_id": "alice",
		"target_type": "project",
		"target_id": "apollo",
		"text": "apollo needs a decision"
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/agenda/notes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)

	if err := env.handler.AddNote(c); err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp agendadto.AddNoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.CreatedMeeting {
		t.Fatalf("author has a meeting, no new record expected")
	}
	if resp.Note.ReferencedEntity == nil || resp.Note.ReferencedEntity.ID != "apollo" {
		t.Fatalf("unexpected note reference %+v", resp.Note.ReferencedEntity)
	}
}

func TestAddNoteEndpoint_ValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	// A project cannot author notes.
	body := `{
		"author_type": "project",
		"author_id": "apollo",
		"target_type": "team_member",
		"target_id": "bob",
		"text": "x"
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/agenda/notes", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)

	if err := env.handler.AddNote(c); err != nil {
		t.Fatalf("AddNote: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
