package handler

import (
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/teampulse/team-pulse/errors"
	"github.com/teampulse/team-pulse/internal/adapter/repository/memory"
	meetingUsecase "github.com/teampulse/team-pulse/internal/usecase/meeting"
	pkgvalidator "github.com/teampulse/team-pulse/pkg/validator"
)

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Info    string `json:"info"`
}

func TestHandleErrorAppErrorMapping(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	appErr := errors.ErrMeetingNotFound("a2f1c6a8-7d28-4f06-9dd2-1f0a36a35a10")
	if err := HandleError(zap.NewNop(), c, appErr); err != nil {
		t.Fatalf("HandleError: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Code != int(errors.ErrorCode_MEETING_NOT_FOUND) {
		t.Fatalf("expected code %d, got %d", errors.ErrorCode_MEETING_NOT_FOUND, body.Code)
	}
	if body.Message != "Meeting record not found" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestHandleErrorPlainErrorIsInternal(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := HandleError(zap.NewNop(), c, stdErrors.New("disk on fire")); err != nil {
		t.Fatalf("HandleError: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Code != int(errors.ErrorCode_INTERNAL) {
		t.Fatalf("expected code %d, got %d", errors.ErrorCode_INTERNAL, body.Code)
	}
	if body.Info != "disk on fire" {
		t.Fatalf("raw error must land in info, got %q", body.Info)
	}
}

func TestGetMeetingEndpointNotFound(t *testing.T) {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	h := NewMeetingHandler(meetingUsecase.NewService(memory.NewMeetingRepository(), zap.NewNop()), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/meetings/:id")
	c.SetParamNames("id")
	c.SetParamValues("a2f1c6a8-7d28-4f06-9dd2-1f0a36a35a10")

	if err := h.GetMeeting(c); err != nil {
		t.Fatalf("GetMeeting: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}

	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Code != int(errors.ErrorCode_MEETING_NOT_FOUND) {
		t.Fatalf("expected code %d, got %d", errors.ErrorCode_MEETING_NOT_FOUND, body.Code)
	}
}
