package handler

import (
	stdErrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/teampulse/team-pulse/errors"
	meetingdto "github.com/teampulse/team-pulse/internal/adapter/dto/meeting"
	"github.com/teampulse/team-pulse/internal/adapter/presenter"
	"github.com/teampulse/team-pulse/internal/domain/entities"
	usecaseErrors "github.com/teampulse/team-pulse/internal/usecase/errors"
	meetingUsecase "github.com/teampulse/team-pulse/internal/usecase/meeting"
)

// Meeting handles meeting record HTTP requests
type Meeting struct {
	meetingService *meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService *meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// CreateMeeting handles POST /meetings
// @Summary      Create a meeting record
// @Description  Creates a one-on-one meeting record owned by a team member or peer
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting record"
// @Success      201      {object}  meeting.MeetingResponse  "Meeting record created"
// @Failure      400      {object}  map[string]interface{}  "Invalid request"
// @Router       /meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meetingdto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	input := meetingUsecase.CreateMeetingInput{
		Owner:           entities.EntityRef{Kind: entities.EntityKind(req.OwnerType), ID: req.OwnerID},
		Date:            req.Date,
		Mood:            req.Mood,
		TopicsDiscussed: req.TopicsDiscussed,
		ActionItems:     req.ActionItems,
		Notes:           toNotes(req.Notes),
	}

	record, err := h.meetingService.CreateMeeting(c.Request().Context(), input)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrInvalidOwner) {
			return HandleError(h.logger, c, errors.ErrInvalidOwner(req.OwnerType))
		}
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusCreated, presenter.ToMeetingResponse(record))
}

// GetMeeting handles GET /meetings/:id
// @Summary      Get a meeting record
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting record ID (UUID)"
// @Success      200  {object}  meeting.MeetingResponse  "Meeting record"
// @Failure      400  {object}  map[string]interface{}  "Invalid meeting ID"
// @Failure      404  {object}  map[string]interface{}  "Meeting record not found"
// @Router       /meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting ID must be a valid UUID"))
	}

	record, err := h.meetingService.GetMeeting(c.Request().Context(), id)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound) {
			return HandleError(h.logger, c, errors.ErrMeetingNotFound(id.String()))
		}
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToMeetingResponse(record))
}

// ListMeetings handles GET /meetings
// @Summary      List meeting records
// @Tags         Meetings
// @Produce      json
// @Param        owner_type  query     string  false  "Owner kind filter (team_member/peer)"
// @Param        owner_id    query     string  false  "Owner ID filter"
// @Param        page        query     int     false  "Page number (default: 1)"
// @Param        page_size   query     int     false  "Items per page (default: 20)"
// @Success      200         {object}  meeting.MeetingListResponse  "Paginated meeting records"
// @Failure      400         {object}  map[string]interface{}  "Invalid request"
// @Router       /meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	var req meetingdto.ListMeetingsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	records, total, err := h.meetingService.ListMeetings(c.Request().Context(), buildMeetingFilters(&req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToMeetingListResponse(records, total, req.Page, req.PageSize))
}

// UpdateMeeting handles PUT /meetings/:id
// @Summary      Update a meeting record
// @Description  Rewrites mutable fields; sending notes replaces the embedded note list (the normal editing flow)
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string  true  "Meeting record ID (UUID)"
// @Param        request  body      meeting.UpdateMeetingRequest  true  "Fields to update"
// @Success      200      {object}  meeting.MeetingResponse  "Updated meeting record"
// @Failure      400      {object}  map[string]interface{}  "Invalid request"
// @Failure      404      {object}  map[string]interface{}  "Meeting record not found"
// @Router       /meetings/{id} [put]
func (h *Meeting) UpdateMeeting(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting ID must be a valid UUID"))
	}

	var req meetingdto.UpdateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	input := meetingUsecase.UpdateMeetingInput{
		Date:            req.Date,
		Mood:            req.Mood,
		TopicsDiscussed: req.TopicsDiscussed,
		ActionItems:     req.ActionItems,
	}
	if req.Notes != nil {
		input.Notes = toNotes(req.Notes)
	}

	record, err := h.meetingService.UpdateMeeting(c.Request().Context(), id, input)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound) {
			return HandleError(h.logger, c, errors.ErrMeetingNotFound(id.String()))
		}
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToMeetingResponse(record))
}

// toNotes converts note DTOs to entities, stamping creation time on notes
// that do not carry one yet.
func toNotes(reqs []meetingdto.NoteRequest) []entities.Note {
	if reqs == nil {
		return nil
	}
	notes := make([]entities.Note, len(reqs))
	for i, req := range reqs {
		note := entities.Note{
			Text:      req.Text,
			CreatedBy: req.CreatedBy,
			Discussed: req.Discussed,
		}
		if req.Timestamp != nil {
			note.Timestamp = *req.Timestamp
		} else {
			note.Timestamp = time.Now().UTC()
		}
		if req.ReferencedEntity != nil {
			note.ReferencedEntity = &entities.EntityRef{
				Kind: entities.EntityKind(req.ReferencedEntity.Type),
				ID:   req.ReferencedEntity.ID,
			}
		}
		notes[i] = note
	}
	return notes
}
