package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/teampulse/team-pulse/errors"
	agendadto "github.com/teampulse/team-pulse/internal/adapter/dto/agenda"
	"github.com/teampulse/team-pulse/internal/adapter/presenter"
	"github.com/teampulse/team-pulse/internal/domain/entities"
	agendaUsecase "github.com/teampulse/team-pulse/internal/usecase/agenda"
	directoryUsecase "github.com/teampulse/team-pulse/internal/usecase/directory"
	usecaseErrors "github.com/teampulse/team-pulse/internal/usecase/errors"
)

// Agenda handles agenda cross-reference HTTP requests
type Agenda struct {
	agendaService    *agendaUsecase.Service
	directoryService *directoryUsecase.Service
	logger           *zap.Logger
}

// NewAgendaHandler creates a new agenda handler
func NewAgendaHandler(agendaService *agendaUsecase.Service, directoryService *directoryUsecase.Service, logger *zap.Logger) *Agenda {
	return &Agenda{
		agendaService:    agendaService,
		directoryService: directoryService,
		logger:           logger,
	}
}

// GetAgendaItems handles GET /agenda/:kind/:id
// @Summary      Get agenda items for one entity
// @Description  Returns every note referencing the entity, most recent first
// @Tags         Agenda
// @Produce      json
// @Param        kind  path      string  true  "Entity kind (team_member/peer/stakeholder/project)"
// @Param        id    path      string  true  "Entity ID"
// @Success      200   {object}  agenda.AgendaListResponse  "Agenda items (possibly empty)"
// @Failure      400   {object}  map[string]interface{}  "Invalid entity reference"
// @Router       /agenda/{kind}/{id} [get]
func (h *Agenda) GetAgendaItems(c echo.Context) error {
	ref := entities.EntityRef{
		Kind: entities.EntityKind(c.Param("kind")),
		ID:   c.Param("id"),
	}

	items, err := h.agendaService.GetAgendaItems(c.Request().Context(), ref)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrInvalidEntityRef) {
			return HandleError(h.logger, c, errors.ErrInvalidEntityRef(err.Error()))
		}
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToAgendaListResponse(ref, items, h.nameResolver(c)))
}

// GetSummary handles GET /agenda/summary/:kind
// @Summary      Get agenda badge summaries
// @Description  Returns the per-entity roll-up (count, recent items, unresolved flag) for every referenced entity of one kind
// @Tags         Agenda
// @Produce      json
// @Param        kind  path      string  true  "Entity kind"
// @Success      200   {object}  agenda.SummaryResponse  "Summary map keyed by entity id"
// @Failure      400   {object}  map[string]interface{}  "Unknown entity kind"
// @Router       /agenda/summary/{kind} [get]
func (h *Agenda) GetSummary(c echo.Context) error {
	kind := entities.EntityKind(c.Param("kind"))

	summaries, err := h.agendaService.GetSummary(c.Request().Context(), kind)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrUnknownEntityKind) {
			return HandleError(h.logger, c, errors.ErrUnknownEntityKind(string(kind)))
		}
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToSummaryResponse(kind, summaries, h.nameResolver(c)))
}

// MarkDiscussed handles POST /agenda/discussed
// @Summary      Mark an agenda item discussed
// @Description  Flips the discussed flag of the note identified by meeting id and timestamp; idempotent
// @Tags         Agenda
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      agenda.MarkDiscussedRequest  true  "Note identity"
// @Success      200      {object}  map[string]interface{}  "updated=false when the note does not exist"
// @Failure      400      {object}  map[string]interface{}  "Invalid request"
// @Router       /agenda/discussed [post]
func (h *Agenda) MarkDiscussed(c echo.Context) error {
	var req agendadto.MarkDiscussedRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	meetingID, err := uuid.Parse(req.MeetingID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting ID must be a valid UUID"))
	}

	updated, err := h.agendaService.MarkDiscussed(c.Request().Context(), meetingID, req.Timestamp)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, agendadto.MarkDiscussedResponse{Updated: updated})
}

// AddNote handles POST /agenda/notes
// @Summary      Add a note to someone else's agenda
// @Description  Appends a referencing note to the author's most recent meeting record, creating a minimal record when none exists
// @Tags         Agenda
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      agenda.AddNoteRequest  true  "Author, target and note text"
// @Success      201      {object}  agenda.AddNoteResponse  "Where the note landed"
// @Failure      400      {object}  map[string]interface{}  "Invalid request"
// @Router       /agenda/notes [post]
func (h *Agenda) AddNote(c echo.Context) error {
	var req agendadto.AddNoteRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	input := agendaUsecase.CrossReferenceInput{
		Author: entities.EntityRef{Kind: entities.EntityKind(req.AuthorType), ID: req.AuthorID},
		Target: entities.EntityRef{Kind: entities.EntityKind(req.TargetType), ID: req.TargetID},
		Text:   req.Text,
	}

	result, err := h.agendaService.AddCrossReference(c.Request().Context(), input)
	if err != nil {
		switch {
		case stdErrors.Is(err, usecaseErrors.ErrInvalidEntityRef):
			return HandleError(h.logger, c, errors.ErrInvalidEntityRef(err.Error()))
		case stdErrors.Is(err, usecaseErrors.ErrInvalidAuthor),
			stdErrors.Is(err, usecaseErrors.ErrEmptyNoteText):
			return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
		}
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusCreated, agendadto.AddNoteResponse{
		MeetingID:      result.MeetingID.String(),
		CreatedMeeting: result.CreatedMeeting,
		Note:           presenter.ToNoteResponse(result.Note, h.nameResolver(c)),
	})
}

// nameResolver adapts the directory service into a presenter resolver
// bound to the request context.
func (h *Agenda) nameResolver(c echo.Context) presenter.NameResolver {
	return func(ref entities.EntityRef) string {
		return h.directoryService.ResolveName(c.Request().Context(), ref)
	}
}
