package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/teampulse/team-pulse/errors"
	"github.com/teampulse/team-pulse/internal/adapter/presenter"
	"github.com/teampulse/team-pulse/internal/domain/entities"
	agendaUsecase "github.com/teampulse/team-pulse/internal/usecase/agenda"
	directoryUsecase "github.com/teampulse/team-pulse/internal/usecase/directory"
	usecaseErrors "github.com/teampulse/team-pulse/internal/usecase/errors"
)

// Directory handles entity directory HTTP requests
type Directory struct {
	directoryService *directoryUsecase.Service
	agendaService    *agendaUsecase.Service
	logger           *zap.Logger
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directoryService *directoryUsecase.Service, agendaService *agendaUsecase.Service, logger *zap.Logger) *Directory {
	return &Directory{
		directoryService: directoryService,
		agendaService:    agendaService,
		logger:           logger,
	}
}

// ListRoster handles GET /directory/:kind
// @Summary      List a roster with agenda badges
// @Description  Returns all directory entries of one kind, each with its agenda count and unresolved flag
// @Tags         Directory
// @Produce      json
// @Param        kind  path      string  true  "Entity kind"
// @Success      200   {object}  directory.RosterResponse  "Roster (possibly empty)"
// @Failure      400   {object}  map[string]interface{}  "Unknown entity kind"
// @Router       /directory/{kind} [get]
func (h *Directory) ListRoster(c echo.Context) error {
	kind := entities.EntityKind(c.Param("kind"))

	entries, err := h.directoryService.List(c.Request().Context(), kind)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrUnknownEntityKind) {
			return HandleError(h.logger, c, errors.ErrUnknownEntityKind(string(kind)))
		}
		return HandleError(h.logger, c, err)
	}

	summaries, err := h.agendaService.GetSummary(c.Request().Context(), kind)
	if err != nil {
		// Badges are decoration; the roster still renders without them.
		h.logger.Warn("agenda summary unavailable for roster", zap.String("kind", string(kind)), zap.Error(err))
		summaries = map[string]entities.AgendaSummary{}
	}

	return c.JSON(http.StatusOK, presenter.ToRosterResponse(kind, entries, summaries))
}

// GetEntry handles GET /directory/:kind/:id
// @Summary      Get a directory entry
// @Tags         Directory
// @Produce      json
// @Param        kind  path      string  true  "Entity kind"
// @Param        id    path      string  true  "Entity ID"
// @Success      200   {object}  directory.EntryResponse  "Directory entry"
// @Failure      400   {object}  map[string]interface{}  "Invalid entity reference"
// @Failure      404   {object}  map[string]interface{}  "Entry not found"
// @Router       /directory/{kind}/{id} [get]
func (h *Directory) GetEntry(c echo.Context) error {
	ref := entities.EntityRef{
		Kind: entities.EntityKind(c.Param("kind")),
		ID:   c.Param("id"),
	}

	entry, err := h.directoryService.Get(c.Request().Context(), ref)
	if err != nil {
		switch {
		case stdErrors.Is(err, usecaseErrors.ErrInvalidEntityRef):
			return HandleError(h.logger, c, errors.ErrInvalidEntityRef(err.Error()))
		case stdErrors.Is(err, usecaseErrors.ErrEntryNotFound):
			return HandleError(h.logger, c, errors.ErrDirectoryEntryNotFound(string(ref.Kind), ref.ID))
		}
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToEntryResponse(entry))
}
