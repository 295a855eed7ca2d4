package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teampulse/team-pulse/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	agendaHandler    *Agenda
	meetingHandler   *Meeting
	directoryHandler *Directory
	authMW           echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, agendaHandler *Agenda, meetingHandler *Meeting, directoryHandler *Directory, authMW echo.MiddlewareFunc) *Router {
	return &Router{
		cfg:              cfg,
		agendaHandler:    agendaHandler,
		meetingHandler:   meetingHandler,
		directoryHandler: directoryHandler,
		authMW:           authMW,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAgendaRoutes(v1)
	rt.setupMeetingRoutes(v1)
	rt.setupDirectoryRoutes(v1)
}

// setupAgendaRoutes configures agenda cross-reference routes. Reads are
// open dashboard glue; mutations require a bearer token.
func (rt *Router) setupAgendaRoutes(g *echo.Group) {
	agendaGroup := g.Group("/agenda")

	agendaGroup.GET("/summary/:kind", rt.agendaHandler.GetSummary)
	agendaGroup.GET("/:kind/:id", rt.agendaHandler.GetAgendaItems)
	agendaGroup.POST("/discussed", rt.agendaHandler.MarkDiscussed, rt.authMW)
	agendaGroup.POST("/notes", rt.agendaHandler.AddNote, rt.authMW)
}

// setupMeetingRoutes configures meeting record routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings")

	meetingGroup.GET("", rt.meetingHandler.ListMeetings)
	meetingGroup.GET("/:id", rt.meetingHandler.GetMeeting)
	meetingGroup.POST("", rt.meetingHandler.CreateMeeting, rt.authMW)
	meetingGroup.PUT("/:id", rt.meetingHandler.UpdateMeeting, rt.authMW)
}

// setupDirectoryRoutes configures directory routes
func (rt *Router) setupDirectoryRoutes(g *echo.Group) {
	directoryGroup := g.Group("/directory")

	directoryGroup.GET("/:kind", rt.directoryHandler.ListRoster)
	directoryGroup.GET("/:kind/:id", rt.directoryHandler.GetEntry)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
