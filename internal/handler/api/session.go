package api

import (
	"errors"
	"net/http"

	reqdto "mentorsync/internal/handler/dto/request"
	resdto "mentorsync/internal/handler/dto/response"
	"mentorsync/internal/handler/middleware"
	"mentorsync/internal/usecase/commands"
	"mentorsync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionHandler struct {
	sessionCommands     commands.SessionCommands
	sessionQueries      queries.SessionQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewSessionHandler(
	sessionCommands commands.SessionCommands,
	sessionQueries queries.SessionQueries,
	availabilityQueries queries.AvailabilityQueries,
) *SessionHandler {
	return &SessionHandler{
		sessionCommands:     sessionCommands,
		sessionQueries:      sessionQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary Create session
// @Description Create a session offering for the authenticated mentor
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSessionRequest true "Session request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	sessionID, err := h.sessionCommands.CreateSession(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMentorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Mentor not found",
			})
		case errors.Is(err, commands.ErrPositionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Position not found",
			})
		case errors.Is(err, commands.ErrInvalidSessionData):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid session data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": sessionID})
}

// @Summary Get session
// @Description Get a session offering by id
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} map[string]string
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID",
		})
		return
	}

	view, err := h.sessionQueries.GetByID(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, queries.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Session not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary List own sessions
// @Description List the authenticated mentor's session offerings
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SessionResponse
// @Router /mentor/sessions [get]
func (h *SessionHandler) ListOwnSessions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.sessionQueries.ListOwn(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionViews(views))
}

// @Summary List available sessions
// @Description List bookable offerings with their open timeslots
// @Tags sessions
// @Produce json
// @Param position_id query string false "Filter by position"
// @Param mentor_id query string false "Filter by mentor"
// @Success 200 {array} resdto.AvailableSessionResponse
// @Router /sessions/available [get]
func (h *SessionHandler) ListAvailableSessions(c *gin.Context) {
	var filter queries.AvailabilityFilter
	if raw := c.Query("position_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid position ID",
			})
			return
		}
		filter.PositionID = &id
	}
	if raw := c.Query("mentor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid mentor ID",
			})
			return
		}
		filter.MentorID = &id
	}

	views, err := h.availabilityQueries.ListAvailableSessions(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailableSessionViews(views))
}
