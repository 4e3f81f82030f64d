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

type TimeslotHandler struct {
	timeslotCommands commands.TimeslotCommands
	timeslotQueries  queries.TimeslotQueries
}

func NewTimeslotHandler(timeslotCommands commands.TimeslotCommands, timeslotQueries queries.TimeslotQueries) *TimeslotHandler {
	return &TimeslotHandler{
		timeslotCommands: timeslotCommands,
		timeslotQueries:  timeslotQueries,
	}
}

// @Summary Publish timeslots
// @Description Publish availability windows, auto-provisioning the default session when none is named
// @Tags timeslots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddTimeslotsRequest true "Timeslot batch"
// @Success 201 {object} resdto.AddTimeslotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /timeslots [post]
func (h *TimeslotHandler) AddTimeslots(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddTimeslotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.timeslotCommands.AddTimeslots(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMentorNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Mentor not found",
			})
		case errors.Is(err, commands.ErrEmptyTimeslotList), errors.Is(err, commands.ErrInvalidTimeslotWindow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid timeslot data",
			})
		case errors.Is(err, commands.ErrMentorPositionRequired):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Mentor position required",
			})
		case errors.Is(err, commands.ErrSessionNotOwned):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Session not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.AddTimeslotsResponse{
		SessionID: result.SessionID,
		Added:     result.Added,
	})
}

// @Summary List own available timeslots
// @Description List the authenticated mentor's unbooked timeslots
// @Tags timeslots
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MentorTimeslotResponse
// @Failure 404 {object} map[string]string
// @Router /timeslots [get]
func (h *TimeslotHandler) ListOwnTimeslots(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.timeslotQueries.ListOwnAvailable(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, queries.ErrMentorProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Mentor not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMentorTimeslotViews(views))
}

// @Summary Update timeslot
// @Description Reschedule an owned timeslot's window
// @Tags timeslots
// @Accept json
// @Security BearerAuth
// @Param id path string true "Timeslot ID"
// @Param request body reqdto.UpdateTimeslotRequest true "New window"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /timeslots/{id} [put]
func (h *TimeslotHandler) UpdateTimeslot(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	timeslotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid timeslot ID",
		})
		return
	}

	var req reqdto.UpdateTimeslotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.timeslotCommands.UpdateTimeslot(c.Request.Context(), userID, timeslotID, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrMentorNotFound), errors.Is(err, commands.ErrTimeslotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Timeslot not found",
			})
		case errors.Is(err, commands.ErrInvalidTimeslotWindow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid timeslot data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete timeslot
// @Description Withdraw an owned timeslot from availability
// @Tags timeslots
// @Security BearerAuth
// @Param id path string true "Timeslot ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /timeslots/{id} [delete]
func (h *TimeslotHandler) DeleteTimeslot(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	timeslotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid timeslot ID",
		})
		return
	}

	if err := h.timeslotCommands.DeleteTimeslot(c.Request.Context(), userID, timeslotID); err != nil {
		switch {
		case errors.Is(err, commands.ErrMentorNotFound), errors.Is(err, commands.ErrTimeslotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Timeslot not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List session timeslots
// @Description List all timeslots published under one of the mentor's own sessions
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {array} resdto.TimeslotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id}/timeslots [get]
func (h *TimeslotHandler) ListSessionTimeslots(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid session ID",
		})
		return
	}

	views, err := h.timeslotQueries.ListBySession(c.Request.Context(), userID, sessionID)
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

	c.JSON(http.StatusOK, resdto.FromTimeslotViews(views))
}
