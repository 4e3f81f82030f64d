package api

import (
	"errors"
	"net/http"

	reqdto "mentorsync/internal/handler/dto/request"
	resdto "mentorsync/internal/handler/dto/response"
	"mentorsync/internal/usecase/commands"
	"mentorsync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PositionHandler struct {
	positionCommands commands.PositionCommands
	positionQueries  queries.PositionQueries
}

func NewPositionHandler(positionCommands commands.PositionCommands, positionQueries queries.PositionQueries) *PositionHandler {
	return &PositionHandler{
		positionCommands: positionCommands,
		positionQueries:  positionQueries,
	}
}

// @Summary Create position
// @Description Create a mentoring position category (admin only)
// @Tags positions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePositionRequest true "Position request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /positions [post]
func (h *PositionHandler) CreatePosition(c *gin.Context) {
	var req reqdto.CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	positionID, err := h.positionCommands.CreatePosition(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicatePosition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Position already exists",
			})
		case errors.Is(err, commands.ErrInvalidPositionData):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid position data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": positionID})
}

// @Summary List positions
// @Description List all mentoring position categories
// @Tags positions
// @Produce json
// @Success 200 {array} resdto.PositionResponse
// @Router /positions [get]
func (h *PositionHandler) ListPositions(c *gin.Context) {
	views, err := h.positionQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPositionViews(views))
}
