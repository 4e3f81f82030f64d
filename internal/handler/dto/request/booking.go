package request

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	TimeslotID uuid.UUID `json:"schedule_timeslot_id" binding:"required"`
	MentorID   uuid.UUID `json:"mentor_id" binding:"required"`
	SessionID  uuid.UUID `json:"session_id" binding:"required"`
	PositionID uuid.UUID `json:"position_id" binding:"required"`
}
