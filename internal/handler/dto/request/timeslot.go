package request

import (
	"time"

	"github.com/google/uuid"
)

type TimeslotWindow struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type AddTimeslotsRequest struct {
	SessionID *uuid.UUID       `json:"session_id,omitempty"`
	Timeslots []TimeslotWindow `json:"timeslots" binding:"required,min=1,dive"`
}

func (r AddTimeslotsRequest) Windows() []struct{ Start, End time.Time } {
	windows := make([]struct{ Start, End time.Time }, 0, len(r.Timeslots))
	for _, w := range r.Timeslots {
		windows = append(windows, struct{ Start, End time.Time }{Start: w.StartTime, End: w.EndTime})
	}
	return windows
}

type UpdateTimeslotRequest struct {
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}
