package response

import (
	"time"

	"github.com/google/uuid"

	"mentorsync/internal/usecase/queries"
)

type AddTimeslotsResponse struct {
	SessionID uuid.UUID `json:"sessionId"`
	Added     int64     `json:"added"`
}

type TimeslotResponse struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"sessionId"`
	MentorID  uuid.UUID `json:"mentorId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	IsBooked  bool      `json:"isBooked"`
}

func FromTimeslotViews(rms []*queries.TimeslotView) []*TimeslotResponse {
	out := make([]*TimeslotResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, &TimeslotResponse{
			ID:        rm.ID,
			SessionID: rm.SessionID,
			MentorID:  rm.MentorID,
			StartTime: rm.StartTime,
			EndTime:   rm.EndTime,
			IsBooked:  rm.IsBooked,
		})
	}
	return out
}

type MentorTimeslotResponse struct {
	ID           uuid.UUID `json:"id"`
	SessionID    uuid.UUID `json:"sessionId"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	LocationName string    `json:"locationName"`
	Price        float64   `json:"price"`
}

func FromMentorTimeslotViews(rms []*queries.MentorTimeslotView) []*MentorTimeslotResponse {
	out := make([]*MentorTimeslotResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, &MentorTimeslotResponse{
			ID:           rm.ID,
			SessionID:    rm.SessionID,
			StartTime:    rm.StartTime,
			EndTime:      rm.EndTime,
			LocationName: rm.LocationName,
			Price:        rm.Price,
		})
	}
	return out
}
