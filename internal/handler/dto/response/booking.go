package response

import (
	"time"

	"github.com/google/uuid"

	"mentorsync/internal/usecase/queries"
)

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	TimeslotID   uuid.UUID `json:"scheduleTimeslotId"`
	MentorID     uuid.UUID `json:"mentorId"`
	AccUserID    uuid.UUID `json:"accUserId"`
	PositionID   uuid.UUID `json:"positionId"`
	SessionID    uuid.UUID `json:"sessionId"`
	MentorName   string    `json:"mentorName"`
	AccUserName  string    `json:"accUserName"`
	PositionName string    `json:"positionName"`
	SessionPrice float64   `json:"sessionPrice"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	TotalAmount  float64   `json:"totalAmount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:           rm.ID,
		TimeslotID:   rm.TimeslotID,
		MentorID:     rm.MentorID,
		AccUserID:    rm.AccUserID,
		PositionID:   rm.PositionID,
		SessionID:    rm.SessionID,
		MentorName:   rm.MentorName,
		AccUserName:  rm.AccUserName,
		PositionName: rm.PositionName,
		SessionPrice: rm.SessionPrice,
		StartTime:    rm.StartTime,
		EndTime:      rm.EndTime,
		TotalAmount:  rm.TotalAmount,
		Status:       rm.Status,
		CreatedAt:    rm.CreatedAt,
	}
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromBookingView(rm))
	}
	return out
}
