package response

import (
	"time"

	"github.com/google/uuid"

	"mentorsync/internal/usecase/queries"
)

type SessionResponse struct {
	ID             uuid.UUID `json:"id"`
	MentorID       uuid.UUID `json:"mentorId"`
	PositionID     uuid.UUID `json:"positionId"`
	Price          float64   `json:"price"`
	LocationName   string    `json:"locationName"`
	LocationMapURL string    `json:"locationMapUrl"`
	IsAvailable    bool      `json:"isAvailable"`
	IsAutoCreated  bool      `json:"isAutoCreated"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromSessionView(rm *queries.SessionView) *SessionResponse {
	return &SessionResponse{
		ID:             rm.ID,
		MentorID:       rm.MentorID,
		PositionID:     rm.PositionID,
		Price:          rm.Price,
		LocationName:   rm.LocationName,
		LocationMapURL: rm.LocationMapURL,
		IsAvailable:    rm.IsAvailable,
		IsAutoCreated:  rm.IsAutoCreated,
		CreatedAt:      rm.CreatedAt,
	}
}

func FromSessionViews(rms []*queries.SessionView) []*SessionResponse {
	out := make([]*SessionResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, FromSessionView(rm))
	}
	return out
}

type SlotResponse struct {
	ID        uuid.UUID `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

type AvailableSessionResponse struct {
	ID             uuid.UUID      `json:"id"`
	MentorID       uuid.UUID      `json:"mentorId"`
	MentorName     string         `json:"mentorName"`
	PositionID     uuid.UUID      `json:"positionId"`
	PositionName   string         `json:"positionName"`
	Price          float64        `json:"price"`
	LocationName   string         `json:"locationName"`
	LocationMapURL string         `json:"locationMapUrl"`
	Timeslots      []SlotResponse `json:"timeslots"`
}

func FromAvailableSessionViews(rms []*queries.AvailableSessionView) []*AvailableSessionResponse {
	out := make([]*AvailableSessionResponse, 0, len(rms))
	for _, rm := range rms {
		slots := make([]SlotResponse, 0, len(rm.Timeslots))
		for _, s := range rm.Timeslots {
			slots = append(slots, SlotResponse{ID: s.ID, StartTime: s.StartTime, EndTime: s.EndTime})
		}
		out = append(out, &AvailableSessionResponse{
			ID:             rm.ID,
			MentorID:       rm.MentorID,
			MentorName:     rm.MentorName,
			PositionID:     rm.PositionID,
			PositionName:   rm.PositionName,
			Price:          rm.Price,
			LocationName:   rm.LocationName,
			LocationMapURL: rm.LocationMapURL,
			Timeslots:      slots,
		})
	}
	return out
}

type PositionResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromPositionViews(rms []*queries.PositionView) []*PositionResponse {
	out := make([]*PositionResponse, 0, len(rms))
	for _, rm := range rms {
		out = append(out, &PositionResponse{ID: rm.ID, Name: rm.Name})
	}
	return out
}
