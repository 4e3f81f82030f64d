//go:build unit || e2e

package builder

import (
	"time"

	reqdto "mentorsync/internal/handler/dto/request"
	"mentorsync/internal/usecase/shared"

	"github.com/google/uuid"
)

type TimeslotBuilder struct {
	MentorID  uuid.UUID
	SessionID *uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

func NewTimeslotBuilder() *TimeslotBuilder {
	start := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	return &TimeslotBuilder{
		MentorID:  uuid.New(),
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}
}

func (b *TimeslotBuilder) With(mutate func(*TimeslotBuilder)) *TimeslotBuilder {
	mutate(b)
	return b
}

func (b *TimeslotBuilder) BuildAddRequestDTO() reqdto.AddTimeslotsRequest {
	return reqdto.AddTimeslotsRequest{
		SessionID: b.SessionID,
		Timeslots: []reqdto.TimeslotWindow{
			{StartTime: b.StartTime, EndTime: b.EndTime},
		},
	}
}

func (b *TimeslotBuilder) BuildClaimed() *shared.ClaimedTimeslot {
	return &shared.ClaimedTimeslot{
		ID:        uuid.New(),
		MentorID:  b.MentorID,
		SessionID: uuid.New(),
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}
