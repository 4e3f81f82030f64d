//go:build unit || e2e

package builder

import (
	"time"

	"mentorsync/internal/domain/booking"
	"mentorsync/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	TimeslotID   uuid.UUID
	MentorID     uuid.UUID
	AccUserID    uuid.UUID
	PositionID   uuid.UUID
	SessionID    uuid.UUID
	MentorName   string
	AccUserName  string
	PositionName string
	SessionPrice float64
	StartTime    time.Time
	EndTime      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	return &BookingBuilder{
		TimeslotID:   uuid.New(),
		MentorID:     uuid.New(),
		AccUserID:    uuid.New(),
		PositionID:   uuid.New(),
		SessionID:    uuid.New(),
		MentorName:   "Dana Mentor",
		AccUserName:  "Alex Seeker",
		PositionName: "Backend Engineer",
		SessionPrice: 75,
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	snapshot := booking.NewSnapshot(
		b.MentorName, b.AccUserName, b.PositionName,
		b.SessionPrice, b.StartTime, b.EndTime,
	)
	return booking.NewBooking(b.TimeslotID, b.MentorID, b.AccUserID, b.PositionID, b.SessionID, snapshot)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:           uuid.New(),
		TimeslotID:   b.TimeslotID,
		MentorID:     b.MentorID,
		AccUserID:    b.AccUserID,
		PositionID:   b.PositionID,
		SessionID:    b.SessionID,
		MentorName:   b.MentorName,
		AccUserName:  b.AccUserName,
		PositionName: b.PositionName,
		SessionPrice: b.SessionPrice,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		TotalAmount:  b.SessionPrice,
		Status:       "pending",
		CreatedAt:    time.Now(),
	}
}
