package repository

import (
	"context"

	"mentorsync/internal/domain/booking"
	"mentorsync/internal/infra"
	"mentorsync/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

// Create persists the allocation record. Snapshot columns are written exactly
// once here and never touched again.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	snap := b.Snapshot()
	_, err := r.db.Exec(ctx,
		`INSERT INTO bookings (
		   id, schedule_timeslot_id, mentor_id, acc_user_id, position_id, session_id,
		   mentor_name_snapshot, acc_user_name_snapshot, position_name_snapshot,
		   session_price_snapshot, start_time_snapshot, end_time_snapshot,
		   total_amount, status
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		b.ID(), b.TimeslotID(), b.MentorID(), b.AccUserID(), b.PositionID(), b.SessionID(),
		snap.MentorName(), snap.AccUserName(), snap.PositionName(),
		snap.SessionPrice(), snap.StartTime(), snap.EndTime(),
		b.TotalAmount(), b.Status().String(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert booking", err)
	}
	return b.ID(), nil
}
