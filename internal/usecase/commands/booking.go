package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"mentorsync/internal/domain/booking"
	reqdto "mentorsync/internal/handler/dto/request"
	"mentorsync/internal/infra"
	"mentorsync/internal/pkg/errs"
	"mentorsync/internal/usecase/shared"
)

var (
	ErrAccountNotFound     = errs.New("account not found")
	ErrTimeslotUnavailable = errs.New("timeslot unavailable")
	ErrInvalidBookingData  = errs.New("invalid booking data")
	ErrBookingWriteFailed  = errs.New("booking write failed")
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, accUserID uuid.UUID, req reqdto.CreateBookingRequest) (uuid.UUID, error)
}

type bookingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewBookingCommands(uow shared.UnitOfWork) BookingCommands {
	return &bookingCommandsImpl{uow: uow}
}

// CreateBooking allocates a timeslot to an account holder. The whole flow
// runs in one transaction: the conditional delete of the timeslot is the
// only claim path, so two buyers racing for the same slot resolve to one
// booking and one conflict, never two bookings.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, accUserID uuid.UUID, req reqdto.CreateBookingRequest) (uuid.UUID, error) {
	var bookingID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		accUser, err := tx.Reads().AccUserByUserID(ctx, accUserID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAccountNotFound
			}
			return errs.Mark(err, ErrBookingWriteFailed)
		}

		claimed, err := tx.Timeslots().ClaimAvailable(ctx, req.TimeslotID)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrTimeslotUnavailable
			}
			return errs.Mark(err, ErrBookingWriteFailed)
		}

		// The caller names the mentor and session it believes it is buying;
		// a mismatch with the claimed slot aborts and rolls the claim back.
		if claimed.MentorID != req.MentorID || claimed.SessionID != req.SessionID {
			return errs.Mark(errs.New("booking references do not match the claimed timeslot"), ErrInvalidBookingData)
		}

		mentorSnap, err := tx.Reads().MentorByID(ctx, claimed.MentorID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidBookingData
			}
			return errs.Mark(err, ErrBookingWriteFailed)
		}

		sessionSnap, err := tx.Reads().SessionByID(ctx, claimed.SessionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidBookingData
			}
			return errs.Mark(err, ErrBookingWriteFailed)
		}

		if sessionSnap.PositionID != req.PositionID {
			return errs.Mark(errs.New("position does not match the claimed session"), ErrInvalidBookingData)
		}

		positionSnap, err := tx.Reads().PositionByID(ctx, sessionSnap.PositionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidBookingData
			}
			return errs.Mark(err, ErrBookingWriteFailed)
		}

		snapshot := booking.NewSnapshot(
			mentorSnap.FirstName+" "+mentorSnap.LastName,
			accUser.FirstName+" "+accUser.LastName,
			positionSnap.Name,
			sessionSnap.Price,
			claimed.StartTime,
			claimed.EndTime,
		)
		b := booking.NewBooking(
			claimed.ID, claimed.MentorID, accUser.ID,
			sessionSnap.PositionID, claimed.SessionID,
			snapshot,
		)

		bookingID, err = tx.Bookings().Create(ctx, b)
		if err != nil {
			return errs.Mark(err, ErrBookingWriteFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.Info("booking created",
		"booking_id", bookingID,
		"timeslot_id", req.TimeslotID,
		"acc_user_id", accUserID)
	return bookingID, nil
}
