package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"mentorsync/internal/domain/mentor"
	"mentorsync/internal/domain/session"
	"mentorsync/internal/domain/timeslot"
	reqdto "mentorsync/internal/handler/dto/request"
	"mentorsync/internal/infra"
	"mentorsync/internal/pkg/clock"
	"mentorsync/internal/pkg/errs"
	"mentorsync/internal/usecase/shared"
)

var (
	ErrMentorNotFound         = errs.New("mentor not found")
	ErrEmptyTimeslotList      = errs.New("empty timeslot list")
	ErrInvalidTimeslotWindow  = errs.New("invalid timeslot window")
	ErrMentorPositionRequired = errs.New("mentor position required")
	ErrSessionNotOwned        = errs.New("session not owned by mentor")
	ErrTimeslotNotFound       = errs.New("timeslot not found")
	ErrTimeslotWriteFailed    = errs.New("timeslot write failed")
)

type AddTimeslotsResult struct {
	SessionID uuid.UUID
	Added     int64
}

type TimeslotCommands interface {
	AddTimeslots(ctx context.Context, mentorUserID uuid.UUID, req reqdto.AddTimeslotsRequest) (*AddTimeslotsResult, error)
	UpdateTimeslot(ctx context.Context, mentorUserID, timeslotID uuid.UUID, req reqdto.UpdateTimeslotRequest) error
	DeleteTimeslot(ctx context.Context, mentorUserID, timeslotID uuid.UUID) error
}

type timeslotCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewTimeslotCommands(uow shared.UnitOfWork, clock clock.Clock) TimeslotCommands {
	return &timeslotCommandsImpl{uow: uow, clock: clock}
}

// AddTimeslots publishes availability windows under a session. When the
// request names no session, the mentor's auto-created offering is provisioned
// on first use and reused afterwards; concurrent first publishes converge on
// one offering through the storage-level uniqueness guard.
func (c *timeslotCommandsImpl) AddTimeslots(ctx context.Context, mentorUserID uuid.UUID, req reqdto.AddTimeslotsRequest) (*AddTimeslotsResult, error) {
	if len(req.Timeslots) == 0 {
		return nil, ErrEmptyTimeslotList
	}
	now := c.clock.Now()
	for _, w := range req.Timeslots {
		if !w.StartTime.After(now) {
			return nil, errs.Mark(errs.New("window starts in the past"), ErrInvalidTimeslotWindow)
		}
	}

	var result AddTimeslotsResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		mentorSnap, err := tx.Reads().MentorByUserID(ctx, mentorUserID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMentorNotFound
			}
			return errs.Mark(err, ErrTimeslotWriteFailed)
		}

		sessionID, err := c.resolveSession(ctx, tx, mentorSnap, req.SessionID)
		if err != nil {
			return err
		}
		result.SessionID = sessionID

		slots, err := timeslot.NewBatch(mentorSnap.ID, sessionID, req.Windows())
		if err != nil {
			return errs.Mark(err, ErrInvalidTimeslotWindow)
		}

		added, err := tx.Timeslots().CreateBatch(ctx, slots)
		if err != nil {
			return errs.Mark(err, ErrTimeslotWriteFailed)
		}
		result.Added = added
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("timeslots published",
		"mentor_user_id", mentorUserID,
		"session_id", result.SessionID,
		"added", result.Added)
	return &result, nil
}

func (c *timeslotCommandsImpl) resolveSession(ctx context.Context, tx shared.Tx, mentorSnap *shared.MentorSnapshot, sessionID *uuid.UUID) (uuid.UUID, error) {
	if sessionID != nil {
		snap, err := tx.Reads().SessionOwnedBy(ctx, *sessionID, mentorSnap.ID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return uuid.Nil, ErrSessionNotOwned
			}
			return uuid.Nil, errs.Mark(err, ErrTimeslotWriteFailed)
		}
		return snap.ID, nil
	}

	m := mentor.ReconstructMentor(
		mentorSnap.ID, mentorSnap.UserID,
		mentorSnap.FirstName, mentorSnap.LastName,
		mentorSnap.SessionRate, mentorSnap.MeetingLocation, mentorSnap.PositionID,
	)
	auto, err := session.SynthesizeDefault(m)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrMentorPositionRequired)
	}

	id, err := tx.Sessions().CreateAutoIfAbsent(ctx, auto)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrTimeslotWriteFailed)
	}
	return id, nil
}

func (c *timeslotCommandsImpl) UpdateTimeslot(ctx context.Context, mentorUserID, timeslotID uuid.UUID, req reqdto.UpdateTimeslotRequest) error {
	if req.StartTime != nil && req.EndTime != nil && !req.StartTime.Before(*req.EndTime) {
		return errs.Mark(errs.New("window starts after it ends"), ErrInvalidTimeslotWindow)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		mentorSnap, err := tx.Reads().MentorByUserID(ctx, mentorUserID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMentorNotFound
			}
			return errs.Mark(err, ErrTimeslotWriteFailed)
		}

		err = tx.Timeslots().UpdateWindow(ctx, timeslotID, mentorSnap.ID, req.StartTime, req.EndTime)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTimeslotNotFound
			}
			// Partial updates can still invert the stored window; the schema
			// check is the authority there.
			if infra.IsKind(err, infra.KindCheckViolated) {
				return errs.Mark(err, ErrInvalidTimeslotWindow)
			}
			return errs.Mark(err, ErrTimeslotWriteFailed)
		}
		return nil
	})
}

func (c *timeslotCommandsImpl) DeleteTimeslot(ctx context.Context, mentorUserID, timeslotID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		mentorSnap, err := tx.Reads().MentorByUserID(ctx, mentorUserID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMentorNotFound
			}
			return errs.Mark(err, ErrTimeslotWriteFailed)
		}

		err = tx.Timeslots().Delete(ctx, timeslotID, mentorSnap.ID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTimeslotNotFound
			}
			return errs.Mark(err, ErrTimeslotWriteFailed)
		}
		return nil
	})
}
