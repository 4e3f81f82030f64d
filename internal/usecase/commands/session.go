package commands

import (
	"context"

	"github.com/google/uuid"

	"mentorsync/internal/domain/position"
	"mentorsync/internal/domain/session"
	reqdto "mentorsync/internal/handler/dto/request"
	"mentorsync/internal/infra"
	"mentorsync/internal/pkg/errs"
	"mentorsync/internal/usecase/shared"
)

var (
	ErrPositionNotFound    = errs.New("position not found")
	ErrInvalidSessionData  = errs.New("invalid session data")
	ErrSessionWriteFailed  = errs.New("session write failed")
	ErrDuplicatePosition   = errs.New("position already exists")
	ErrInvalidPositionData = errs.New("invalid position data")
)

type SessionCommands interface {
	CreateSession(ctx context.Context, mentorUserID uuid.UUID, req reqdto.CreateSessionRequest) (uuid.UUID, error)
}

type sessionCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewSessionCommands(uow shared.UnitOfWork) SessionCommands {
	return &sessionCommandsImpl{uow: uow}
}

func (c *sessionCommandsImpl) CreateSession(ctx context.Context, mentorUserID uuid.UUID, req reqdto.CreateSessionRequest) (uuid.UUID, error) {
	var sessionID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		mentorSnap, err := tx.Reads().MentorByUserID(ctx, mentorUserID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMentorNotFound
			}
			return errs.Mark(err, ErrSessionWriteFailed)
		}

		if _, err := tx.Reads().PositionByID(ctx, req.PositionID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPositionNotFound
			}
			return errs.Mark(err, ErrSessionWriteFailed)
		}

		s, err := session.NewSession(mentorSnap.ID, req.PositionID, req.Price, req.LocationName)
		if err != nil {
			return errs.Mark(err, ErrInvalidSessionData)
		}

		sessionID, err = tx.Sessions().Create(ctx, s)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrPositionNotFound
			}
			return errs.Mark(err, ErrSessionWriteFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return sessionID, nil
}

type PositionCommands interface {
	CreatePosition(ctx context.Context, req reqdto.CreatePositionRequest) (uuid.UUID, error)
}

type positionCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPositionCommands(uow shared.UnitOfWork) PositionCommands {
	return &positionCommandsImpl{uow: uow}
}

func (c *positionCommandsImpl) CreatePosition(ctx context.Context, req reqdto.CreatePositionRequest) (uuid.UUID, error) {
	p, err := position.NewPosition(req.Name)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidPositionData)
	}

	var positionID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Positions().Create(ctx, p)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicatePosition
			}
			return errs.Mark(err, ErrSessionWriteFailed)
		}
		positionID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return positionID, nil
}
