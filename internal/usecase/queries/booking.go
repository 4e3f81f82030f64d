package queries

import (
	"context"

	"github.com/google/uuid"

	"mentorsync/internal/infra"
	"mentorsync/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking access denied")
)

type BookingQueries interface {
	GetByID(ctx context.Context, actorUserID uuid.UUID, role string, id uuid.UUID) (*BookingView, error)
	ListForAccUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	ListForMentor(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByAccUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	FindByMentor(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	OwnerUserIDs(ctx context.Context, id uuid.UUID) (accUserID uuid.UUID, mentorUserID uuid.UUID, err error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorUserID uuid.UUID, role string, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if role == "admin" {
		return view, nil
	}

	accUserID, mentorUserID, err := q.readStore.OwnerUserIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorUserID != accUserID && actorUserID != mentorUserID {
		return nil, ErrBookingAccess
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListForAccUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.readStore.FindByAccUser(ctx, userID)
}

func (q *bookingQueriesImpl) ListForMentor(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.readStore.FindByMentor(ctx, userID)
}
