package queries

import (
	"context"

	"github.com/google/uuid"

	"mentorsync/internal/infra"
	"mentorsync/internal/pkg/errs"
)

var ErrSessionNotFound = errs.New("session not found")

type SessionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
	ListOwn(ctx context.Context, mentorUserID uuid.UUID) ([]*SessionView, error)
}

type SessionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SessionView, error)
	FindByMentorUser(ctx context.Context, userID uuid.UUID) ([]*SessionView, error)
}

type sessionQueriesImpl struct {
	readStore SessionReadStore
}

func NewSessionQueries(readStore SessionReadStore) SessionQueries {
	return &sessionQueriesImpl{readStore: readStore}
}

func (q *sessionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SessionView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *sessionQueriesImpl) ListOwn(ctx context.Context, mentorUserID uuid.UUID) ([]*SessionView, error) {
	return q.readStore.FindByMentorUser(ctx, mentorUserID)
}
