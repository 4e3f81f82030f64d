package queries

import (
	"context"

	"github.com/google/uuid"

	"mentorsync/internal/infra"
	"mentorsync/internal/pkg/errs"
)

var ErrMentorProfileNotFound = errs.New("mentor profile not found")

type TimeslotQueries interface {
	ListBySession(ctx context.Context, mentorUserID, sessionID uuid.UUID) ([]*TimeslotView, error)
	ListOwnAvailable(ctx context.Context, mentorUserID uuid.UUID) ([]*MentorTimeslotView, error)
}

type TimeslotReadStore interface {
	FindBySession(ctx context.Context, mentorUserID, sessionID uuid.UUID) ([]*TimeslotView, error)
	FindAvailableByMentorUser(ctx context.Context, userID uuid.UUID) ([]*MentorTimeslotView, error)
}

type timeslotQueriesImpl struct {
	readStore TimeslotReadStore
}

func NewTimeslotQueries(readStore TimeslotReadStore) TimeslotQueries {
	return &timeslotQueriesImpl{readStore: readStore}
}

// ListBySession lists the slots published under a session. The session must
// belong to the requesting mentor; anything else reads as not found.
func (q *timeslotQueriesImpl) ListBySession(ctx context.Context, mentorUserID, sessionID uuid.UUID) ([]*TimeslotView, error) {
	views, err := q.readStore.FindBySession(ctx, mentorUserID, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return views, nil
}

func (q *timeslotQueriesImpl) ListOwnAvailable(ctx context.Context, mentorUserID uuid.UUID) ([]*MentorTimeslotView, error) {
	slots, err := q.readStore.FindAvailableByMentorUser(ctx, mentorUserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMentorProfileNotFound
		}
		return nil, err
	}
	return slots, nil
}
