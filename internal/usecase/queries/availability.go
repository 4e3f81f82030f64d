package queries

import (
	"context"

	"github.com/google/uuid"
)

// AvailabilityFilter narrows the discovery listing. Zero values mean
// unfiltered.
type AvailabilityFilter struct {
	PositionID *uuid.UUID
	MentorID   *uuid.UUID
}

type AvailabilityQueries interface {
	ListAvailableSessions(ctx context.Context, filter AvailabilityFilter) ([]*AvailableSessionView, error)
}

type AvailabilityReadStore interface {
	FindAvailableSessions(ctx context.Context, filter AvailabilityFilter) ([]*AvailableSessionView, error)
}

type availabilityQueriesImpl struct {
	readStore AvailabilityReadStore
}

func NewAvailabilityQueries(readStore AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{readStore: readStore}
}

func (q *availabilityQueriesImpl) ListAvailableSessions(ctx context.Context, filter AvailabilityFilter) ([]*AvailableSessionView, error) {
	return q.readStore.FindAvailableSessions(ctx, filter)
}
