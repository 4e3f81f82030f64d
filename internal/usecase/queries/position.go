package queries

import "context"

type PositionQueries interface {
	ListAll(ctx context.Context) ([]*PositionView, error)
}

type PositionReadStore interface {
	FindAll(ctx context.Context) ([]*PositionView, error)
}

type positionQueriesImpl struct {
	readStore PositionReadStore
}

func NewPositionQueries(readStore PositionReadStore) PositionQueries {
	return &positionQueriesImpl{readStore: readStore}
}

func (q *positionQueriesImpl) ListAll(ctx context.Context) ([]*PositionView, error) {
	return q.readStore.FindAll(ctx)
}
