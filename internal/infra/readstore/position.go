package readstore

import (
	"context"

	"mentorsync/internal/infra"
	"mentorsync/internal/infra/db"
	"mentorsync/internal/usecase/queries"
)

type PositionReadStore struct {
	db db.DBTX
}

func NewPositionReadStore(dbtx db.DBTX) *PositionReadStore {
	return &PositionReadStore{db: dbtx}
}

func (r *PositionReadStore) FindAll(ctx context.Context) ([]*queries.PositionView, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM positions ORDER BY name ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list positions", err)
	}
	defer rows.Close()

	var views []*queries.PositionView
	for rows.Next() {
		var v queries.PositionView
		if err := rows.Scan(&v.ID, &v.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan position", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate positions", err)
	}
	return views, nil
}
