package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"mentorsync/internal/infra"
	"mentorsync/internal/infra/db"
	"mentorsync/internal/pkg/pgconv"
	"mentorsync/internal/usecase/queries"
)

type SessionReadStore struct {
	db db.DBTX
}

func NewSessionReadStore(dbtx db.DBTX) *SessionReadStore {
	return &SessionReadStore{db: dbtx}
}

func (r *SessionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SessionView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, mentor_id, position_id, price, location_name, location_map_url,
		        is_available, is_auto_created, created_at
		 FROM sessions WHERE id = $1`,
		id,
	)
	view, err := scanSessionRow(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session", err)
	}
	return view, nil
}

func (r *SessionReadStore) FindByMentorUser(ctx context.Context, userID uuid.UUID) ([]*queries.SessionView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.mentor_id, s.position_id, s.price, s.location_name, s.location_map_url,
		        s.is_available, s.is_auto_created, s.created_at
		 FROM sessions s
		 JOIN mentors m ON m.id = s.mentor_id
		 WHERE m.user_id = $1
		 ORDER BY s.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sessions", err)
	}
	defer rows.Close()

	var views []*queries.SessionView
	for rows.Next() {
		view, err := scanSessionRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan session", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate sessions", err)
	}
	return views, nil
}

func scanSessionRow(row pgx.Row) (*queries.SessionView, error) {
	var (
		v     queries.SessionView
		price pgtype.Numeric
	)
	err := row.Scan(
		&v.ID, &v.MentorID, &v.PositionID, &price, &v.LocationName, &v.LocationMapURL,
		&v.IsAvailable, &v.IsAutoCreated, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if v.Price, err = pgconv.Float64FromNumeric(price); err != nil {
		return nil, err
	}
	return &v, nil
}
