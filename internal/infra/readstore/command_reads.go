package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"mentorsync/internal/infra"
	"mentorsync/internal/infra/db"
	"mentorsync/internal/pkg/pgconv"
	"mentorsync/internal/usecase/shared"
)

// CommandReadStore serves the command side's validation lookups. Built over a
// transaction's DBTX it reads inside that transaction; built over the pool it
// reads with implicit single-statement transactions.
type CommandReadStore struct {
	db db.DBTX
}

func NewCommandReadStore(dbtx db.DBTX) *CommandReadStore {
	return &CommandReadStore{db: dbtx}
}

var _ shared.CommandReads = (*CommandReadStore)(nil)

func (r *CommandReadStore) MentorByUserID(ctx context.Context, userID uuid.UUID) (*shared.MentorSnapshot, error) {
	return r.scanMentor(ctx,
		`SELECT id, user_id, first_name, last_name, session_rate, meeting_location, position_id
		 FROM mentors WHERE user_id = $1`,
		userID,
	)
}

func (r *CommandReadStore) MentorByID(ctx context.Context, id uuid.UUID) (*shared.MentorSnapshot, error) {
	return r.scanMentor(ctx,
		`SELECT id, user_id, first_name, last_name, session_rate, meeting_location, position_id
		 FROM mentors WHERE id = $1`,
		id,
	)
}

func (r *CommandReadStore) scanMentor(ctx context.Context, query string, arg any) (*shared.MentorSnapshot, error) {
	var (
		snap     shared.MentorSnapshot
		rate     pgtype.Numeric
		location pgtype.Text
		posID    pgtype.UUID
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&snap.ID, &snap.UserID, &snap.FirstName, &snap.LastName, &rate, &location, &posID,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("mentor not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find mentor", err)
	}
	if rate.Valid {
		v, convErr := pgconv.Float64FromNumeric(rate)
		if convErr != nil {
			return nil, infra.WrapRepoErr("invalid session rate", convErr)
		}
		snap.SessionRate = &v
	}
	if location.Valid {
		snap.MeetingLocation = &location.String
	}
	if posID.Valid {
		id := uuid.UUID(posID.Bytes)
		snap.PositionID = &id
	}
	return &snap, nil
}

func (r *CommandReadStore) AccUserByUserID(ctx context.Context, userID uuid.UUID) (*shared.AccUserSnapshot, error) {
	var snap shared.AccUserSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, first_name, last_name FROM acc_users WHERE user_id = $1`,
		userID,
	).Scan(&snap.ID, &snap.UserID, &snap.FirstName, &snap.LastName)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find account", err)
	}
	return &snap, nil
}

func (r *CommandReadStore) PositionByID(ctx context.Context, id uuid.UUID) (*shared.PositionSnapshot, error) {
	var snap shared.PositionSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, name FROM positions WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.Name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("position not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find position", err)
	}
	return &snap, nil
}

func (r *CommandReadStore) SessionByID(ctx context.Context, id uuid.UUID) (*shared.SessionSnapshot, error) {
	return r.scanSession(ctx,
		`SELECT id, mentor_id, position_id, price, location_name, is_available, is_auto_created
		 FROM sessions WHERE id = $1`,
		id,
	)
}

func (r *CommandReadStore) SessionOwnedBy(ctx context.Context, sessionID, mentorID uuid.UUID) (*shared.SessionSnapshot, error) {
	return r.scanSession(ctx,
		`SELECT id, mentor_id, position_id, price, location_name, is_available, is_auto_created
		 FROM sessions WHERE id = $1 AND mentor_id = $2`,
		sessionID, mentorID,
	)
}

func (r *CommandReadStore) scanSession(ctx context.Context, query string, args ...any) (*shared.SessionSnapshot, error) {
	var (
		snap  shared.SessionSnapshot
		price pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&snap.ID, &snap.MentorID, &snap.PositionID, &price,
		&snap.LocationName, &snap.IsAvailable, &snap.IsAutoCreated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session", err)
	}
	snap.Price, err = pgconv.Float64FromNumeric(price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid session price", err)
	}
	return &snap, nil
}
