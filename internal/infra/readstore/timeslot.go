package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"mentorsync/internal/infra"
	"mentorsync/internal/infra/db"
	"mentorsync/internal/pkg/pgconv"
	"mentorsync/internal/usecase/queries"
)

type TimeslotReadStore struct {
	db db.DBTX
}

func NewTimeslotReadStore(dbtx db.DBTX) *TimeslotReadStore {
	return &TimeslotReadStore{db: dbtx}
}

func (r *TimeslotReadStore) FindBySession(ctx context.Context, mentorUserID, sessionID uuid.UUID) ([]*queries.TimeslotView, error) {
	var ownedID uuid.UUID
	err := r.db.QueryRow(ctx,
		`SELECT s.id
		 FROM sessions s
		 JOIN mentors m ON m.id = s.mentor_id
		 WHERE s.id = $1 AND m.user_id = $2`,
		sessionID, mentorUserID,
	).Scan(&ownedID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to resolve session", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, session_id, mentor_id, start_time, end_time, is_booked, created_at, updated_at
		 FROM schedule_timeslots
		 WHERE session_id = $1
		 ORDER BY start_time ASC`,
		sessionID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list timeslots by session", err)
	}
	defer rows.Close()

	var views []*queries.TimeslotView
	for rows.Next() {
		var v queries.TimeslotView
		if err := rows.Scan(
			&v.ID, &v.SessionID, &v.MentorID, &v.StartTime, &v.EndTime,
			&v.IsBooked, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan timeslot", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate timeslots", err)
	}
	return views, nil
}

func (r *TimeslotReadStore) FindAvailableByMentorUser(ctx context.Context, userID uuid.UUID) ([]*queries.MentorTimeslotView, error) {
	var mentorID uuid.UUID
	err := r.db.QueryRow(ctx,
		`SELECT id FROM mentors WHERE user_id = $1`, userID,
	).Scan(&mentorID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("mentor not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to resolve mentor", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT t.id, t.session_id, t.start_time, t.end_time, s.location_name, s.price
		 FROM schedule_timeslots t
		 JOIN sessions s ON s.id = t.session_id
		 WHERE t.mentor_id = $1 AND t.is_booked = false
		 ORDER BY t.start_time ASC`,
		mentorID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list mentor timeslots", err)
	}
	defer rows.Close()

	var views []*queries.MentorTimeslotView
	for rows.Next() {
		var (
			v     queries.MentorTimeslotView
			price pgtype.Numeric
		)
		if err := rows.Scan(&v.ID, &v.SessionID, &v.StartTime, &v.EndTime, &v.LocationName, &price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan mentor timeslot", err)
		}
		v.Price, err = pgconv.Float64FromNumeric(price)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid session price", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate mentor timeslots", err)
	}
	return views, nil
}
