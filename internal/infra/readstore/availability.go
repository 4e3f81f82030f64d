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

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

// FindAvailableSessions lists offerings that are flagged available and still
// have at least one timeslot in the store, nesting the slots under each
// session. Two queries instead of one grouped join keeps the scans simple.
func (r *AvailabilityReadStore) FindAvailableSessions(ctx context.Context, filter queries.AvailabilityFilter) ([]*queries.AvailableSessionView, error) {
	query := `SELECT s.id, s.mentor_id, m.first_name, m.last_name,
		 s.position_id, p.name, s.price, s.location_name, s.location_map_url
		 FROM sessions s
		 JOIN mentors m ON m.id = s.mentor_id
		 JOIN positions p ON p.id = s.position_id
		 WHERE s.is_available = true
		   AND EXISTS (
		     SELECT 1 FROM schedule_timeslots t
		     WHERE t.session_id = s.id AND t.is_booked = false
		   )`
	args := []any{}
	if filter.PositionID != nil {
		args = append(args, *filter.PositionID)
		query += ` AND s.position_id = $1`
	}
	if filter.MentorID != nil {
		args = append(args, *filter.MentorID)
		if len(args) == 1 {
			query += ` AND s.mentor_id = $1`
		} else {
			query += ` AND s.mentor_id = $2`
		}
	}
	query += ` ORDER BY p.name ASC, m.last_name ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available sessions", err)
	}
	defer rows.Close()

	var (
		views      []*queries.AvailableSessionView
		sessionIDs []uuid.UUID
		byID       = make(map[uuid.UUID]*queries.AvailableSessionView)
	)
	for rows.Next() {
		var (
			v                   queries.AvailableSessionView
			firstName, lastName string
			price               pgtype.Numeric
		)
		if err := rows.Scan(
			&v.ID, &v.MentorID, &firstName, &lastName,
			&v.PositionID, &v.PositionName, &price, &v.LocationName, &v.LocationMapURL,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan session", err)
		}
		v.MentorName = firstName + " " + lastName
		if v.Price, err = pgconv.Float64FromNumeric(price); err != nil {
			return nil, infra.WrapRepoErr("invalid session price", err)
		}
		views = append(views, &v)
		sessionIDs = append(sessionIDs, v.ID)
		byID[v.ID] = &v
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate sessions", err)
	}
	if len(views) == 0 {
		return nil, nil
	}

	slotRows, err := r.db.Query(ctx,
		`SELECT id, session_id, start_time, end_time
		 FROM schedule_timeslots
		 WHERE session_id = ANY($1) AND is_booked = false
		 ORDER BY start_time ASC`,
		sessionIDs,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list session timeslots", err)
	}
	defer slotRows.Close()

	for slotRows.Next() {
		var (
			slot      queries.SlotView
			sessionID uuid.UUID
		)
		if err := slotRows.Scan(&slot.ID, &sessionID, &slot.StartTime, &slot.EndTime); err != nil {
			return nil, infra.WrapRepoErr("failed to scan timeslot", err)
		}
		if view, ok := byID[sessionID]; ok {
			view.Timeslots = append(view.Timeslots, slot)
		}
	}
	if err := slotRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate timeslots", err)
	}
	return views, nil
}
