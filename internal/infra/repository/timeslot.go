package repository

import (
	"context"
	"time"

	"mentorsync/internal/domain/timeslot"
	"mentorsync/internal/infra"
	"mentorsync/internal/infra/db"
	"mentorsync/internal/pkg/pgconv"
	"mentorsync/internal/usecase/shared"

	"github.com/google/uuid"
)

type TimeslotRepository struct {
	db db.DBTX
}

func NewTimeslotRepository(dbtx db.DBTX) *TimeslotRepository {
	return &TimeslotRepository{db: dbtx}
}

func (r *TimeslotRepository) CreateBatch(ctx context.Context, slots []*timeslot.Timeslot) (int64, error) {
	var added int64
	for _, s := range slots {
		tag, err := r.db.Exec(ctx,
			`INSERT INTO schedule_timeslots (id, mentor_id, session_id, start_time, end_time, is_booked)
			 VALUES ($1, $2, $3, $4, $5, false)`,
			s.ID(), s.MentorID(), s.SessionID(), s.Window().Start(), s.Window().End(),
		)
		if err != nil {
			return 0, infra.WrapRepoErr("failed to insert timeslot", err)
		}
		added += tag.RowsAffected()
	}
	return added, nil
}

// ClaimAvailable is the single concurrency guard of the allocation flow: the
// conditional delete acquires the row lock, so of any number of concurrent
// claims for the same timeslot exactly one sees a row and the rest get
// KindConflict.
func (r *TimeslotRepository) ClaimAvailable(ctx context.Context, id uuid.UUID) (*shared.ClaimedTimeslot, error) {
	var claimed shared.ClaimedTimeslot
	err := r.db.QueryRow(ctx,
		`DELETE FROM schedule_timeslots
		 WHERE id = $1 AND is_booked = false
		 RETURNING id, mentor_id, session_id, start_time, end_time`,
		id,
	).Scan(&claimed.ID, &claimed.MentorID, &claimed.SessionID, &claimed.StartTime, &claimed.EndTime)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr("timeslot unavailable", infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to claim timeslot", err)
	}
	return &claimed, nil
}

func (r *TimeslotRepository) UpdateWindow(ctx context.Context, id, mentorID uuid.UUID, start, end *time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE schedule_timeslots
		 SET start_time = COALESCE($3, start_time),
		     end_time   = COALESCE($4, end_time),
		     updated_at = now()
		 WHERE id = $1 AND mentor_id = $2`,
		id, mentorID, start, end,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update timeslot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("timeslot not found or not owned", infra.KindNotFound)
	}
	return nil
}

// Delete removes a timeslot unconditionally (booked or not) as long as the
// mentor owns it. An existing booking keeps its own snapshot, so it does not
// depend on this row surviving.
func (r *TimeslotRepository) Delete(ctx context.Context, id, mentorID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM schedule_timeslots WHERE id = $1 AND mentor_id = $2`,
		id, mentorID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete timeslot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr("timeslot not found or not owned", infra.KindNotFound)
	}
	return nil
}
