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

const bookingColumns = `b.id, b.schedule_timeslot_id, b.mentor_id, b.acc_user_id, b.position_id, b.session_id,
	b.mentor_name_snapshot, b.acc_user_name_snapshot, b.position_name_snapshot,
	b.session_price_snapshot, b.start_time_snapshot, b.end_time_snapshot,
	b.total_amount, b.status, b.created_at`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings b WHERE b.id = $1`,
		id,
	)
	view, err := scanBookingRow(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return view, nil
}

// OwnerUserIDs resolves the account-holder and mentor user ids behind a
// booking for access checks.
func (r *BookingReadStore) OwnerUserIDs(ctx context.Context, id uuid.UUID) (uuid.UUID, uuid.UUID, error) {
	var accUserID, mentorUserID uuid.UUID
	err := r.db.QueryRow(ctx,
		`SELECT a.user_id, m.user_id
		 FROM bookings b
		 JOIN acc_users a ON a.id = b.acc_user_id
		 JOIN mentors m ON m.id = b.mentor_id
		 WHERE b.id = $1`,
		id,
	).Scan(&accUserID, &mentorUserID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, uuid.Nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return uuid.Nil, uuid.Nil, infra.WrapRepoErr("failed to resolve booking owners", err)
	}
	return accUserID, mentorUserID, nil
}

func (r *BookingReadStore) FindByAccUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	return r.list(ctx,
		`SELECT `+bookingColumns+`
		 FROM bookings b
		 JOIN acc_users a ON a.id = b.acc_user_id
		 WHERE a.user_id = $1
		 ORDER BY b.created_at DESC`,
		userID,
	)
}

func (r *BookingReadStore) FindByMentor(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	return r.list(ctx,
		`SELECT `+bookingColumns+`
		 FROM bookings b
		 JOIN mentors m ON m.id = b.mentor_id
		 WHERE m.user_id = $1
		 ORDER BY b.start_time_snapshot ASC`,
		userID,
	)
}

func (r *BookingReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return views, nil
}

func scanBookingRow(row pgx.Row) (*queries.BookingView, error) {
	var (
		v     queries.BookingView
		price pgtype.Numeric
		total pgtype.Numeric
	)
	err := row.Scan(
		&v.ID, &v.TimeslotID, &v.MentorID, &v.AccUserID, &v.PositionID, &v.SessionID,
		&v.MentorName, &v.AccUserName, &v.PositionName,
		&price, &v.StartTime, &v.EndTime,
		&total, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if v.SessionPrice, err = pgconv.Float64FromNumeric(price); err != nil {
		return nil, err
	}
	if v.TotalAmount, err = pgconv.Float64FromNumeric(total); err != nil {
		return nil, err
	}
	return &v, nil
}
