//go:build unit

package commands_test

import (
	"context"
	"time"

	"mentorsync/internal/domain/booking"
	"mentorsync/internal/domain/mentor"
	"mentorsync/internal/domain/position"
	"mentorsync/internal/domain/session"
	"mentorsync/internal/domain/timeslot"
	"mentorsync/internal/domain/user"
	"mentorsync/internal/infra/db"
	"mentorsync/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory stand-ins for the transactional write side. Each fake records
// what was handed to it so tests can assert on the committed state.

type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		reads:     &fakeReads{},
		timeslots: &fakeTimeslotRepo{},
		sessions:  &fakeSessionRepo{},
		bookings:  &fakeBookingRepo{},
		users:     &fakeUserRepo{},
		mentors:   &fakeMentorRepo{},
		accUsers:  &fakeAccUserRepo{},
		positions: &fakePositionRepo{},
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.tx.reads
}

type fakeTx struct {
	reads     *fakeReads
	timeslots *fakeTimeslotRepo
	sessions  *fakeSessionRepo
	bookings  *fakeBookingRepo
	users     *fakeUserRepo
	mentors   *fakeMentorRepo
	accUsers  *fakeAccUserRepo
	positions *fakePositionRepo
}

func (t *fakeTx) Users() shared.UserRepository         { return t.users }
func (t *fakeTx) Mentors() shared.MentorRepository     { return t.mentors }
func (t *fakeTx) AccUsers() shared.AccUserRepository   { return t.accUsers }
func (t *fakeTx) Positions() shared.PositionRepository { return t.positions }
func (t *fakeTx) Sessions() shared.SessionRepository   { return t.sessions }
func (t *fakeTx) Timeslots() shared.TimeslotRepository { return t.timeslots }
func (t *fakeTx) Bookings() shared.BookingRepository   { return t.bookings }
func (t *fakeTx) Reads() shared.CommandReads           { return t.reads }
func (t *fakeTx) DB() db.DBTX                          { return nil }

type fakeReads struct {
	mentorByUser    *shared.MentorSnapshot
	mentorByUserErr error
	mentorByID      *shared.MentorSnapshot
	mentorByIDErr   error
	accUser         *shared.AccUserSnapshot
	accUserErr      error
	pos             *shared.PositionSnapshot
	posErr          error
	session         *shared.SessionSnapshot
	sessionErr      error
	ownedSession    *shared.SessionSnapshot
	ownedSessionErr error
}

func (r *fakeReads) MentorByUserID(_ context.Context, _ uuid.UUID) (*shared.MentorSnapshot, error) {
	return r.mentorByUser, r.mentorByUserErr
}

func (r *fakeReads) MentorByID(_ context.Context, _ uuid.UUID) (*shared.MentorSnapshot, error) {
	return r.mentorByID, r.mentorByIDErr
}

func (r *fakeReads) AccUserByUserID(_ context.Context, _ uuid.UUID) (*shared.AccUserSnapshot, error) {
	return r.accUser, r.accUserErr
}

func (r *fakeReads) PositionByID(_ context.Context, _ uuid.UUID) (*shared.PositionSnapshot, error) {
	return r.pos, r.posErr
}

func (r *fakeReads) SessionByID(_ context.Context, _ uuid.UUID) (*shared.SessionSnapshot, error) {
	return r.session, r.sessionErr
}

func (r *fakeReads) SessionOwnedBy(_ context.Context, _, _ uuid.UUID) (*shared.SessionSnapshot, error) {
	return r.ownedSession, r.ownedSessionErr
}

type fakeTimeslotRepo struct {
	createdSlots []*timeslot.Timeslot
	createErr    error
	claimed      *shared.ClaimedTimeslot
	claimErr     error
	claimedID    uuid.UUID
	updateErr    error
	deleteErr    error
}

func (r *fakeTimeslotRepo) CreateBatch(_ context.Context, slots []*timeslot.Timeslot) (int64, error) {
	if r.createErr != nil {
		return 0, r.createErr
	}
	r.createdSlots = slots
	return int64(len(slots)), nil
}

func (r *fakeTimeslotRepo) ClaimAvailable(_ context.Context, id uuid.UUID) (*shared.ClaimedTimeslot, error) {
	r.claimedID = id
	return r.claimed, r.claimErr
}

func (r *fakeTimeslotRepo) UpdateWindow(_ context.Context, _, _ uuid.UUID, _, _ *time.Time) error {
	return r.updateErr
}

func (r *fakeTimeslotRepo) Delete(_ context.Context, _, _ uuid.UUID) error {
	return r.deleteErr
}

type fakeSessionRepo struct {
	createID    uuid.UUID
	createErr   error
	autoID      uuid.UUID
	autoErr     error
	autoSession *session.Session
}

func (r *fakeSessionRepo) Create(_ context.Context, _ *session.Session) (uuid.UUID, error) {
	return r.createID, r.createErr
}

func (r *fakeSessionRepo) CreateAutoIfAbsent(_ context.Context, s *session.Session) (uuid.UUID, error) {
	if r.autoErr != nil {
		return uuid.Nil, r.autoErr
	}
	r.autoSession = s
	return r.autoID, nil
}

type fakeBookingRepo struct {
	created   *booking.Booking
	createErr error
}

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = b
	return b.ID(), nil
}

type fakeUserRepo struct {
	createID  uuid.UUID
	createErr error
	created   *user.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = u
	return r.createID, nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ uuid.UUID) error {
	return nil
}

type fakeMentorRepo struct {
	createID  uuid.UUID
	createErr error
	created   *mentor.Mentor
}

func (r *fakeMentorRepo) CreateProfile(_ context.Context, m *mentor.Mentor) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = m
	return r.createID, nil
}

type fakeAccUserRepo struct {
	createID  uuid.UUID
	createErr error
}

func (r *fakeAccUserRepo) CreateProfile(_ context.Context, _ uuid.UUID, _, _ string) (uuid.UUID, error) {
	return r.createID, r.createErr
}

type fakePositionRepo struct {
	createID  uuid.UUID
	createErr error
	created   *position.Position
}

func (r *fakePositionRepo) Create(_ context.Context, p *position.Position) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = p
	return r.createID, nil
}
