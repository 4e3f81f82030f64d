package shared

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

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: command-side reads outside any transaction
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Mentors() MentorRepository
	AccUsers() AccUserRepository
	Positions() PositionRepository
	Sessions() SessionRepository
	Timeslots() TimeslotRepository
	Bookings() BookingRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the minimal lookups command handlers need for validation.
// When obtained from a Tx they observe (and lock with) that transaction.
type CommandReads interface {
	MentorByUserID(ctx context.Context, userID uuid.UUID) (*MentorSnapshot, error)
	MentorByID(ctx context.Context, id uuid.UUID) (*MentorSnapshot, error)
	AccUserByUserID(ctx context.Context, userID uuid.UUID) (*AccUserSnapshot, error)
	PositionByID(ctx context.Context, id uuid.UUID) (*PositionSnapshot, error)
	SessionByID(ctx context.Context, id uuid.UUID) (*SessionSnapshot, error)
	SessionOwnedBy(ctx context.Context, sessionID, mentorID uuid.UUID) (*SessionSnapshot, error)
}

// Minimal snapshots for command-side validation reads.

type MentorSnapshot struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	FirstName       string
	LastName        string
	SessionRate     *float64
	MeetingLocation *string
	PositionID      *uuid.UUID
}

type AccUserSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FirstName string
	LastName  string
}

type PositionSnapshot struct {
	ID   uuid.UUID
	Name string
}

type SessionSnapshot struct {
	ID            uuid.UUID
	MentorID      uuid.UUID
	PositionID    uuid.UUID
	Price         float64
	LocationName  string
	IsAvailable   bool
	IsAutoCreated bool
}

// ClaimedTimeslot is what the conditional delete returns: the row's content
// at the moment it was atomically removed from availability.
type ClaimedTimeslot struct {
	ID        uuid.UUID
	MentorID  uuid.UUID
	SessionID uuid.UUID
	StartTime time.Time
	EndTime   time.Time
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type MentorRepository interface {
	CreateProfile(ctx context.Context, m *mentor.Mentor) (uuid.UUID, error)
}

type AccUserRepository interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName string) (uuid.UUID, error)
}

type PositionRepository interface {
	Create(ctx context.Context, p *position.Position) (uuid.UUID, error)
}

type SessionRepository interface {
	Create(ctx context.Context, s *session.Session) (uuid.UUID, error)
	// CreateAutoIfAbsent inserts the synthesized default offering unless the
	// mentor already has one; either way it returns the surviving session id.
	CreateAutoIfAbsent(ctx context.Context, s *session.Session) (uuid.UUID, error)
}

type TimeslotRepository interface {
	CreateBatch(ctx context.Context, slots []*timeslot.Timeslot) (int64, error)
	// ClaimAvailable atomically removes an unbooked timeslot and returns its
	// content. A timeslot already claimed or deleted yields KindConflict.
	ClaimAvailable(ctx context.Context, id uuid.UUID) (*ClaimedTimeslot, error)
	UpdateWindow(ctx context.Context, id, mentorID uuid.UUID, start, end *time.Time) error
	Delete(ctx context.Context, id, mentorID uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
}
