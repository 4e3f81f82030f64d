package booking

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot freezes display data at allocation time. The referenced mentor,
// position, and session rows keep evolving; the snapshot never does. The
// start/end pair also survives the deletion of the consumed timeslot row.
type Snapshot struct {
	mentorName   string
	accUserName  string
	positionName string
	sessionPrice float64
	startTime    time.Time
	endTime      time.Time
}

func NewSnapshot(mentorName, accUserName, positionName string, sessionPrice float64, startTime, endTime time.Time) Snapshot {
	return Snapshot{
		mentorName:   mentorName,
		accUserName:  accUserName,
		positionName: positionName,
		sessionPrice: sessionPrice,
		startTime:    startTime,
		endTime:      endTime,
	}
}

func (s Snapshot) MentorName() string    { return s.mentorName }
func (s Snapshot) AccUserName() string   { return s.accUserName }
func (s Snapshot) PositionName() string  { return s.positionName }
func (s Snapshot) SessionPrice() float64 { return s.sessionPrice }
func (s Snapshot) StartTime() time.Time  { return s.startTime }
func (s Snapshot) EndTime() time.Time    { return s.endTime }

// Booking is the immutable allocation record. Foreign keys support live
// joins; the embedded Snapshot is authoritative for historical display.
type Booking struct {
	id          uuid.UUID
	timeslotID  uuid.UUID
	mentorID    uuid.UUID
	accUserID   uuid.UUID
	positionID  uuid.UUID
	sessionID   uuid.UUID
	snapshot    Snapshot
	totalAmount float64
	status      Status
	createdAt   time.Time
}

func NewBooking(timeslotID, mentorID, accUserID, positionID, sessionID uuid.UUID, snapshot Snapshot) *Booking {
	return &Booking{
		id:          uuid.New(),
		timeslotID:  timeslotID,
		mentorID:    mentorID,
		accUserID:   accUserID,
		positionID:  positionID,
		sessionID:   sessionID,
		snapshot:    snapshot,
		totalAmount: snapshot.SessionPrice(),
		status:      StatusPending,
	}
}

func ReconstructBooking(
	id, timeslotID, mentorID, accUserID, positionID, sessionID uuid.UUID,
	snapshot Snapshot,
	totalAmount float64,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		timeslotID:  timeslotID,
		mentorID:    mentorID,
		accUserID:   accUserID,
		positionID:  positionID,
		sessionID:   sessionID,
		snapshot:    snapshot,
		totalAmount: totalAmount,
		status:      status,
		createdAt:   createdAt,
	}
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) TimeslotID() uuid.UUID { return b.timeslotID }
func (b *Booking) MentorID() uuid.UUID   { return b.mentorID }
func (b *Booking) AccUserID() uuid.UUID  { return b.accUserID }
func (b *Booking) PositionID() uuid.UUID { return b.positionID }
func (b *Booking) SessionID() uuid.UUID  { return b.sessionID }
func (b *Booking) Snapshot() Snapshot    { return b.snapshot }
func (b *Booking) TotalAmount() float64  { return b.totalAmount }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }

func (b *Booking) IsPending() bool {
	return b.status == StatusPending
}
