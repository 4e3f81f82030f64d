package mentor

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrNoDefaultPosition is returned when a mentor without a configured position
// attempts an operation that needs profile defaults (session auto-provisioning).
var ErrNoDefaultPosition = errors.New("mentor has no default position configured")

const (
	// Fallbacks applied when a mentor never filled in their rate or location.
	DefaultSessionRate     = 60.0
	DefaultMeetingLocation = "Online"
)

// Mentor is the profile aggregate owning sessions and timeslots. Its stored
// defaults (rate, location, position) seed auto-provisioned sessions.
type Mentor struct {
	id              uuid.UUID
	userID          uuid.UUID
	firstName       string
	lastName        string
	sessionRate     *float64
	meetingLocation *string
	positionID      *uuid.UUID
}

func NewMentor(userID uuid.UUID, firstName, lastName string, sessionRate *float64, meetingLocation *string, positionID *uuid.UUID) *Mentor {
	return &Mentor{
		id:              uuid.New(),
		userID:          userID,
		firstName:       strings.TrimSpace(firstName),
		lastName:        strings.TrimSpace(lastName),
		sessionRate:     sessionRate,
		meetingLocation: meetingLocation,
		positionID:      positionID,
	}
}

func ReconstructMentor(id, userID uuid.UUID, firstName, lastName string, sessionRate *float64, meetingLocation *string, positionID *uuid.UUID) *Mentor {
	return &Mentor{
		id:              id,
		userID:          userID,
		firstName:       firstName,
		lastName:        lastName,
		sessionRate:     sessionRate,
		meetingLocation: meetingLocation,
		positionID:      positionID,
	}
}

func (m *Mentor) ID() uuid.UUID          { return m.id }
func (m *Mentor) UserID() uuid.UUID      { return m.userID }
func (m *Mentor) FirstName() string      { return m.firstName }
func (m *Mentor) LastName() string       { return m.lastName }
func (m *Mentor) PositionID() *uuid.UUID { return m.positionID }

func (m *Mentor) FullName() string {
	return strings.TrimSpace(m.firstName + " " + m.lastName)
}

func (m *Mentor) HasRate() bool { return m.sessionRate != nil }

func (m *Mentor) HasLocation() bool {
	return m.meetingLocation != nil && strings.TrimSpace(*m.meetingLocation) != ""
}

// DefaultRate returns the mentor's stored session rate, or the platform
// fallback when unset.
func (m *Mentor) DefaultRate() float64 {
	if m.sessionRate != nil {
		return *m.sessionRate
	}
	return DefaultSessionRate
}

// DefaultLocation returns the mentor's stored meeting location, or the
// platform fallback when unset.
func (m *Mentor) DefaultLocation() string {
	if m.meetingLocation != nil && strings.TrimSpace(*m.meetingLocation) != "" {
		return *m.meetingLocation
	}
	return DefaultMeetingLocation
}

// RequirePosition returns the mentor's default position id, failing when the
// profile has none. Auto-provisioning cannot proceed without it.
func (m *Mentor) RequirePosition() (uuid.UUID, error) {
	if m.positionID == nil {
		return uuid.Nil, ErrNoDefaultPosition
	}
	return *m.positionID, nil
}
