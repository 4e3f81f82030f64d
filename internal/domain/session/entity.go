package session

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"mentorsync/internal/domain/mentor"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice = errors.New("session price cannot be negative")
	ErrEmptyLocation = errors.New("session location cannot be empty")
)

// Session is a bookable mentoring offering. Price and location changes never
// propagate to existing bookings; the Booking snapshot is authoritative for
// history.
type Session struct {
	id             uuid.UUID
	mentorID       uuid.UUID
	positionID     uuid.UUID
	price          float64
	locationName   string
	locationMapURL string
	isAvailable    bool
	isAutoCreated  bool
}

func NewSession(mentorID, positionID uuid.UUID, price float64, locationName string) (*Session, error) {
	locationName = strings.TrimSpace(locationName)
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if locationName == "" {
		return nil, ErrEmptyLocation
	}
	return &Session{
		id:             uuid.New(),
		mentorID:       mentorID,
		positionID:     positionID,
		price:          price,
		locationName:   locationName,
		locationMapURL: mapURLFor(locationName),
		isAvailable:    true,
	}, nil
}

// SynthesizeDefault builds the implicit offering used when a mentor publishes
// timeslots without an explicit session, seeded from the mentor's profile
// defaults. Fails when the mentor has no position configured.
func SynthesizeDefault(m *mentor.Mentor) (*Session, error) {
	positionID, err := m.RequirePosition()
	if err != nil {
		return nil, err
	}

	s, err := NewSession(m.ID(), positionID, m.DefaultRate(), m.DefaultLocation())
	if err != nil {
		return nil, err
	}
	s.isAutoCreated = true
	return s, nil
}

func ReconstructSession(
	id, mentorID, positionID uuid.UUID,
	price float64,
	locationName, locationMapURL string,
	isAvailable, isAutoCreated bool,
) *Session {
	return &Session{
		id:             id,
		mentorID:       mentorID,
		positionID:     positionID,
		price:          price,
		locationName:   locationName,
		locationMapURL: locationMapURL,
		isAvailable:    isAvailable,
		isAutoCreated:  isAutoCreated,
	}
}

func (s *Session) ID() uuid.UUID          { return s.id }
func (s *Session) MentorID() uuid.UUID    { return s.mentorID }
func (s *Session) PositionID() uuid.UUID  { return s.positionID }
func (s *Session) Price() float64         { return s.price }
func (s *Session) LocationName() string   { return s.locationName }
func (s *Session) LocationMapURL() string { return s.locationMapURL }
func (s *Session) IsAvailable() bool      { return s.isAvailable }
func (s *Session) IsAutoCreated() bool    { return s.isAutoCreated }

func mapURLFor(location string) string {
	return fmt.Sprintf("https://maps.google.com/?q=%s", url.QueryEscape(location))
}
