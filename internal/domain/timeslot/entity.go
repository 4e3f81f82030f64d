package timeslot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyBatch = errors.New("at least one timeslot is required")

// Timeslot is a mentor-published availability window bound to a session
// offering. An unbooked timeslot has no booking; a successful allocation
// removes the row entirely, so presence in the store means availability.
type Timeslot struct {
	id        uuid.UUID
	mentorID  uuid.UUID
	sessionID uuid.UUID
	window    TimeWindow
	isBooked  bool
}

func NewTimeslot(mentorID, sessionID uuid.UUID, window TimeWindow) *Timeslot {
	return &Timeslot{
		id:        uuid.New(),
		mentorID:  mentorID,
		sessionID: sessionID,
		window:    window,
	}
}

// NewBatch validates raw start/end pairs and builds timeslots bound to the
// given mentor and session. An empty input is rejected.
func NewBatch(mentorID, sessionID uuid.UUID, windows []struct{ Start, End time.Time }) ([]*Timeslot, error) {
	if len(windows) == 0 {
		return nil, ErrEmptyBatch
	}

	slots := make([]*Timeslot, 0, len(windows))
	for _, w := range windows {
		window, err := NewTimeWindow(w.Start, w.End)
		if err != nil {
			return nil, err
		}
		slots = append(slots, NewTimeslot(mentorID, sessionID, window))
	}
	return slots, nil
}

func ReconstructTimeslot(id, mentorID, sessionID uuid.UUID, window TimeWindow, isBooked bool) *Timeslot {
	return &Timeslot{
		id:        id,
		mentorID:  mentorID,
		sessionID: sessionID,
		window:    window,
		isBooked:  isBooked,
	}
}

func (t *Timeslot) ID() uuid.UUID        { return t.id }
func (t *Timeslot) MentorID() uuid.UUID  { return t.mentorID }
func (t *Timeslot) SessionID() uuid.UUID { return t.sessionID }
func (t *Timeslot) Window() TimeWindow   { return t.window }
func (t *Timeslot) IsBooked() bool       { return t.isBooked }
