package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type TimeslotView struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	MentorID  uuid.UUID `json:"mentor_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	IsBooked  bool      `json:"is_booked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MentorTimeslotView is a mentor's available slot joined with the owning
// session's price and location for the dashboard listing.
type MentorTimeslotView struct {
	ID           uuid.UUID `json:"id"`
	SessionID    uuid.UUID `json:"session_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	LocationName string    `json:"location_name"`
	Price        float64   `json:"price"`
}

type SlotView struct {
	ID        uuid.UUID `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// AvailableSessionView is the discovery read: an available offering with its
// mentor, position, and the timeslots still present in the store. Presence
// means availability; the allocator deletes consumed slots.
type AvailableSessionView struct {
	ID             uuid.UUID  `json:"id"`
	MentorID       uuid.UUID  `json:"mentor_id"`
	MentorName     string     `json:"mentor_name"`
	PositionID     uuid.UUID  `json:"position_id"`
	PositionName   string     `json:"position_name"`
	Price          float64    `json:"price"`
	LocationName   string     `json:"location_name"`
	LocationMapURL string     `json:"location_map_url"`
	Timeslots      []SlotView `json:"timeslots"`
}

type SessionView struct {
	ID             uuid.UUID `json:"id"`
	MentorID       uuid.UUID `json:"mentor_id"`
	PositionID     uuid.UUID `json:"position_id"`
	Price          float64   `json:"price"`
	LocationName   string    `json:"location_name"`
	LocationMapURL string    `json:"location_map_url"`
	IsAvailable    bool      `json:"is_available"`
	IsAutoCreated  bool      `json:"is_auto_created"`
	CreatedAt      time.Time `json:"created_at"`
}

type PositionView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BookingView carries the frozen snapshot columns; it stays stable however
// the referenced mentor, position, or session change later.
type BookingView struct {
	ID           uuid.UUID `json:"id"`
	TimeslotID   uuid.UUID `json:"schedule_timeslot_id"`
	MentorID     uuid.UUID `json:"mentor_id"`
	AccUserID    uuid.UUID `json:"acc_user_id"`
	PositionID   uuid.UUID `json:"position_id"`
	SessionID    uuid.UUID `json:"session_id"`
	MentorName   string    `json:"mentor_name_snapshot"`
	AccUserName  string    `json:"acc_user_name_snapshot"`
	PositionName string    `json:"position_name_snapshot"`
	SessionPrice float64   `json:"session_price_snapshot"`
	StartTime    time.Time `json:"start_time_snapshot"`
	EndTime      time.Time `json:"end_time_snapshot"`
	TotalAmount  float64   `json:"total_amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
