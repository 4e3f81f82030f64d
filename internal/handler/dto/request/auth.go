package request

import (
	"github.com/google/uuid"

	"mentorsync/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"required,oneof=acc_user mentor"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`

	// Mentor-only profile fields
	SessionRate     *float64   `json:"session_rate,omitempty"`
	MeetingLocation *string    `json:"meeting_location,omitempty"`
	PositionID      *uuid.UUID `json:"position_id,omitempty"`
}

func (r *RegisterRequest) ToCredentials() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
