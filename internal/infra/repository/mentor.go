package repository

import (
	"context"

	"mentorsync/internal/domain/mentor"
	"mentorsync/internal/infra"
	"mentorsync/internal/infra/db"

	"github.com/google/uuid"
)

type MentorRepository struct {
	db db.DBTX
}

func NewMentorRepository(dbtx db.DBTX) *MentorRepository {
	return &MentorRepository{db: dbtx}
}

func (r *MentorRepository) CreateProfile(ctx context.Context, m *mentor.Mentor) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO mentors (id, user_id, first_name, last_name, session_rate, meeting_location, position_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID(), m.UserID(), m.FirstName(), m.LastName(), nullableRate(m), nullableLocation(m), m.PositionID(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert mentor profile", err)
	}
	return m.ID(), nil
}

// The entity exposes defaults with fallbacks; persistence keeps the raw
// nullable values so an unset rate stays unset.
func nullableRate(m *mentor.Mentor) *float64 {
	if m.HasRate() {
		rate := m.DefaultRate()
		return &rate
	}
	return nil
}

func nullableLocation(m *mentor.Mentor) *string {
	if m.HasLocation() {
		loc := m.DefaultLocation()
		return &loc
	}
	return nil
}
