package repository

import (
	"context"

	"mentorsync/internal/domain/session"
	"mentorsync/internal/infra"
	"mentorsync/internal/infra/db"

	"github.com/google/uuid"
)

type SessionRepository struct {
	db db.DBTX
}

func NewSessionRepository(dbtx db.DBTX) *SessionRepository {
	return &SessionRepository{db: dbtx}
}

func (r *SessionRepository) Create(ctx context.Context, s *session.Session) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO sessions (id, mentor_id, position_id, price, location_name, location_map_url, is_available, is_auto_created)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID(), s.MentorID(), s.PositionID(), s.Price(), s.LocationName(), s.LocationMapURL(), s.IsAvailable(), s.IsAutoCreated(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert session", err)
	}
	return s.ID(), nil
}

// CreateAutoIfAbsent inserts the synthesized default offering guarded by the
// partial unique index on (mentor_id) WHERE is_auto_created. Concurrent
// first-time publishers converge on a single session: losers of the insert
// race fall through to the re-select.
func (r *SessionRepository) CreateAutoIfAbsent(ctx context.Context, s *session.Session) (uuid.UUID, error) {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO sessions (id, mentor_id, position_id, price, location_name, location_map_url, is_available, is_auto_created)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, true)
		 ON CONFLICT (mentor_id) WHERE is_auto_created DO NOTHING`,
		s.ID(), s.MentorID(), s.PositionID(), s.Price(), s.LocationName(), s.LocationMapURL(), s.IsAvailable(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert auto session", err)
	}
	if tag.RowsAffected() > 0 {
		return s.ID(), nil
	}

	var existingID uuid.UUID
	err = r.db.QueryRow(ctx,
		`SELECT id FROM sessions WHERE mentor_id = $1 AND is_auto_created`,
		s.MentorID(),
	).Scan(&existingID)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to resolve existing auto session", err)
	}
	return existingID, nil
}
