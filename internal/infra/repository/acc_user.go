package repository

import (
	"context"

	"mentorsync/internal/infra"
	"mentorsync/internal/infra/db"

	"github.com/google/uuid"
)

type AccUserRepository struct {
	db db.DBTX
}

func NewAccUserRepository(dbtx db.DBTX) *AccUserRepository {
	return &AccUserRepository{db: dbtx}
}

func (r *AccUserRepository) CreateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO acc_users (id, user_id, first_name, last_name)
		 VALUES ($1, $2, $3, $4)`,
		id, userID, firstName, lastName,
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert acc user profile", err)
	}
	return id, nil
}
