package repository

import (
	"context"

	"mentorsync/internal/domain/position"
	"mentorsync/internal/infra"
	"mentorsync/internal/infra/db"

	"github.com/google/uuid"
)

type PositionRepository struct {
	db db.DBTX
}

func NewPositionRepository(dbtx db.DBTX) *PositionRepository {
	return &PositionRepository{db: dbtx}
}

func (r *PositionRepository) Create(ctx context.Context, p *position.Position) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO positions (id, name) VALUES ($1, $2)`,
		p.ID(), p.Name(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert position", err)
	}
	return p.ID(), nil
}
