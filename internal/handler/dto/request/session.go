package request

import (
	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	PositionID   uuid.UUID `json:"position_id" binding:"required"`
	Price        float64   `json:"price" binding:"required,gte=0"`
	LocationName string    `json:"location_name" binding:"required"`
}

type CreatePositionRequest struct {
	Name string `json:"name" binding:"required"`
}
