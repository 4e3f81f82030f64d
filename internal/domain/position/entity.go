package position

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("position name cannot be empty")

// Position is a mentoring category (e.g. "Backend Engineer"). Sessions and
// bookings reference it; booking snapshots freeze its name at allocation time.
type Position struct {
	id   uuid.UUID
	name string
}

func NewPosition(name string) (*Position, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Position{
		id:   uuid.New(),
		name: name,
	}, nil
}

func ReconstructPosition(id uuid.UUID, name string) *Position {
	return &Position{id: id, name: name}
}

func (p *Position) ID() uuid.UUID { return p.id }
func (p *Position) Name() string  { return p.name }
