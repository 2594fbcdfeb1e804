package colony

import (
	"hivesim/internal/domain/world"

	"github.com/paulmach/orb"
)

// Body is the movable shape shared by every role.
type Body struct {
	ID       string
	Role     Role
	Position orb.Point
	Speed    float64
	Radius   float64
}

func newBody(id string, role Role, at orb.Point, cfg Config) Body {
	return Body{
		ID:       id,
		Role:     role,
		Position: cfg.Arena.Clamp(at),
		Speed:    cfg.AgentSpeed,
		Radius:   cfg.AgentRadius,
	}
}

func (b *Body) Pos() orb.Point { return b.Position }

func (b *Body) DistanceTo(other Locatable) float64 {
	return world.Distance(b.Position, other.Pos())
}

// Move displaces the body by dir * Speed, clamped into the arena.
func (b *Body) Move(arena world.Arena, dir orb.Point) {
	b.Position = arena.Step(b.Position, dir, b.Speed)
}

// MoveToward steps one unit-normalized move toward target and returns the
// distance measured before moving.
func (b *Body) MoveToward(arena world.Arena, target orb.Point) float64 {
	dir, dist := world.Toward(b.Position, target)
	if dist > 0 {
		b.Move(arena, dir)
	}
	return dist
}
