package colony

import "github.com/paulmach/orb"

// Guardian reacts to intruders within its detection radius. It holds no
// state beyond its body.
type Guardian struct {
	Body
	DetectionRadius float64
}

func NewGuardian(id string, at orb.Point, cfg Config) *Guardian {
	return &Guardian{
		Body:            newBody(id, RoleGuardian, at, cfg),
		DetectionRadius: cfg.DetectionRadius,
	}
}

// DetectIntruders returns every intruder strictly inside the detection
// radius, in input order. It has no side effects.
func (g *Guardian) DetectIntruders(intruders []*Intruder) []*Intruder {
	detected := []*Intruder{}
	for _, in := range intruders {
		if g.DistanceTo(in) < g.DetectionRadius {
			detected = append(detected, in)
		}
	}
	return detected
}

// Intruder walks straight at the base until a guardian catches it.
type Intruder struct {
	Body
}

func NewIntruder(id string, at orb.Point, cfg Config) *Intruder {
	return &Intruder{Body: newBody(id, RoleIntruder, at, cfg)}
}

func (in *Intruder) Advance(cfg Config, base *Base) {
	in.MoveToward(cfg.Arena, base.Pos())
}
