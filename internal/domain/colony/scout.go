package colony

import (
	"math"
	"slices"

	"hivesim/internal/domain/world"

	"github.com/paulmach/orb"
)

// Scout sweeps the arena quadrant by quadrant, switches to a spiral around
// anything it finds, and keeps a discovery list that collectors read.
type Scout struct {
	Body
	State ScoutState
	Mode  SearchMode

	found []string

	home     orb.Point
	quadrant int
	points   []orb.Point
	cursor   int

	spiralOrigin orb.Point
	spiralAngle  float64
	spiralRadius float64

	cfg Config
	rng Rand
}

func NewScout(id string, at orb.Point, cfg Config, rng Rand) *Scout {
	s := &Scout{
		Body:         newBody(id, RoleScout, at, cfg),
		State:        ScoutExploring,
		Mode:         SearchQuadrant,
		home:         at,
		spiralOrigin: at,
		quadrant:     rng.IntN(4),
		spiralRadius: cfg.MinDistanceFromOrigin,
		cfg:          cfg,
		rng:          rng,
	}
	s.regeneratePoints()
	return s
}

// Discoveries returns a copy of the discovery list.
func (s *Scout) Discoveries() []string {
	return slices.Clone(s.found)
}

func (s *Scout) Quadrant() int               { return s.quadrant }
func (s *Scout) QuadrantPoints() []orb.Point { return slices.Clone(s.points) }
func (s *Scout) Cursor() int                 { return s.cursor }
func (s *Scout) SpiralRadius() float64       { return s.spiralRadius }
func (s *Scout) SpiralOrigin() orb.Point     { return s.spiralOrigin }

// Waypoint is the quadrant point currently being approached, if any.
func (s *Scout) Waypoint() (orb.Point, bool) {
	if s.State != ScoutExploring || s.Mode != SearchQuadrant || s.cursor >= len(s.points) {
		return orb.Point{}, false
	}
	return s.points[s.cursor], true
}

// Update runs discovery and then one motion step. Quadrant points are
// laid out around the base; the spiral keeps the origin it was started on.
func (s *Scout) Update(resources *ResourceSet, base *Base) []DomainEvent {
	var events []DomainEvent
	s.home = base.Pos()

	s.found = slices.DeleteFunc(s.found, func(id string) bool {
		r, ok := resources.Get(id)
		return !ok || r.IsExhausted()
	})

	for _, r := range resources.All() {
		if r.IsExhausted() || slices.Contains(s.found, r.ID) {
			continue
		}
		if s.DistanceTo(r) >= s.cfg.ScanRadius {
			continue
		}
		s.found = append(s.found, r.ID)
		events = append(events, newEvent(EventResourceDiscovered, s.ID, map[string]any{
			"resource_id": r.ID,
			"x":           r.Position[0],
			"y":           r.Position[1],
		}))
		events = s.setMode(events, SearchSpiral, "discovery")
		s.spiralOrigin = r.Pos()
		s.spiralRadius = s.cfg.ScanRadius
		s.spiralAngle = 0
	}

	if s.State == ScoutReturning {
		return s.returnHome(base, events)
	}

	if s.DistanceTo(base) > s.cfg.ReturnThreshold {
		s.State = ScoutReturning
		return append(events, newEvent(EventScoutReturning, s.ID, nil))
	}

	target, events := s.NextSearchPoint(base, events)
	if dir, dist := world.Toward(s.Position, target); dist > s.cfg.WaypointReachedRadius {
		s.Move(s.cfg.Arena, dir)
		return events
	}

	if s.Mode == SearchQuadrant {
		s.cursor++
		if s.cursor >= len(s.points) {
			s.nextQuadrant()
		}
	}
	if s.rng.Float64() < s.cfg.ModeSwitchChance {
		if s.Mode == SearchSpiral {
			events = s.setMode(events, SearchQuadrant, "random")
			s.regeneratePoints()
		} else {
			events = s.setMode(events, SearchSpiral, "random")
			s.spiralOrigin = s.home
			s.spiralRadius = s.cfg.MinDistanceFromOrigin
			s.spiralAngle = s.rng.Float64() * 2 * math.Pi
		}
	}
	return events
}

// NextSearchPoint returns the active strategy's next target. Spiral mode
// advances the spiral on every call.
func (s *Scout) NextSearchPoint(base *Base, events []DomainEvent) (orb.Point, []DomainEvent) {
	if s.Mode == SearchSpiral {
		return s.nextSpiralPoint(events)
	}
	if len(s.points) == 0 || s.cursor >= len(s.points) {
		s.nextQuadrant()
	}
	if len(s.points) > 0 {
		return s.points[s.cursor], events
	}
	return orb.Point{base.Position[0] + s.cfg.MinDistanceFromOrigin, base.Position[1]}, events
}

func (s *Scout) nextSpiralPoint(events []DomainEvent) (orb.Point, []DomainEvent) {
	s.spiralAngle += s.cfg.SpiralAngleStep
	s.spiralRadius += s.cfg.SpiralRadiusStep
	p := SpiralPoint(s.spiralOrigin, s.spiralRadius, s.spiralAngle, s.cfg.safeBox())
	if s.spiralRadius > s.cfg.SpiralMaxRadius {
		events = s.setMode(events, SearchQuadrant, "spiral_exhausted")
		s.regeneratePoints()
	}
	return p, events
}

func (s *Scout) returnHome(base *Base, events []DomainEvent) []DomainEvent {
	dist := s.MoveToward(s.cfg.Arena, base.Pos())
	if dist < s.cfg.HomeArrivalRadius {
		s.State = ScoutExploring
		events = s.setMode(events, SearchQuadrant, "home")
		s.regeneratePoints()
		events = append(events, newEvent(EventScoutResumed, s.ID, nil))
	}
	return events
}

func (s *Scout) nextQuadrant() {
	s.quadrant = (s.quadrant + 1) % 4
	s.regeneratePoints()
}

func (s *Scout) regeneratePoints() {
	quadrant := s.cfg.Arena.Quadrants()[s.quadrant]
	points := GenerateQuadrantPoints(quadrant, s.home, s.cfg.QuadrantStep, s.cfg.MinDistanceFromOrigin)
	s.rng.Shuffle(len(points), func(i, j int) { points[i], points[j] = points[j], points[i] })
	s.points = points
	s.cursor = 0
}

func (s *Scout) setMode(events []DomainEvent, mode SearchMode, reason string) []DomainEvent {
	if s.Mode == mode {
		return events
	}
	from := s.Mode
	s.Mode = mode
	return append(events, newEvent(EventSearchModeChanged, s.ID, map[string]any{
		"from":   string(from),
		"to":     string(mode),
		"reason": reason,
	}))
}
