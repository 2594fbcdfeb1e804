package sim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"hivesim/internal/app/ports"
	"hivesim/internal/domain/colony"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

var ErrNoRand = errors.New("simulation requires a random source")

type TickReport struct {
	Tick   int64                `json:"tick"`
	Events []colony.DomainEvent `json:"events"`
}

type Option func(*Simulation)

// WithResources replaces the random resource layout.
func WithResources(resources ...*colony.Resource) Option {
	return func(s *Simulation) {
		s.layout = resources
		s.fixedLayout = true
	}
}

func WithMetrics(m ports.TickMetrics) Option {
	return func(s *Simulation) { s.metrics = m }
}

func WithEventRepo(r ports.EventRepository) Option {
	return func(s *Simulation) { s.events = r }
}

func WithClock(now func() time.Time) Option {
	return func(s *Simulation) { s.now = now }
}

func WithRunID(id string) Option {
	return func(s *Simulation) { s.runID = id }
}

// Simulation owns every entity of one colony and advances it one tick at a
// time. It is not safe for concurrent use; Runner serializes access.
type Simulation struct {
	cfg   colony.Config
	rng   colony.Rand
	runID string
	tick  int64
	now   func() time.Time

	base       *colony.Base
	resources  *colony.ResourceSet
	scouts     []*colony.Scout
	collectors []*colony.Collector
	guardians  []*colony.Guardian
	intruders  []*colony.Intruder

	layout      []*colony.Resource
	fixedLayout bool
	seq         map[string]int

	metrics ports.TickMetrics
	events  ports.EventRepository
}

func New(cfg colony.Config, rng colony.Rand, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNoRand
	}
	s := &Simulation{
		cfg: cfg,
		rng: rng,
		now: time.Now,
		seq: map[string]int{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.runID == "" {
		s.runID = uuid.NewString()
	}

	s.base = colony.NewBase(cfg.Arena.Center())
	s.populate()
	return s, nil
}

func (s *Simulation) populate() {
	home := s.base.Pos()
	for i := 0; i < s.cfg.Scouts; i++ {
		s.scouts = append(s.scouts, colony.NewScout(s.nextID(string(colony.RoleScout)), home, s.cfg, s.rng))
	}
	for i := 0; i < s.cfg.Collectors; i++ {
		s.collectors = append(s.collectors, colony.NewCollector(s.nextID(string(colony.RoleCollector)), home, s.cfg))
	}
	for i := 0; i < s.cfg.Guardians; i++ {
		angle := 2 * math.Pi * float64(i) / float64(s.cfg.Guardians)
		at := orb.Point{
			home[0] + s.cfg.GuardianRingRadius*math.Cos(angle),
			home[1] + s.cfg.GuardianRingRadius*math.Sin(angle),
		}
		s.guardians = append(s.guardians, colony.NewGuardian(s.nextID(string(colony.RoleGuardian)), at, s.cfg))
	}

	if !s.fixedLayout {
		box := s.cfg.Arena.Inset(s.cfg.SafeBox)
		for i := 0; i < s.cfg.Resources; i++ {
			s.layout = append(s.layout, colony.NewResource(
				s.nextID("resource"),
				colony.ScatterPoint(box, s.rng),
				s.cfg.ResourceMaxAmount,
				s.cfg.ResourceCollectionRate,
			))
		}
	}
	s.resources = colony.NewResourceSet(s.layout...)
	s.layout = nil
}

func (s *Simulation) nextID(kind string) string {
	s.seq[kind]++
	return fmt.Sprintf("%s-%d", kind, s.seq[kind])
}

// Tick advances the colony by one step: scouts, discovery board,
// collectors, guardian pursuit, intruder spawn, intruder movement.
func (s *Simulation) Tick(ctx context.Context) (TickReport, error) {
	s.tick++
	var events []colony.DomainEvent

	for _, sc := range s.scouts {
		events = append(events, sc.Update(s.resources, s.base)...)
	}
	board := colony.NewDiscoveryBoard(s.scouts)
	for _, c := range s.collectors {
		events = append(events, c.Update(s.resources, s.base, board)...)
	}
	events = append(events, s.pursue()...)
	events = append(events, s.spawn()...)
	for _, in := range s.intruders {
		in.Advance(s.cfg, s.base)
	}

	for i := range events {
		events[i].Tick = s.tick
	}
	report := TickReport{Tick: s.tick, Events: events}
	if s.metrics != nil {
		s.metrics.RecordTick(s.tick, events)
	}
	if s.events != nil && len(events) > 0 {
		if err := s.events.Append(ctx, events); err != nil {
			return report, fmt.Errorf("append events of tick %d: %w", s.tick, err)
		}
	}
	return report, nil
}

// pursue lets each guardian chase what it detected at the start of its turn.
// Capture is judged on the distance before the guardian steps.
func (s *Simulation) pursue() []colony.DomainEvent {
	var events []colony.DomainEvent
	for _, g := range s.guardians {
		for _, in := range g.DetectIntruders(s.intruders) {
			dist := g.MoveToward(s.cfg.Arena, in.Pos())
			if dist >= s.cfg.CaptureRadius || !s.removeIntruder(in) {
				continue
			}
			events = append(events, colony.DomainEvent{
				Type:    colony.EventIntruderCaptured,
				AgentID: g.ID,
				Payload: map[string]any{"intruder_id": in.ID, "distance": dist},
			})
		}
	}
	return events
}

func (s *Simulation) removeIntruder(target *colony.Intruder) bool {
	i := slices.Index(s.intruders, target)
	if i < 0 {
		return false
	}
	s.intruders = slices.Delete(s.intruders, i, i+1)
	return true
}

func (s *Simulation) spawn() []colony.DomainEvent {
	if s.rng.Float64() >= s.cfg.SpawnChance {
		return nil
	}
	in := s.AddIntruder(colony.EdgeSpawnPoint(s.cfg.Arena, s.rng))
	return []colony.DomainEvent{{
		Type:    colony.EventIntruderSpawned,
		AgentID: in.ID,
		Payload: map[string]any{"x": in.Position[0], "y": in.Position[1]},
	}}
}

// AddIntruder places a new intruder at the given point, clamped into the
// arena.
func (s *Simulation) AddIntruder(at orb.Point) *colony.Intruder {
	in := colony.NewIntruder(s.nextID(string(colony.RoleIntruder)), at, s.cfg)
	s.intruders = append(s.intruders, in)
	return in
}

func (s *Simulation) Snapshot() colony.Snapshot {
	snap := colony.Snapshot{
		RunID:     s.runID,
		Tick:      s.tick,
		TakenAt:   s.now().UTC(),
		Width:     s.cfg.Arena.Width(),
		Height:    s.cfg.Arena.Height(),
		Base:      s.base.View(),
		Resources: make([]colony.ResourceView, 0, s.resources.Len()),
		Agents:    make([]colony.AgentView, 0, len(s.scouts)+len(s.collectors)+len(s.guardians)+len(s.intruders)),
		Counts: colony.Counts{
			Scouts:          len(s.scouts),
			Collectors:      len(s.collectors),
			Guardians:       len(s.guardians),
			Intruders:       len(s.intruders),
			ActiveResources: s.resources.ActiveCount(),
		},
	}
	for _, r := range s.resources.All() {
		snap.Resources = append(snap.Resources, r.View())
	}
	for _, sc := range s.scouts {
		snap.Agents = append(snap.Agents, sc.View())
	}
	for _, c := range s.collectors {
		snap.Agents = append(snap.Agents, c.View())
	}
	for _, g := range s.guardians {
		snap.Agents = append(snap.Agents, g.View())
	}
	for _, in := range s.intruders {
		snap.Agents = append(snap.Agents, in.View())
	}
	return snap
}

func (s *Simulation) RunID() string                   { return s.runID }
func (s *Simulation) CurrentTick() int64              { return s.tick }
func (s *Simulation) Config() colony.Config           { return s.cfg }
func (s *Simulation) Base() *colony.Base              { return s.base }
func (s *Simulation) Resources() *colony.ResourceSet  { return s.resources }
func (s *Simulation) Scouts() []*colony.Scout         { return s.scouts }
func (s *Simulation) Collectors() []*colony.Collector { return s.collectors }
func (s *Simulation) Guardians() []*colony.Guardian   { return s.guardians }
func (s *Simulation) Intruders() []*colony.Intruder   { return s.intruders }
