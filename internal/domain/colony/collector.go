package colony

import (
	"hivesim/internal/domain/world"

	"github.com/paulmach/orb"
)

// DiscoveryBoard is the read-only union of every scout's discovery list for
// one tick, in scout order. Collectors only ever read it.
type DiscoveryBoard struct {
	ids []string
}

func NewDiscoveryBoard(scouts []*Scout) DiscoveryBoard {
	seen := map[string]struct{}{}
	ids := []string{}
	for _, s := range scouts {
		for _, id := range s.found {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return DiscoveryBoard{ids: ids}
}

func BoardOf(ids ...string) DiscoveryBoard {
	return DiscoveryBoard{ids: append([]string(nil), ids...)}
}

func (b DiscoveryBoard) IDs() []string { return append([]string(nil), b.ids...) }
func (b DiscoveryBoard) Len() int      { return len(b.ids) }

// Collector claims the nearest discovered resource, fetches one portion and
// brings it home. Targets are held by ID and resolved every tick, so a
// collector never owns a resource.
type Collector struct {
	Body
	State    CollectorState
	Carrying bool
	TargetID string
	Attempts int
	Wait     int

	cfg Config
}

func NewCollector(id string, at orb.Point, cfg Config) *Collector {
	return &Collector{
		Body:  newBody(id, RoleCollector, at, cfg),
		State: CollectorIdle,
		cfg:   cfg,
	}
}

// Update advances the collector one tick. While the post-deposit wait is
// running it only counts down.
func (c *Collector) Update(resources *ResourceSet, base *Base, board DiscoveryBoard) []DomainEvent {
	if c.Wait > 0 {
		c.Wait--
		return nil
	}
	switch c.State {
	case CollectorIdle:
		return c.idle(resources, board)
	case CollectorCollecting:
		return c.collecting(resources)
	case CollectorReturning:
		return c.returning(base)
	}
	return nil
}

func (c *Collector) idle(resources *ResourceSet, board DiscoveryBoard) []DomainEvent {
	if c.Carrying {
		c.State = CollectorReturning
		return nil
	}
	var nearest *Resource
	nearestDist := 0.0
	for _, id := range board.ids {
		r, ok := resources.Get(id)
		if !ok || r.IsExhausted() {
			continue
		}
		if d := c.DistanceTo(r); nearest == nil || d < nearestDist {
			nearest, nearestDist = r, d
		}
	}
	if nearest == nil {
		return nil
	}
	c.TargetID = nearest.ID
	c.State = CollectorCollecting
	c.Attempts = 0
	return []DomainEvent{newEvent(EventResourceTargeted, c.ID, map[string]any{
		"resource_id": nearest.ID,
		"distance":    nearestDist,
	})}
}

func (c *Collector) collecting(resources *ResourceSet) []DomainEvent {
	target, ok := resources.Get(c.TargetID)
	if c.TargetID == "" || !ok || target.IsExhausted() {
		lost := c.TargetID
		c.State = CollectorIdle
		return []DomainEvent{newEvent(EventTargetLost, c.ID, map[string]any{"resource_id": lost})}
	}

	dir, dist := world.Toward(c.Position, target.Pos())
	if dist >= c.cfg.CollectRadius {
		c.Move(c.cfg.Arena, dir)
		return nil
	}

	if target.Collect() {
		c.Carrying = true
		c.State = CollectorReturning
		return []DomainEvent{newEvent(EventResourceCollected, c.ID, map[string]any{
			"resource_id": target.ID,
			"remaining":   target.Amount(),
			"exhausted":   target.IsExhausted(),
		})}
	}

	c.Attempts++
	events := []DomainEvent{newEvent(EventCollectFailed, c.ID, map[string]any{
		"resource_id": target.ID,
		"attempts":    c.Attempts,
	})}
	if c.Attempts >= c.cfg.MaxCollectionAttempts {
		c.TargetID = ""
		c.State = CollectorIdle
		events = append(events, newEvent(EventTargetAbandoned, c.ID, map[string]any{"resource_id": target.ID}))
	}
	return events
}

func (c *Collector) returning(base *Base) []DomainEvent {
	dir, dist := world.Toward(c.Position, base.Pos())
	if dist >= c.cfg.DepositRadius {
		c.Move(c.cfg.Arena, dir)
		return nil
	}
	if !c.Carrying {
		return nil
	}
	c.Carrying = false
	base.Deposit()
	c.TargetID = ""
	c.State = CollectorIdle
	c.Wait = c.cfg.DepositWaitTicks
	return []DomainEvent{newEvent(EventResourceDeposited, c.ID, map[string]any{
		"base_resources": base.Resources(),
	})}
}
