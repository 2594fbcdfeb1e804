package colony

import "github.com/paulmach/orb"

type Role string

const (
	RoleScout     Role = "scout"
	RoleCollector Role = "collector"
	RoleGuardian  Role = "guardian"
	RoleIntruder  Role = "intruder"
)

type ScoutState string

const (
	ScoutExploring ScoutState = "exploring"
	ScoutReturning ScoutState = "returning"
)

type SearchMode string

const (
	SearchQuadrant SearchMode = "quadrant"
	SearchSpiral   SearchMode = "spiral"
)

type CollectorState string

const (
	CollectorIdle       CollectorState = "idle"
	CollectorCollecting CollectorState = "collecting"
	CollectorReturning  CollectorState = "returning"
)

// Locatable is anything with a position in the arena.
type Locatable interface {
	Pos() orb.Point
}

// Rand is the source of uniform randomness the colony draws from.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type EventType string

const (
	EventResourceDiscovered EventType = "resource_discovered"
	EventSearchModeChanged  EventType = "search_mode_changed"
	EventScoutReturning     EventType = "scout_returning"
	EventScoutResumed       EventType = "scout_resumed"

	EventResourceTargeted  EventType = "resource_targeted"
	EventResourceCollected EventType = "resource_collected"
	EventCollectFailed     EventType = "collect_failed"
	EventTargetAbandoned   EventType = "target_abandoned"
	EventTargetLost        EventType = "target_lost"
	EventResourceDeposited EventType = "resource_deposited"

	EventIntruderSpawned  EventType = "intruder_spawned"
	EventIntruderCaptured EventType = "intruder_captured"
)

// DomainEvent records one noteworthy state transition. Tick is stamped by
// the orchestrator.
type DomainEvent struct {
	Type    EventType      `json:"type"`
	Tick    int64          `json:"tick"`
	AgentID string         `json:"agent_id,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

func newEvent(t EventType, agentID string, payload map[string]any) DomainEvent {
	return DomainEvent{Type: t, AgentID: agentID, Payload: payload}
}
