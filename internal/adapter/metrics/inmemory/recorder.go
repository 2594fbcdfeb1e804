package inmemory

import (
	"sync"

	"hivesim/internal/app/ports"
	"hivesim/internal/domain/colony"
)

type Snapshot struct {
	Ticks             int64             `json:"ticks"`
	LastTick          int64             `json:"last_tick"`
	Deposits          uint64            `json:"deposits"`
	CollectSuccess    uint64            `json:"collect_success"`
	CollectFailure    uint64            `json:"collect_failure"`
	TargetsAbandoned  uint64            `json:"targets_abandoned"`
	Discoveries       uint64            `json:"discoveries"`
	IntrudersSpawned  uint64            `json:"intruders_spawned"`
	IntrudersCaptured uint64            `json:"intruders_captured"`
	ByEventType       map[string]uint64 `json:"by_event_type"`
}

type Recorder struct {
	mu       sync.Mutex
	ticks    int64
	lastTick int64
	byType   map[colony.EventType]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byType: map[colony.EventType]uint64{},
	}
}

func (r *Recorder) RecordTick(tick int64, events []colony.DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks++
	r.lastTick = tick
	for _, e := range events {
		r.byType[e.Type]++
	}
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		Ticks:             r.ticks,
		LastTick:          r.lastTick,
		Deposits:          r.byType[colony.EventResourceDeposited],
		CollectSuccess:    r.byType[colony.EventResourceCollected],
		CollectFailure:    r.byType[colony.EventCollectFailed],
		TargetsAbandoned:  r.byType[colony.EventTargetAbandoned],
		Discoveries:       r.byType[colony.EventResourceDiscovered],
		IntrudersSpawned:  r.byType[colony.EventIntruderSpawned],
		IntrudersCaptured: r.byType[colony.EventIntruderCaptured],
		ByEventType:       make(map[string]uint64, len(r.byType)),
	}
	for k, v := range r.byType {
		out.ByEventType[string(k)] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}

var _ ports.TickMetrics = (*Recorder)(nil)
