package sim

import (
	"context"
	"sync"
	"time"

	"hivesim/internal/app/ports"
	"hivesim/internal/domain/colony"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const DefaultTickHz = 60

var _ ports.SnapshotSource = (*Runner)(nil)

// Runner drives a Simulation in real time from a single goroutine and
// publishes a snapshot after every tick for concurrent readers.
type Runner struct {
	sim      *Simulation
	interval time.Duration

	mu     sync.RWMutex
	latest colony.Snapshot
	ready  bool
}

func NewRunner(s *Simulation, hz int) *Runner {
	if hz <= 0 {
		hz = DefaultTickHz
	}
	return &Runner{sim: s, interval: time.Second / time.Duration(hz)}
}

func (r *Runner) Interval() time.Duration { return r.interval }

// Run ticks until ctx is done. Tick errors are logged and do not stop the
// loop.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.publish()
	hlog.CtxInfof(ctx, "simulation %s running every %s", r.sim.RunID(), r.interval)
	for {
		select {
		case <-ctx.Done():
			hlog.CtxInfof(ctx, "simulation %s stopped at tick %d", r.sim.RunID(), r.sim.CurrentTick())
			return ctx.Err()
		case <-ticker.C:
			r.Step(ctx)
		}
	}
}

// Step runs one tick and publishes the result.
func (r *Runner) Step(ctx context.Context) TickReport {
	report, err := r.sim.Tick(ctx)
	if err != nil {
		hlog.CtxErrorf(ctx, "simulation %s tick %d: %v", r.sim.RunID(), report.Tick, err)
	}
	r.publish()
	return report
}

func (r *Runner) publish() {
	snap := r.sim.Snapshot()
	r.mu.Lock()
	r.latest = snap
	r.ready = true
	r.mu.Unlock()
}

func (r *Runner) Latest() (colony.Snapshot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.latest, r.ready
}
