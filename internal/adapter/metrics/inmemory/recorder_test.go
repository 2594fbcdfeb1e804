package inmemory

import (
	"testing"

	"hivesim/internal/domain/colony"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordTick(1, []colony.DomainEvent{
		{Type: colony.EventResourceDiscovered},
		{Type: colony.EventResourceCollected},
	})
	r.RecordTick(2, nil)
	r.RecordTick(3, []colony.DomainEvent{
		{Type: colony.EventResourceDeposited},
		{Type: colony.EventCollectFailed},
		{Type: colony.EventCollectFailed},
		{Type: colony.EventIntruderCaptured},
	})

	s := r.Snapshot()
	if s.Ticks != 3 {
		t.Fatalf("expected ticks 3, got %d", s.Ticks)
	}
	if s.LastTick != 3 {
		t.Fatalf("expected last tick 3, got %d", s.LastTick)
	}
	if s.Deposits != 1 || s.CollectSuccess != 1 || s.Discoveries != 1 {
		t.Fatalf("unexpected counters %+v", s)
	}
	if s.CollectFailure != 2 {
		t.Fatalf("expected collect failure 2, got %d", s.CollectFailure)
	}
	if s.IntrudersCaptured != 1 || s.IntrudersSpawned != 0 {
		t.Fatalf("unexpected intruder counters %+v", s)
	}
	if s.ByEventType[string(colony.EventCollectFailed)] != 2 {
		t.Fatalf("expected by_event_type collect_failed 2")
	}
}

func TestRecorderSnapshotIsCopy(t *testing.T) {
	r := NewRecorder()
	r.RecordTick(1, []colony.DomainEvent{{Type: colony.EventTargetLost}})
	s := r.Snapshot()
	s.ByEventType[string(colony.EventTargetLost)] = 99

	if got := r.Snapshot().ByEventType[string(colony.EventTargetLost)]; got != 1 {
		t.Fatalf("expected recorder untouched, got %d", got)
	}
}
