package memory

import (
	"context"
	"maps"

	"hivesim/internal/app/ports"
	"hivesim/internal/domain/colony"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(_ context.Context, events []colony.DomainEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, e := range events {
		e.Payload = maps.Clone(e.Payload)
		r.store.push(e)
	}
	return nil
}

func (r EventRepo) ListRecent(_ context.Context, limit int) ([]colony.DomainEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := r.store.newest(limit)
	if len(out) == 0 {
		return nil, ports.ErrNotFound
	}
	return out, nil
}

var _ ports.EventRepository = EventRepo{}
