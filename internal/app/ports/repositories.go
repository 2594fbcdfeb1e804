package ports

import (
	"context"

	"hivesim/internal/domain/colony"
)

// EventRepository keeps domain events newest first. ListRecent with a
// non-positive limit returns everything retained.
type EventRepository interface {
	Append(ctx context.Context, events []colony.DomainEvent) error
	ListRecent(ctx context.Context, limit int) ([]colony.DomainEvent, error)
}

type SnapshotSource interface {
	Latest() (colony.Snapshot, bool)
}
