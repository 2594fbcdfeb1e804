package ports

import "hivesim/internal/domain/colony"

type TickMetrics interface {
	RecordTick(tick int64, events []colony.DomainEvent)
}
