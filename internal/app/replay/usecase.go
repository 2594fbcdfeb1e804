package replay

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hivesim/internal/app/ports"
	"hivesim/internal/domain/colony"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	Events ports.EventRepository
}

// Execute returns the newest matching events first. An empty log is not an
// error.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if err := validate(req); err != nil {
		return Response{}, err
	}
	limit := req.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	events, err := u.Events.ListRecent(ctx, 0)
	if errors.Is(err, ports.ErrNotFound) {
		return Response{Events: []colony.DomainEvent{}, ByType: map[string]int{}}, nil
	}
	if err != nil {
		return Response{}, err
	}

	out := make([]colony.DomainEvent, 0, min(limit, len(events)))
	for _, evt := range events {
		if len(out) == limit {
			break
		}
		if matches(evt, req) {
			out = append(out, evt)
		}
	}
	return Response{Events: out, ByType: countByType(out)}, nil
}

func validate(req Request) error {
	if req.Limit < 0 || req.Limit > MaxLimit {
		return fmt.Errorf("%w: limit must be within [0,%d]", ErrInvalidRequest, MaxLimit)
	}
	if req.FromTick < 0 || req.ToTick < 0 {
		return fmt.Errorf("%w: ticks must not be negative", ErrInvalidRequest)
	}
	if req.FromTick > 0 && req.ToTick > 0 && req.FromTick > req.ToTick {
		return fmt.Errorf("%w: from_tick after to_tick", ErrInvalidRequest)
	}
	return nil
}

func matches(evt colony.DomainEvent, req Request) bool {
	if req.Type != "" && evt.Type != req.Type {
		return false
	}
	if id := strings.TrimSpace(req.AgentID); id != "" && evt.AgentID != id {
		return false
	}
	if req.FromTick > 0 && evt.Tick < req.FromTick {
		return false
	}
	if req.ToTick > 0 && evt.Tick > req.ToTick {
		return false
	}
	return true
}

func countByType(events []colony.DomainEvent) map[string]int {
	out := map[string]int{}
	for _, evt := range events {
		out[string(evt.Type)]++
	}
	return out
}
