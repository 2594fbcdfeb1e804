package status

import (
	"context"

	"hivesim/internal/app/ports"
)

type UseCase struct {
	Source ports.SnapshotSource
}

func (u UseCase) Execute(_ context.Context) (Response, error) {
	if u.Source == nil {
		return Response{}, ports.ErrNotRunning
	}
	snap, ok := u.Source.Latest()
	if !ok {
		return Response{}, ports.ErrNotRunning
	}
	return Response{Snapshot: snap}, nil
}
