package status

import "hivesim/internal/domain/colony"

type Response struct {
	Snapshot colony.Snapshot `json:"snapshot"`
}
