package replay

import "hivesim/internal/domain/colony"

type Request struct {
	Limit    int
	Type     colony.EventType
	AgentID  string
	FromTick int64
	ToTick   int64
}

type Response struct {
	Events []colony.DomainEvent `json:"events"`
	ByType map[string]int       `json:"by_type"`
}
