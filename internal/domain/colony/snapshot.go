package colony

import "time"

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type BaseView struct {
	Position  Point `json:"position"`
	Resources int   `json:"resources"`
}

type ResourceView struct {
	ID        string `json:"id"`
	Position  Point  `json:"position"`
	Amount    int    `json:"amount"`
	MaxAmount int    `json:"max_amount"`
	Exhausted bool   `json:"exhausted"`
}

// AgentView flattens every role into one shape. Fields that do not apply
// to a role stay empty.
type AgentView struct {
	ID       string `json:"id"`
	Role     Role   `json:"role"`
	Position Point  `json:"position"`
	State    string `json:"state,omitempty"`
	Mode     string `json:"mode,omitempty"`
	Carrying bool   `json:"carrying,omitempty"`
	TargetID string `json:"target_id,omitempty"`
	Found    int    `json:"found,omitempty"`
}

type Counts struct {
	Scouts          int `json:"scouts"`
	Collectors      int `json:"collectors"`
	Guardians       int `json:"guardians"`
	Intruders       int `json:"intruders"`
	ActiveResources int `json:"active_resources"`
}

// Snapshot is a detached copy of the colony after a tick.
type Snapshot struct {
	RunID     string         `json:"run_id"`
	Tick      int64          `json:"tick"`
	TakenAt   time.Time      `json:"taken_at"`
	Width     float64        `json:"width"`
	Height    float64        `json:"height"`
	Base      BaseView       `json:"base"`
	Resources []ResourceView `json:"resources"`
	Agents    []AgentView    `json:"agents"`
	Counts    Counts         `json:"counts"`
}

func (b *Body) view() AgentView {
	return AgentView{ID: b.ID, Role: b.Role, Position: Point{X: b.Position[0], Y: b.Position[1]}}
}

func (s *Scout) View() AgentView {
	v := s.view()
	v.State = string(s.State)
	v.Mode = string(s.Mode)
	v.Found = len(s.found)
	return v
}

func (c *Collector) View() AgentView {
	v := c.view()
	v.State = string(c.State)
	v.Carrying = c.Carrying
	v.TargetID = c.TargetID
	return v
}

func (g *Guardian) View() AgentView  { return g.view() }
func (in *Intruder) View() AgentView { return in.view() }

func (r *Resource) View() ResourceView {
	return ResourceView{
		ID:        r.ID,
		Position:  Point{X: r.Position[0], Y: r.Position[1]},
		Amount:    r.amount,
		MaxAmount: r.MaxAmount,
		Exhausted: r.exhausted,
	}
}

func (b *Base) View() BaseView {
	return BaseView{Position: Point{X: b.Position[0], Y: b.Position[1]}, Resources: b.resources}
}
