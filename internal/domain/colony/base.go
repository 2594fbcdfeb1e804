package colony

import "github.com/paulmach/orb"

// Base is the deposit target. Its counter only grows.
type Base struct {
	Position  orb.Point
	resources int
}

func NewBase(at orb.Point) *Base {
	return &Base{Position: at}
}

func (b *Base) Pos() orb.Point { return b.Position }
func (b *Base) Resources() int { return b.resources }
func (b *Base) Deposit()       { b.resources++ }
