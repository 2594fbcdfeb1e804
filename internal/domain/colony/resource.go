package colony

import "github.com/paulmach/orb"

// Resource is a depletable node. Amount never increases and exhaustion is
// terminal.
type Resource struct {
	ID             string
	Position       orb.Point
	MaxAmount      int
	CollectionRate int

	amount    int
	exhausted bool
}

func NewResource(id string, at orb.Point, maxAmount, rate int) *Resource {
	if maxAmount < 0 {
		maxAmount = 0
	}
	return &Resource{
		ID:             id,
		Position:       at,
		MaxAmount:      maxAmount,
		CollectionRate: rate,
		amount:         maxAmount,
		exhausted:      maxAmount <= 0,
	}
}

func (r *Resource) Pos() orb.Point    { return r.Position }
func (r *Resource) Amount() int       { return r.amount }
func (r *Resource) IsExhausted() bool { return r.exhausted }

// Collect takes one CollectionRate portion. A partial remainder is never
// taken, so Amount cannot go negative.
func (r *Resource) Collect() bool {
	if r.exhausted || r.CollectionRate <= 0 || r.amount < r.CollectionRate {
		return false
	}
	r.amount -= r.CollectionRate
	if r.amount <= 0 {
		r.exhausted = true
	}
	return true
}

// ResourceSet is the authoritative resource collection. Entries are never
// removed; exhausted ones are filtered by readers.
type ResourceSet struct {
	items []*Resource
	byID  map[string]*Resource
}

func NewResourceSet(resources ...*Resource) *ResourceSet {
	s := &ResourceSet{byID: make(map[string]*Resource, len(resources))}
	for _, r := range resources {
		s.Add(r)
	}
	return s
}

func (s *ResourceSet) Add(r *Resource) {
	if r == nil {
		return
	}
	if _, ok := s.byID[r.ID]; ok {
		return
	}
	s.items = append(s.items, r)
	s.byID[r.ID] = r
}

func (s *ResourceSet) Get(id string) (*Resource, bool) {
	r, ok := s.byID[id]
	return r, ok
}

func (s *ResourceSet) Contains(id string) bool {
	_, ok := s.byID[id]
	return ok
}

func (s *ResourceSet) All() []*Resource {
	return s.items
}

func (s *ResourceSet) Len() int { return len(s.items) }

func (s *ResourceSet) ActiveCount() int {
	n := 0
	for _, r := range s.items {
		if !r.exhausted {
			n++
		}
	}
	return n
}
