package memory

import (
	"sync"

	"hivesim/internal/domain/colony"
)

const DefaultCapacity = 1024

// Store is a fixed-size ring of domain events. The oldest entries are
// overwritten once it is full.
type Store struct {
	mu     sync.RWMutex
	events []colony.DomainEvent
	next   int
	full   bool
}

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{events: make([]colony.DomainEvent, capacity)}
}

func (s *Store) Cap() int { return len(s.events) }

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.full {
		return len(s.events)
	}
	return s.next
}

func (s *Store) push(evt colony.DomainEvent) {
	s.events[s.next] = evt
	s.next++
	if s.next == len(s.events) {
		s.next = 0
		s.full = true
	}
}

// newest returns up to limit events, newest first. limit <= 0 means all.
func (s *Store) newest(limit int) []colony.DomainEvent {
	n := s.next
	if s.full {
		n = len(s.events)
	}
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]colony.DomainEvent, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (s.next - i + len(s.events)) % len(s.events)
		out = append(out, s.events[idx])
	}
	return out
}
