package kernel

import (
	"fmt"
	"sync"
)

// orderSequenceSeed is the value the order counter starts above; the first
// generated identifier is therefore "VD-1041".
const orderSequenceSeed = 1040

// OrderSequence generates the sequential customer order identifiers of the
// "VD-<n>" form. It is safe for concurrent use.
//
// Example:
//
//	seq := kernel.NewOrderSequence()
//	fmt.Println(seq.Next()) // "VD-1041"
//	fmt.Println(seq.Next()) // "VD-1042"
type OrderSequence struct {
	mu   sync.Mutex
	next int
}

// NewOrderSequence creates a sequence starting above the fixed seed.
func NewOrderSequence() *OrderSequence {
	return NewOrderSequenceFrom(orderSequenceSeed)
}

// NewOrderSequenceFrom creates a sequence whose first identifier is
// "VD-<seed+1>". Used by tests that need a predictable starting point.
func NewOrderSequenceFrom(seed int) *OrderSequence {
	return &OrderSequence{next: seed + 1}
}

// Next returns a fresh order identifier and advances the counter.
func (s *OrderSequence) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("VD-%d", s.next)
	s.next++
	return id
}
