// Package intent holds the action requested by a trigger until the record
// handler picks it up. The value is read once and cleared on read, so a stale
// intent never leaks into a later run.
package intent

import (
	"sync"

	"github.com/raushankrgupta/product-clipper/models"
)

// Slot is a single-use handoff for the last requested action
type Slot struct {
	mu     sync.Mutex
	action models.Action
	set    bool
}

// NewSlot creates an empty slot
func NewSlot() *Slot {
	return &Slot{}
}

// Set stores the action, replacing any unconsumed one
func (s *Slot) Set(action models.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.action = action
	s.set = true
}

// Consume returns the stored action and clears the slot.
// An empty slot yields models.ActionAll.
func (s *Slot) Consume() models.Action {
	s.mu.Lock()
	defer s.mu.Unlock()

	action := models.ActionAll
	if s.set {
		action = s.action
	}
	s.action = ""
	s.set = false
	return action
}

// Pending reports whether an action is waiting to be consumed
func (s *Slot) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set
}
