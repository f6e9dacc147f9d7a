package dice

import (
	"time"

	"github.com/google/uuid"
)

// DefaultHistoryCapacity is the number of rolls retained when no explicit
// capacity is given.
const DefaultHistoryCapacity = 50

// Entry is one retained roll in a History.
type Entry struct {
	ID     uuid.UUID
	At     time.Time
	Label  string
	Result Result
}

// History is a bounded, newest-first roll log. Once full, recording a new
// roll evicts the oldest entry.
//
// History is not synchronized: the sheet it models lives in a
// single-threaded host, so callers sharing one History across goroutines
// must serialize access themselves.
type History struct {
	capacity int
	entries  []Entry // newest first
}

// NewHistory returns an empty History holding at most capacity entries.
// Capacities below 1 fall back to DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &History{capacity: capacity}
}

// Record stores result under a fresh entry and returns it.
//
// Postcondition: Len() <= Capacity(); the returned entry is Entries()[0].
func (h *History) Record(label string, result Result) Entry {
	e := Entry{
		ID:     uuid.New(),
		At:     time.Now(),
		Label:  label,
		Result: result,
	}

	h.entries = append([]Entry{e}, h.entries...)
	if len(h.entries) > h.capacity {
		h.entries = h.entries[:h.capacity]
	}
	return e
}

// Entries returns a copy of the retained rolls, newest first.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of retained rolls.
func (h *History) Len() int { return len(h.entries) }

// Capacity returns the maximum number of retained rolls.
func (h *History) Capacity() int { return h.capacity }
