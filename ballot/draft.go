// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import "sync"

// Draft is a fixed-length ranking in progress: one slot per possible rank,
// each slot either empty or holding one candidate name. A candidate never
// occupies two slots at once.
type Draft struct {
	mu    sync.Mutex
	slots []string
}

// NewDraft creates an all-empty draft with one slot per candidate.
func NewDraft(size int) *Draft {
	return &Draft{slots: make([]string, size)}
}

// Select toggles a candidate. If the candidate already holds a slot, that
// slot is cleared. Otherwise the candidate takes the lowest-indexed empty
// slot; if every slot is taken this is a no-op.
func (d *Draft) Select(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, s := range d.slots {
		if s == name {
			d.slots[i] = ""
			return
		}
	}
	for i, s := range d.slots {
		if s == "" {
			d.slots[i] = name
			return
		}
	}
}

// Move repositions the slot at index from to index to, shifting the
// intervening entries by one toward the vacated position. Either index out
// of [0, len) makes this a no-op.
func (d *Draft) Move(from, to int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if from < 0 || from >= len(d.slots) || to < 0 || to >= len(d.slots) || from == to {
		return
	}

	moved := d.slots[from]
	if from < to {
		copy(d.slots[from:to], d.slots[from+1:to+1])
	} else {
		copy(d.slots[to+1:from+1], d.slots[to:from])
	}
	d.slots[to] = moved
}

// Slots returns a copy of the slot array, empty slots included, in rank
// order.
func (d *Draft) Slots() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]string, len(d.slots))
	copy(out, d.slots)
	return out
}

// OrderedPreferences returns the non-empty slots in slot order. This is the
// ranking that gets persisted.
func (d *Draft) OrderedPreferences() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]string, 0, len(d.slots))
	for _, s := range d.slots {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Len returns the slot count.
func (d *Draft) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.slots)
}
