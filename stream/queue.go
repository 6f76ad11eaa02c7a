// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stream

// Queue hands out stream slots from the head, one at a time
type Queue struct {
	slots []Slot
	pos   int
}

// Len returns the number of slots remaining
func (q *Queue) Len() int {
	return len(q.slots) - q.pos
}

// Popped returns the number of slots consumed so far
func (q *Queue) Popped() int {
	return q.pos
}

// Pop removes and returns the head slot, or ErrExhausted when empty
func (q *Queue) Pop() (Slot, error) {
	if q.pos >= len(q.slots) {
		return Slot{}, ErrExhausted
	}
	sl := q.slots[q.pos]
	q.pos++
	return sl, nil
}
