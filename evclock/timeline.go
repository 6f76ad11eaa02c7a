// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evclock

import (
	"fmt"
	"time"
)

// Ticket is a named deadline, as an offset from trial start
type Ticket struct {
	Label string
	Onset time.Duration
}

// Timeline holds the deadlines registered for the current trial.
// It is created fresh (or Reset) each trial, and Start marks trial time 0.
type Timeline struct {
	Clock   Clock    `desc:"source of time"`
	Tickets []Ticket `desc:"registered deadlines, in strictly increasing onset order"`
	start   time.Duration
	started bool
}

// NewTimeline returns a Timeline on given clock
func NewTimeline(clk Clock) *Timeline {
	return &Timeline{Clock: clk}
}

// Register adds a named deadline.  Onsets must be strictly increasing
// and labels unique.
func (tl *Timeline) Register(label string, onset time.Duration) error {
	if onset < 0 {
		return fmt.Errorf("evclock.Timeline: ticket %q has negative onset %v", label, onset)
	}
	for _, tk := range tl.Tickets {
		if tk.Label == label {
			return fmt.Errorf("evclock.Timeline: ticket %q already registered", label)
		}
	}
	if n := len(tl.Tickets); n > 0 && onset <= tl.Tickets[n-1].Onset {
		return fmt.Errorf("evclock.Timeline: ticket %q onset %v not after %q at %v", label, onset, tl.Tickets[n-1].Label, tl.Tickets[n-1].Onset)
	}
	tl.Tickets = append(tl.Tickets, Ticket{Label: label, Onset: onset})
	return nil
}

// Start marks the current clock time as trial time 0
func (tl *Timeline) Start() {
	tl.start = tl.Clock.Now()
	tl.started = true
}

// Started reports whether Start has been called since the last Reset
func (tl *Timeline) Started() bool {
	return tl.started
}

// Reset removes all tickets and stops the trial clock
func (tl *Timeline) Reset() {
	tl.Tickets = nil
	tl.started = false
}

// TrialTime returns the time since Start
func (tl *Timeline) TrialTime() time.Duration {
	if !tl.started {
		return 0
	}
	return tl.Clock.Now() - tl.start
}

// TrialTimeMs returns TrialTime in milliseconds
func (tl *Timeline) TrialTimeMs() float64 {
	return Msec(tl.TrialTime())
}

// Onset returns the onset of the named ticket
func (tl *Timeline) Onset(label string) (time.Duration, bool) {
	for _, tk := range tl.Tickets {
		if tk.Label == label {
			return tk.Onset, true
		}
	}
	return 0, false
}

// Before reports whether the named deadline is still in the future.
// Asking about an unregistered label is a programming error and panics.
func (tl *Timeline) Before(label string) bool {
	on, ok := tl.Onset(label)
	if !ok {
		panic(fmt.Sprintf("evclock.Timeline: no ticket named %q", label))
	}
	return tl.TrialTime() < on
}

// After is the complement of Before
func (tl *Timeline) After(label string) bool {
	return !tl.Before(label)
}

// WaitFor polls until the named deadline is reached, calling check on
// every pass and sleeping poll between passes.  A non-nil error from
// check ends the wait and is returned.
func (tl *Timeline) WaitFor(label string, poll time.Duration, check func() error) error {
	for tl.Before(label) {
		if check != nil {
			if err := check(); err != nil {
				return err
			}
		}
		tl.Clock.Sleep(poll)
	}
	return nil
}
