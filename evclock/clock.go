// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package evclock provides the event clock used to time trials: a Clock
abstraction (wall-clock or simulated), a Timeline of named deadlines
measured from trial start, and CountDown timers for fixed-duration waits.

All waiting is done by polling: callers loop on Timeline.Before or
CountDown.Counting, calling Clock.Sleep with a short poll interval between
checks, so that quit requests can be serviced on every pass.
*/
package evclock

import (
	"runtime"
	"time"
)

// Clock is a monotonic time source
type Clock interface {
	// Now returns the time elapsed since the clock was created
	Now() time.Duration

	// Sleep waits for d.  A d <= 0 yields without waiting (Wall)
	// or advances by the minimum tick (Sim).
	Sleep(d time.Duration)
}

// Wall is a Clock based on the system monotonic clock
type Wall struct {
	start time.Time
}

// NewWall returns a Wall clock starting now
func NewWall() *Wall {
	return &Wall{start: time.Now()}
}

func (cl *Wall) Now() time.Duration {
	return time.Since(cl.start)
}

func (cl *Wall) Sleep(d time.Duration) {
	if d <= 0 {
		runtime.Gosched()
		return
	}
	time.Sleep(d)
}

// Sim is a simulated Clock that only advances when slept on.
// Used for running sessions faster than real time and for tests.
type Sim struct {
	T    time.Duration `desc:"current time"`
	Tick time.Duration `desc:"minimum advance for a Sleep, default 1 msec"`
}

// NewSim returns a simulated clock at time 0 with a 1 msec tick
func NewSim() *Sim {
	return &Sim{Tick: time.Millisecond}
}

func (cl *Sim) Now() time.Duration {
	return cl.T
}

func (cl *Sim) Sleep(d time.Duration) {
	tick := cl.Tick
	if tick <= 0 {
		tick = time.Millisecond
	}
	if d < tick {
		d = tick
	}
	cl.T += d
}

// Advance moves the simulated time forward by d
func (cl *Sim) Advance(d time.Duration) {
	cl.T += d
}

// Msec returns d in fractional milliseconds, the unit used in data files
func Msec(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
