// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evclock

import "time"

// CountDown counts down a fixed duration from when it was last Reset
type CountDown struct {
	Clock    Clock         `desc:"source of time"`
	Duration time.Duration `desc:"duration to count down"`
	start    time.Duration
}

// NewCountDown returns a CountDown that starts counting now
func NewCountDown(clk Clock, d time.Duration) *CountDown {
	cd := &CountDown{Clock: clk, Duration: d}
	cd.Reset()
	return cd
}

// Reset restarts the countdown from the full Duration
func (cd *CountDown) Reset() {
	cd.start = cd.Clock.Now()
}

// Elapsed returns time since last Reset
func (cd *CountDown) Elapsed() time.Duration {
	return cd.Clock.Now() - cd.start
}

// Remaining returns time left, 0 when finished
func (cd *CountDown) Remaining() time.Duration {
	r := cd.Duration - cd.Elapsed()
	if r < 0 {
		return 0
	}
	return r
}

// Counting is true until Duration has elapsed since Reset
func (cd *CountDown) Counting() bool {
	return cd.Elapsed() < cd.Duration
}

// Wait polls until the countdown finishes, calling check between polls
func (cd *CountDown) Wait(poll time.Duration, check func() error) error {
	for cd.Counting() {
		if check != nil {
			if err := check(); err != nil {
				return err
			}
		}
		cd.Clock.Sleep(poll)
	}
	return nil
}
