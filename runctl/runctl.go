// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runctl controls a running experiment session from outside the
// session goroutine: stop (quit) requests, which abort the entire run, and
// pause / step requests honored at trial and block boundaries.
//
// The session calls Check on every pass of its polling loops, and
// StepPoint at each trial and block boundary.  Check never blocks; StepPoint
// blocks while the session is Paused, until Resume or Stop is requested.
package runctl

import (
	"errors"
	"sync"

	"github.com/goki/ki/kit"
)

// ErrQuit is returned from polling loops when a stop has been requested.
// It aborts the whole run, not just the current trial.
var ErrQuit = errors.New("runctl: quit requested")

type RunStates int32

const (
	// Created is the initial state
	Created RunStates = iota

	// Running sessions do not pause at step points
	Running

	// Stepping sessions pause after completing StepsPerPause units of StepGrain
	Stepping

	// Paused sessions are waiting at a step point for Resume or Stop
	Paused

	// Stopped sessions return ErrQuit from every check
	Stopped

	RunStatesN
)

var KiT_RunStates = kit.Enums.AddEnum(RunStatesN, kit.NotBitFlag, nil)

//go:generate stringer -type=RunStates

// Grains are the levels at which a session can be stepped
type Grains int32

const (
	Trial Grains = iota
	Block
	GrainsN
)

// PauseNotifier is called (on the session goroutine) when the session pauses
type PauseNotifier func(grain Grains)

// Control holds the requested and current run state.  It is safe for use
// from multiple goroutines.
type Control struct {
	mu             sync.Mutex
	changed        *sync.Cond
	cur            RunStates
	req            RunStates
	StepGrain      Grains `desc:"granularity at which Stepping pauses"`
	StepsPerPause  int    `desc:"number of StepGrain units to complete before pausing"`
	stepsRemaining int
	Notifier       PauseNotifier `view:"-" desc:"called when the session pauses"`
}

// New returns a Control in the Created state
func New() *Control {
	ct := &Control{StepsPerPause: 1}
	ct.changed = sync.NewCond(&ct.mu)
	return ct
}

// State returns the current and requested states
func (ct *Control) State() (cur, req RunStates) {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return ct.cur, ct.req
}

func (ct *Control) enter(st RunStates) {
	ct.mu.Lock()
	ct.cur = st
	ct.req = st
	ct.mu.Unlock()
	ct.changed.Broadcast()
}

func (ct *Control) request(st RunStates) {
	ct.mu.Lock()
	ct.req = st
	ct.mu.Unlock()
	ct.changed.Broadcast()
}

// Start enters the Running state
func (ct *Control) Start() {
	ct.enter(Running)
}

// StartStepping enters the Stepping state, pausing after n units of grain
func (ct *Control) StartStepping(grain Grains, n int) {
	ct.mu.Lock()
	ct.StepGrain = grain
	if n > 0 {
		ct.StepsPerPause = n
	}
	ct.stepsRemaining = ct.StepsPerPause
	ct.mu.Unlock()
	ct.enter(Stepping)
}

// Stop requests that the session quit.  It does not wait.
// Safe to call on a nil Control.
func (ct *Control) Stop() {
	if ct == nil {
		return
	}
	ct.request(Stopped)
}

// Pause requests a pause at the next step point
func (ct *Control) Pause() {
	ct.request(Paused)
}

// Resume requests that a paused session continue Running
func (ct *Control) Resume() {
	ct.request(Running)
}

// StopRequested reports whether a stop has been requested
func (ct *Control) StopRequested() bool {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return ct.req == Stopped || ct.cur == Stopped
}

// Check returns ErrQuit if a stop has been requested, without blocking.
// Called from every polling loop.
func (ct *Control) Check() error {
	if ct == nil {
		return nil
	}
	if ct.StopRequested() {
		ct.enter(Stopped)
		return ErrQuit
	}
	return nil
}

// StepPoint is called at the end of each unit of given grain.  It returns
// ErrQuit if stopped, and blocks while paused.
func (ct *Control) StepPoint(grain Grains) error {
	if ct == nil {
		return nil
	}
	if err := ct.Check(); err != nil {
		return err
	}
	ct.mu.Lock()
	if ct.cur == Stepping && ct.req == Stepping && grain == ct.StepGrain {
		ct.stepsRemaining--
		if ct.stepsRemaining <= 0 {
			ct.stepsRemaining = ct.StepsPerPause
			ct.req = Paused
		}
	}
	pausing := ct.req == Paused
	ct.mu.Unlock()
	if !pausing {
		return nil
	}
	ct.enter(Paused)
	if ct.Notifier != nil {
		ct.Notifier(grain)
	}
	ct.mu.Lock()
	defer ct.mu.Unlock()
	for {
		switch ct.req {
		case Stopped:
			ct.cur = Stopped
			return ErrQuit
		case Running, Stepping:
			ct.cur = ct.req
			return nil
		default:
			ct.changed.Wait()
		}
	}
}

// WaitUntil blocks until the current state is st or Stopped, returning the state
func (ct *Control) WaitUntil(st RunStates) RunStates {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	for {
		if ct.cur == st || ct.cur == Stopped {
			return ct.cur
		}
		ct.changed.Wait()
	}
}
