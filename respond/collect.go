// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package respond

import (
	"errors"
	"fmt"
	"time"

	"github.com/emer/vsearch/evclock"
	"github.com/emer/vsearch/runctl"
	"github.com/emer/vsearch/stream"
	"github.com/goki/ki/kit"
)

// Status is how a collection ended
type Status int32

//go:generate stringer -type=Status

var KiT_Status = kit.Enums.AddEnum(StatusN, kit.NotBitFlag, nil)

func (ev Status) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Status) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Responded means at least one response was accepted
	Responded Status = iota

	// TimedOut means TerminateAfter elapsed with no response
	TimedOut

	// StreamExhausted means the display callback ran out of items and the
	// post-stream window closed with no response
	StreamExhausted

	StatusN
)

// Outcome is the result of one Collect
type Outcome struct {
	Status    Status        `desc:"how collection ended"`
	Responses []Response    `desc:"accepted responses, in order"`
	Duration  time.Duration `desc:"time from collection onset to end"`
}

// Collector polls an Input, feeding events to a Listener, until the
// listener is satisfied, the time limit passes, or the display callback
// reports the end of its stream.
type Collector struct {
	Clock           evclock.Clock   `desc:"session clock"`
	Input           Input           `desc:"event source"`
	Control         *runctl.Control `desc:"run control checked on every pass, may be nil"`
	Listener        Listener        `desc:"listener receiving the events"`
	TerminateAfter  time.Duration   `desc:"collection time limit, 0 = none"`
	PostExhaust     time.Duration   `desc:"time to keep listening after the display callback is exhausted"`
	PollInterval    time.Duration   `desc:"sleep between polls"`
	DisplayCallback func() error    `view:"-" desc:"called on each pass to advance the display; returning stream.ErrExhausted stops the calls"`
}

// Collect runs one collection.  Events that arrived before collection
// onset are discarded.  A Quit event stops Control and returns
// runctl.ErrQuit, as does a stop request on Control.
func (rc *Collector) Collect() (Outcome, error) {
	if rc.Clock == nil || rc.Listener == nil {
		return Outcome{}, errors.New("respond.Collector: Clock and Listener must be set")
	}
	start := rc.Clock.Now()
	if rc.Input != nil {
		rc.Input.Poll(start)
	}
	exhausted := false
	var exhaustAt time.Duration
	done := func(st Status) (Outcome, error) {
		oc := Outcome{Status: st, Responses: rc.Listener.Responses(), Duration: rc.Clock.Now() - start}
		if len(oc.Responses) > 0 {
			oc.Status = Responded
		}
		return oc, nil
	}
	for {
		if err := rc.Control.Check(); err != nil {
			return Outcome{}, err
		}
		now := rc.Clock.Now()
		if rc.Input != nil {
			for _, ev := range rc.Input.Poll(now) {
				if ev.Kind == Quit {
					rc.Control.Stop()
					return Outcome{}, runctl.ErrQuit
				}
				rt := ev.At - start
				if rt < 0 {
					rt = now - start
				}
				if rc.Listener.Handle(ev, rt) && (rc.Listener.Interrupt() || rc.Listener.Done()) {
					return done(Responded)
				}
			}
		}
		if rc.TerminateAfter > 0 && now-start >= rc.TerminateAfter {
			return done(TimedOut)
		}
		if exhausted {
			if now-exhaustAt >= rc.PostExhaust {
				return done(StreamExhausted)
			}
			rc.Clock.Sleep(rc.PollInterval)
			continue
		}
		if rc.DisplayCallback == nil {
			rc.Clock.Sleep(rc.PollInterval)
			continue
		}
		err := rc.DisplayCallback()
		switch {
		case err == nil:
		case errors.Is(err, stream.ErrExhausted):
			exhausted = true
			exhaustAt = rc.Clock.Now()
		default:
			return Outcome{}, fmt.Errorf("respond.Collect: display callback: %w", err)
		}
	}
}
