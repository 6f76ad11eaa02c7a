// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package respond

import (
	"fmt"
	"sort"
	"time"

	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

// EventKinds are the kinds of input event
type EventKinds int32

//go:generate stringer -type=EventKinds

var KiT_EventKinds = kit.Enums.AddEnum(EventKindsN, kit.NotBitFlag, nil)

func (ev EventKinds) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *EventKinds) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// MouseDown is a pointer button press at Pos
	MouseDown EventKinds = iota

	// KeyDown is a key press, named by Key
	KeyDown

	// Quit is a request to abort the session
	Quit

	EventKindsN
)

// Event is one input event, time-stamped on the session clock
type Event struct {
	Kind EventKinds    `desc:"kind of event"`
	Pos  mat32.Vec2    `desc:"pointer position for MouseDown"`
	Key  string        `desc:"key name for KeyDown"`
	At   time.Duration `desc:"session clock time at which the event occurred"`
}

func (ev Event) String() string {
	switch ev.Kind {
	case MouseDown:
		return fmt.Sprintf("%v@%v (%g,%g)", ev.Kind, ev.At, ev.Pos.X, ev.Pos.Y)
	case KeyDown:
		return fmt.Sprintf("%v@%v %q", ev.Kind, ev.At, ev.Key)
	}
	return fmt.Sprintf("%v@%v", ev.Kind, ev.At)
}

// Input is a source of input events
type Input interface {
	// Poll returns all pending events that occurred at or before now,
	// in time order, removing them from the source.
	Poll(now time.Duration) []Event
}

// Scripted is an Input that replays a fixed list of events at their
// time stamps
type Scripted struct {
	Events []Event `desc:"pending events, sorted by time"`
}

// NewScripted returns a Scripted input holding evs
func NewScripted(evs ...Event) *Scripted {
	sc := &Scripted{}
	sc.Add(evs...)
	return sc
}

// Add schedules more events
func (sc *Scripted) Add(evs ...Event) {
	sc.Events = append(sc.Events, evs...)
	sort.SliceStable(sc.Events, func(i, j int) bool { return sc.Events[i].At < sc.Events[j].At })
}

// Pending returns the number of events not yet delivered
func (sc *Scripted) Pending() int {
	return len(sc.Events)
}

func (sc *Scripted) Poll(now time.Duration) []Event {
	n := 0
	for n < len(sc.Events) && sc.Events[n].At <= now {
		n++
	}
	if n == 0 {
		return nil
	}
	evs := append([]Event(nil), sc.Events[:n]...)
	sc.Events = sc.Events[n:]
	return evs
}

var _ Input = (*Scripted)(nil)
