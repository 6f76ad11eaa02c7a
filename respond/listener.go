// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package respond

import (
	"fmt"
	"time"

	"github.com/emer/vsearch/evclock"
	"github.com/emer/vsearch/layout"
	"github.com/goki/mat32"
)

// NA is the value logged for a missing measurement
const NA = "NA"

// Response is one accepted response
type Response struct {
	Value string        `desc:"what was responded: boundary name, key label, or click"`
	RT    time.Duration `desc:"response time from collection onset"`
	Pos   mat32.Vec2    `desc:"pointer position, for pointer responses"`
}

// RTMs returns the response time in msec
func (rs Response) RTMs() float64 {
	return evclock.Msec(rs.RT)
}

func (rs Response) String() string {
	return fmt.Sprintf("%s %.0fms", rs.Value, rs.RTMs())
}

// Listener accepts or ignores input events and accumulates responses
type Listener interface {
	// Handle offers an event with its response time, returning true
	// if it was accepted as a response
	Handle(ev Event, rt time.Duration) bool

	// Interrupt is true if the first accepted response ends collection
	Interrupt() bool

	// Done is true when no more responses will be accepted
	Done() bool

	// Responses returns all accepted responses in order
	Responses() []Response

	// Response returns the first accepted response, false if none
	Response() (Response, bool)

	// Reset clears accumulated responses
	Reset()
}

// Listen holds the response accumulation shared by all listeners
type Listen struct {
	Interrupts   bool `desc:"first response ends collection"`
	MaxResponses int  `desc:"maximum responses accepted, 0 = unlimited"`
	resps        []Response
}

func (ls *Listen) Interrupt() bool { return ls.Interrupts }

func (ls *Listen) Done() bool {
	return ls.MaxResponses > 0 && len(ls.resps) >= ls.MaxResponses
}

func (ls *Listen) Responses() []Response { return ls.resps }

func (ls *Listen) Response() (Response, bool) {
	if len(ls.resps) == 0 {
		return Response{}, false
	}
	return ls.resps[0], true
}

func (ls *Listen) Reset() { ls.resps = nil }

func (ls *Listen) record(rs Response) bool {
	if ls.Done() {
		return false
	}
	ls.resps = append(ls.resps, rs)
	return true
}

// Boundary is a named hit-test region
type Boundary struct {
	Name string      `desc:"value recorded when a click lands inside"`
	Rect layout.Rect `desc:"region in pixels"`
}

// CursorListener records pointer clicks that land inside one of its
// boundaries, as the boundary's name.  Clicks elsewhere are ignored.
type CursorListener struct {
	Listen
	bounds []Boundary
}

// AddBoundary adds a named region, checked in order of addition
func (cl *CursorListener) AddBoundary(name string, r layout.Rect) {
	cl.bounds = append(cl.bounds, Boundary{Name: name, Rect: r})
}

// ClearBoundaries removes all regions
func (cl *CursorListener) ClearBoundaries() {
	cl.bounds = nil
}

// Boundaries returns the current regions
func (cl *CursorListener) Boundaries() []Boundary {
	return cl.bounds
}

// Hit returns the name of the first boundary containing p
func (cl *CursorListener) Hit(p mat32.Vec2) (string, bool) {
	for _, b := range cl.bounds {
		if b.Rect.Contains(p) {
			return b.Name, true
		}
	}
	return "", false
}

func (cl *CursorListener) Handle(ev Event, rt time.Duration) bool {
	if ev.Kind != MouseDown {
		return false
	}
	nm, ok := cl.Hit(ev.Pos)
	if !ok {
		return false
	}
	return cl.record(Response{Value: nm, RT: rt, Pos: ev.Pos})
}

// ClickValue is recorded for pointer presses by a ButtonListener
const ClickValue = "click"

// ButtonListener records key presses found in KeyMap (as the mapped label)
// and, if Mouse is set, pointer presses anywhere (as "click").
type ButtonListener struct {
	Listen
	KeyMap map[string]string `desc:"key name -> recorded label"`
	Mouse  bool              `desc:"accept pointer presses"`
}

func (bl *ButtonListener) Handle(ev Event, rt time.Duration) bool {
	switch ev.Kind {
	case MouseDown:
		if !bl.Mouse {
			return false
		}
		return bl.record(Response{Value: ClickValue, RT: rt, Pos: ev.Pos})
	case KeyDown:
		lbl, ok := bl.KeyMap[ev.Key]
		if !ok {
			return false
		}
		return bl.record(Response{Value: lbl, RT: rt})
	}
	return false
}

var (
	_ Listener = (*CursorListener)(nil)
	_ Listener = (*ButtonListener)(nil)
)
