// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package participant provides a simulated observer for running sessions
without a person at the screen.

A Model sits between the experiment and its display: it forwards every
draw call to an inner display and, at each Flip, looks at the frame that
was just shown.  When a search array or a stream target appears, it
schedules a response event after a sampled response time, which the
experiment then receives by polling the Model as its respond.Input.

Search time follows the classic feature / conjunction pattern: when the
target differs from every distractor by at least SimilarDeg the target
pops out and response time does not depend on the number of items,
otherwise it grows by SlopeMs per item, on average scanning half the
items before finding the target (or all of them before deciding absent).
*/
package participant

import (
	"math/rand"
	"time"

	"github.com/emer/vsearch/display"
	"github.com/emer/vsearch/evclock"
	"github.com/emer/vsearch/respond"
	"github.com/emer/vsearch/stim"
	"github.com/goki/mat32"
)

// Model is a simulated participant
type Model struct {
	Inner       display.Display `view:"-" desc:"display that draw calls are forwarded to, may be nil"`
	Clock       evclock.Clock   `view:"-" desc:"session clock, for time-stamping responses"`
	Rand        *rand.Rand      `view:"-" desc:"random source, nil = global"`
	BaseMs      float32         `def:"450" desc:"response time for a target that pops out"`
	SlopeMs     float32         `def:"25" desc:"additional time per item scanned when the target does not pop out"`
	StreamMs    float32         `def:"400" desc:"response time to a stream target"`
	SDMs        float32         `def:"60" desc:"standard deviation of response times"`
	MinMs       float32         `def:"150" desc:"shortest possible response time"`
	StreamEndMs float32         `def:"300" desc:"time without a new stream item after which the stream is taken to have ended"`
	SimilarDeg  float32         `def:"30" desc:"feature difference below which target and distractor are confusable"`
	HitProb     float32         `def:"0.9" desc:"probability of finding a target that is shown"`
	KeyResponse bool            `desc:"respond with keys instead of the pointer"`
	PresentKey  string          `def:"/" desc:"key reporting target present"`
	AbsentKey   string          `def:"z" desc:"key reporting target absent"`
	NTrials     int             `desc:"number of target previews seen"`
	NResponses  int             `desc:"number of responses scheduled"`
	geom        display.Geom
	cur         []display.Op
	events      respond.Scripted
	decided     bool
	streaming   bool
	lastItem    time.Duration
}

// New returns a Model with default parameters forwarding to inner
func New(inner display.Display, clk evclock.Clock, rnd *rand.Rand) *Model {
	md := &Model{Inner: inner, Clock: clk, Rand: rnd}
	md.Defaults()
	return md
}

func (md *Model) Defaults() {
	md.BaseMs = 450
	md.SlopeMs = 25
	md.StreamMs = 400
	md.SDMs = 60
	md.MinMs = 150
	md.StreamEndMs = 300
	md.SimilarDeg = 30
	md.HitProb = 0.9
	md.PresentKey = "/"
	md.AbsentKey = "z"
	md.geom.Defaults()
}

////////////////////////////////////////////////////////////////////
//  display.Display

func (md *Model) Geom() *display.Geom {
	if md.Inner != nil {
		return md.Inner.Geom()
	}
	return &md.geom
}

func (md *Model) Fill() {
	md.cur = md.cur[:0]
	if md.Inner != nil {
		md.Inner.Fill()
	}
}

func (md *Model) Blit(d display.Drawable, loc mat32.Vec2) {
	md.cur = append(md.cur, display.Op{Type: display.BlitOp, Item: d, Loc: loc})
	if md.Inner != nil {
		md.Inner.Blit(d, loc)
	}
}

func (md *Model) Message(msg string, loc mat32.Vec2) {
	md.cur = append(md.cur, display.Op{Type: display.MessageOp, Text: msg, Loc: loc})
	if md.Inner != nil {
		md.Inner.Message(msg, loc)
	}
}

func (md *Model) Flip() {
	if md.Inner != nil {
		md.Inner.Flip()
	}
	md.Observe(md.cur)
	md.cur = md.cur[:0]
}

func (md *Model) ShowCursor(show bool) {
	if md.Inner != nil {
		md.Inner.ShowCursor(show)
	}
}

func (md *Model) WarpCursor(pos mat32.Vec2) {
	if md.Inner != nil {
		md.Inner.WarpCursor(pos)
	}
}

////////////////////////////////////////////////////////////////////
//  respond.Input

// Poll returns the scheduled responses due by now.  With key responses,
// a stream that ends without a target seen is answered with the absent key.
func (md *Model) Poll(now time.Duration) []respond.Event {
	if md.KeyResponse && md.streaming && !md.decided && now-md.lastItem >= msec(md.StreamEndMs) {
		md.decided = true
		md.schedule(md.StreamMs, respond.Event{Kind: respond.KeyDown, Key: md.AbsentKey})
	}
	return md.events.Poll(now)
}

// Pending returns the number of scheduled responses not yet polled
func (md *Model) Pending() int {
	return md.events.Pending()
}

////////////////////////////////////////////////////////////////////
//  observer

// Observe reacts to a frame that has just been shown
func (md *Model) Observe(frame []display.Op) {
	var targ *display.Op
	var items []*stim.Item
	preview := false
	for i := range frame {
		op := &frame[i]
		switch op.Type {
		case display.MessageOp:
			preview = true
		case display.BlitOp:
			if it, ok := op.Item.(*stim.Item); ok {
				items = append(items, it)
				if it.Target {
					targ = op
				}
			}
		}
	}
	switch {
	case preview:
		md.NTrials++
		md.decided = false
		md.streaming = false
	case len(items) > 1:
		md.search(targ, items)
	case len(items) == 1:
		md.streaming = true
		md.lastItem = md.Clock.Now()
		if targ != nil {
			md.streamTarget()
		}
	}
}

// search schedules the response to a spatial array
func (md *Model) search(targ *display.Op, items []*stim.Item) {
	if md.decided {
		return
	}
	md.decided = true
	n := float32(len(items))
	popout := targ != nil && md.popsOut(items)
	if targ != nil && md.chance(md.HitProb) {
		rt := md.BaseMs
		if !popout {
			rt += md.SlopeMs * n / 2
		}
		if md.KeyResponse {
			md.schedule(rt, respond.Event{Kind: respond.KeyDown, Key: md.PresentKey})
		} else {
			md.schedule(rt, respond.Event{Kind: respond.MouseDown, Pos: targ.Loc})
		}
		return
	}
	if md.KeyResponse {
		md.schedule(md.BaseMs+md.SlopeMs*n, respond.Event{Kind: respond.KeyDown, Key: md.AbsentKey})
	}
}

// streamTarget schedules the response to a target shown in a stream
func (md *Model) streamTarget() {
	if md.KeyResponse && md.decided {
		return
	}
	if !md.chance(md.HitProb) {
		return
	}
	md.decided = true
	if md.KeyResponse {
		md.schedule(md.StreamMs, respond.Event{Kind: respond.KeyDown, Key: md.PresentKey})
	} else {
		md.schedule(md.StreamMs, respond.Event{Kind: respond.MouseDown, Pos: md.Geom().Center()})
	}
}

// popsOut is true if every distractor differs from the target by at
// least SimilarDeg
func (md *Model) popsOut(items []*stim.Item) bool {
	var tf float32
	for _, it := range items {
		if it.Target {
			tf = it.Feature()
		}
	}
	for _, it := range items {
		if it.Target {
			continue
		}
		if FeatureDist(it.Type, tf, it.Feature()) < md.SimilarDeg {
			return false
		}
	}
	return true
}

// FeatureDist returns the angular distance between two feature values:
// on the color wheel (period 360) or between line orientations (period 180)
func FeatureDist(typ stim.StimTypes, a, b float32) float32 {
	period := float32(360)
	if typ == stim.Line {
		period = 180
	}
	d := mat32.Mod(mat32.Abs(a-b), period)
	return mat32.Min(d, period-d)
}

func (md *Model) chance(p float32) bool {
	if md.Rand != nil {
		return md.Rand.Float32() < p
	}
	return rand.Float32() < p
}

func (md *Model) normal() float32 {
	if md.Rand != nil {
		return float32(md.Rand.NormFloat64())
	}
	return float32(rand.NormFloat64())
}

// schedule adds ev at the current time plus a response time sampled
// around meanMs
func (md *Model) schedule(meanMs float32, ev respond.Event) {
	rt := meanMs + md.SDMs*md.normal()
	if rt < md.MinMs {
		rt = md.MinMs
	}
	ev.At = md.Clock.Now() + msec(rt)
	md.events.Add(ev)
	md.NResponses++
}

func msec(ms float32) time.Duration {
	return time.Duration(float64(ms) * float64(time.Millisecond))
}

var (
	_ display.Display = (*Model)(nil)
	_ respond.Input   = (*Model)(nil)
)
