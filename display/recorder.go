// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"fmt"
	"strings"

	"github.com/goki/mat32"
)

// OpTypes are the kinds of display operation kept by the Recorder
type OpTypes int

const (
	FillOp OpTypes = iota
	BlitOp
	MessageOp
	FlipOp
	CursorOp
	WarpOp
)

var opNames = [...]string{"fill", "blit", "message", "flip", "cursor", "warp"}

func (ot OpTypes) String() string {
	if ot < 0 || int(ot) >= len(opNames) {
		return fmt.Sprintf("OpTypes(%d)", int(ot))
	}
	return opNames[ot]
}

// Op is one recorded display operation
type Op struct {
	Type OpTypes
	Item Drawable
	Text string
	Loc  mat32.Vec2
	Show bool
}

// String returns e.g., "blit:target" or "flip"
func (op *Op) String() string {
	switch op.Type {
	case BlitOp:
		return "blit:" + op.Item.Label()
	case MessageOp:
		return "message:" + op.Text
	}
	return op.Type.String()
}

// Recorder is a headless Display that records every operation and keeps
// the operations between successive flips as frames.
type Recorder struct {
	Geometry    Geom       `desc:"screen geometry"`
	MaxFrames   int        `desc:"if > 0, only the most recent MaxFrames frames and their ops are kept"`
	Ops         []Op       `desc:"all recorded ops since last Reset (trimmed along with frames when MaxFrames > 0)"`
	Frames      [][]Op     `desc:"ops of each presented frame, not including the Flip"`
	NFlips      int        `desc:"total number of flips since last Reset"`
	CursorShown bool       `desc:"current cursor visibility"`
	Cursor      mat32.Vec2 `desc:"current cursor position"`
	cur         []Op
}

// NewRecorder returns a Recorder with default geometry
func NewRecorder() *Recorder {
	rc := &Recorder{}
	rc.Geometry.Defaults()
	return rc
}

func (rc *Recorder) Geom() *Geom { return &rc.Geometry }

func (rc *Recorder) add(op Op) {
	rc.Ops = append(rc.Ops, op)
	if op.Type != FlipOp {
		rc.cur = append(rc.cur, op)
	}
}

func (rc *Recorder) Fill() {
	rc.add(Op{Type: FillOp})
}

func (rc *Recorder) Blit(d Drawable, loc mat32.Vec2) {
	rc.add(Op{Type: BlitOp, Item: d, Loc: loc})
}

func (rc *Recorder) Message(msg string, loc mat32.Vec2) {
	rc.add(Op{Type: MessageOp, Text: msg, Loc: loc})
}

func (rc *Recorder) Flip() {
	rc.add(Op{Type: FlipOp})
	rc.Frames = append(rc.Frames, rc.cur)
	rc.cur = nil
	rc.NFlips++
	if rc.MaxFrames > 0 && len(rc.Frames) > rc.MaxFrames {
		drop := len(rc.Frames) - rc.MaxFrames
		nops := 0
		for _, fr := range rc.Frames[:drop] {
			nops += len(fr) + 1
		}
		rc.Frames = append([][]Op(nil), rc.Frames[drop:]...)
		if nops <= len(rc.Ops) {
			rc.Ops = append([]Op(nil), rc.Ops[nops:]...)
		}
	}
}

func (rc *Recorder) ShowCursor(show bool) {
	rc.CursorShown = show
	rc.add(Op{Type: CursorOp, Show: show})
}

func (rc *Recorder) WarpCursor(pos mat32.Vec2) {
	rc.Cursor = pos
	rc.add(Op{Type: WarpOp, Loc: pos})
}

// Reset clears all recorded state
func (rc *Recorder) Reset() {
	rc.Ops = nil
	rc.Frames = nil
	rc.cur = nil
	rc.NFlips = 0
}

// LastFrame returns the ops of the most recently flipped frame
func (rc *Recorder) LastFrame() []Op {
	if len(rc.Frames) == 0 {
		return nil
	}
	return rc.Frames[len(rc.Frames)-1]
}

// Blits returns the blit ops in given frame
func Blits(frame []Op) []Op {
	var bl []Op
	for _, op := range frame {
		if op.Type == BlitOp {
			bl = append(bl, op)
		}
	}
	return bl
}

// Sequence returns the ops as strings, e.g., for comparing to an expected
// draw order.  Runs of identical blits are kept as separate entries.
func Sequence(ops []Op) []string {
	seq := make([]string, len(ops))
	for i := range ops {
		seq[i] = ops[i].String()
	}
	return seq
}

// Summary collapses runs of identical entries in a sequence into "x N" form,
// e.g., "blit:distractor x63"
func Summary(seq []string) string {
	var b strings.Builder
	for i := 0; i < len(seq); {
		j := i + 1
		for j < len(seq) && seq[j] == seq[i] {
			j++
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		if j-i > 1 {
			fmt.Fprintf(&b, "%s x%d", seq[i], j-i)
		} else {
			b.WriteString(seq[i])
		}
		i = j
	}
	return b.String()
}
