// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"testing"

	"github.com/goki/mat32"
)

const difTol = float32(1.0e-3)

func TestDegToPx(t *testing.T) {
	gm := Geom{}
	gm.Defaults()
	// at 57 cm, 1 degree is ~0.995 cm
	px := gm.DegToPx(1)
	want := float32(0.99486) * gm.PxPerCm()
	if mat32.Abs(px-want) > 0.01 {
		t.Errorf("DegToPx(1) = %g, want %g", px, want)
	}
	if gm.DegToPx(9) <= 8*gm.DegToPx(1) {
		t.Error("DegToPx should grow at least linearly for small angles")
	}
	c := gm.Center()
	if c.X != 960 || c.Y != 540 {
		t.Errorf("center %v", c)
	}
	bad := Geom{}
	if bad.Validate() == nil {
		t.Error("zero geometry should not validate")
	}
}

func TestRecorderFrames(t *testing.T) {
	rc := NewRecorder()
	fix := &FixationCross{Size: 10, Thickness: 2, Color: White}
	rc.Fill()
	rc.Message("hi", mat32.Vec2{})
	rc.Blit(fix, rc.Geom().Center())
	rc.Flip()
	rc.Fill()
	rc.Flip()
	if rc.NFlips != 2 || len(rc.Frames) != 2 {
		t.Fatalf("got %d flips, %d frames", rc.NFlips, len(rc.Frames))
	}
	got := Summary(Sequence(rc.Frames[0]))
	if got != "fill message:hi blit:fixation" {
		t.Errorf("frame 0: %q", got)
	}
	if len(Blits(rc.LastFrame())) != 0 {
		t.Error("blank frame has blits")
	}
	if len(rc.Ops) != 6 {
		t.Errorf("got %d ops, want 6", len(rc.Ops))
	}
}

func TestRecorderMaxFrames(t *testing.T) {
	rc := NewRecorder()
	rc.MaxFrames = 2
	ol := &Outline{Width: 5}
	for i := 0; i < 5; i++ {
		rc.Fill()
		rc.Blit(ol, mat32.Vec2{X: float32(i)})
		rc.Flip()
	}
	if len(rc.Frames) != 2 || rc.NFlips != 5 {
		t.Fatalf("frames %d flips %d", len(rc.Frames), rc.NFlips)
	}
	if rc.LastFrame()[1].Loc.X != 4 {
		t.Errorf("last frame blit at %v", rc.LastFrame()[1].Loc)
	}
	if len(rc.Ops) != 6 {
		t.Errorf("ops not trimmed: %d", len(rc.Ops))
	}
}

func TestSummary(t *testing.T) {
	seq := []string{"fill", "blit:d", "blit:d", "blit:d", "flip"}
	if s := Summary(seq); s != "fill blit:d x3 flip" {
		t.Errorf("Summary = %q", s)
	}
}
