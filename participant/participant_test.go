// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package participant

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/emer/vsearch/display"
	"github.com/emer/vsearch/evclock"
	"github.com/emer/vsearch/expt"
	"github.com/emer/vsearch/respond"
	"github.com/emer/vsearch/results"
	"github.com/emer/vsearch/runctl"
	"github.com/emer/vsearch/stim"
	"github.com/goki/mat32"
)

const difTol = 1.0e-4

func exactModel(clk evclock.Clock) *Model {
	md := New(display.NewRecorder(), clk, rand.New(rand.NewSource(1)))
	md.SDMs = 0
	md.HitProb = 1
	return md
}

func lineArray(md *Model, targTilt, distTilt float32, ndist int) mat32.Vec2 {
	tloc := mat32.Vec2{X: 100, Y: 200}
	md.Fill()
	md.Blit(&stim.Item{Type: stim.Line, Target: true, Tilt: targTilt}, tloc)
	md.Blit(&display.FixationCross{}, md.Geom().Center())
	for i := 0; i < ndist; i++ {
		md.Blit(&stim.Item{Type: stim.Line, Tilt: distTilt}, mat32.Vec2{X: float32(10 * i), Y: 10})
	}
	md.Flip()
	return tloc
}

func TestFeatureDist(t *testing.T) {
	cases := []struct {
		typ  stim.StimTypes
		a, b float32
		want float32
	}{
		{stim.Line, 45, 135, 90},
		{stim.Line, 45, 150, 75},
		{stim.Line, 10, 170, 20},
		{stim.Color, 0, 150, 150},
		{stim.Color, 0, 340, 20},
		{stim.Color, 20, 20, 0},
	}
	for _, c := range cases {
		d := FeatureDist(c.typ, c.a, c.b)
		if mat32.Abs(d-c.want) > difTol {
			t.Errorf("FeatureDist(%v, %g, %g) = %g, want %g", c.typ, c.a, c.b, d, c.want)
		}
	}
}

func TestPopOutClick(t *testing.T) {
	clk := evclock.NewSim()
	md := exactModel(clk)
	clk.Advance(2 * time.Second)
	tloc := lineArray(md, 45, 135, 3)
	if md.Pending() != 1 {
		t.Fatalf("pending %d, want 1", md.Pending())
	}
	if evs := md.Poll(2449 * time.Millisecond); len(evs) != 0 {
		t.Errorf("response delivered early: %v", evs)
	}
	evs := md.Poll(2450 * time.Millisecond)
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	if evs[0].Kind != respond.MouseDown || evs[0].Pos != tloc {
		t.Errorf("event %v, want click at %v", evs[0], tloc)
	}
	// a second flip of the same array is not a new decision
	lineArray(md, 45, 135, 3)
	if md.Pending() != 0 {
		t.Errorf("repeated array scheduled %d more responses", md.Pending())
	}
}

func TestConjunctionSlope(t *testing.T) {
	clk := evclock.NewSim()
	md := exactModel(clk)
	md.Fill()
	md.Message("This is your target!", md.Geom().Center())
	md.Flip()
	if md.NTrials != 1 {
		t.Errorf("NTrials %d, want 1", md.NTrials)
	}
	lineArray(md, 45, 50, 7)
	evs := md.Poll(time.Hour)
	if len(evs) != 1 {
		t.Fatalf("got %d events, want 1", len(evs))
	}
	want := time.Duration((450 + 25*8/2) * float64(time.Millisecond))
	if evs[0].At != want {
		t.Errorf("rt %v, want %v", evs[0].At, want)
	}
}

func TestKeyAbsent(t *testing.T) {
	clk := evclock.NewSim()
	md := exactModel(clk)
	md.KeyResponse = true
	md.Fill()
	for i := 0; i < 4; i++ {
		md.Blit(&stim.Item{Type: stim.Color, Hue: 150}, mat32.Vec2{X: float32(i)})
	}
	md.Flip()
	evs := md.Poll(time.Hour)
	if len(evs) != 1 || evs[0].Key != "z" {
		t.Fatalf("got %v, want absent key", evs)
	}
	if evs[0].At != 550*time.Millisecond {
		t.Errorf("rt %v, want 550ms", evs[0].At)
	}
}

func TestStreamTarget(t *testing.T) {
	clk := evclock.NewSim()
	md := exactModel(clk)
	md.Fill()
	md.Blit(&stim.Item{Type: stim.Line, Tilt: 135}, md.Geom().Center())
	md.Flip()
	if md.Pending() != 0 {
		t.Errorf("distractor triggered a response")
	}
	clk.Advance(150 * time.Millisecond)
	md.Fill()
	md.Blit(&stim.Item{Type: stim.Line, Target: true, Tilt: 45}, md.Geom().Center())
	md.Flip()
	evs := md.Poll(time.Hour)
	if len(evs) != 1 || evs[0].At != 550*time.Millisecond {
		t.Fatalf("got %v, want one click at 550ms", evs)
	}
}

func TestStreamEndAbsent(t *testing.T) {
	clk := evclock.NewSim()
	md := exactModel(clk)
	md.KeyResponse = true
	for i := 0; i < 3; i++ {
		md.Fill()
		md.Blit(&stim.Item{Type: stim.Line, Tilt: 135}, md.Geom().Center())
		md.Flip()
		clk.Advance(150 * time.Millisecond)
	}
	// last item shown at 300ms
	if evs := md.Poll(599 * time.Millisecond); len(evs) != 0 {
		t.Fatalf("responded before the stream ended: %v", evs)
	}
	clk.Advance(450 * time.Millisecond)
	if evs := md.Poll(clk.Now()); len(evs) != 0 {
		t.Fatalf("absent key delivered without a response time: %v", evs)
	}
	evs := md.Poll(time.Hour)
	if len(evs) != 1 || evs[0].Key != "z" || evs[0].At != 1300*time.Millisecond {
		t.Fatalf("got %v, want absent key at 1300ms", evs)
	}
	if evs := md.Poll(2 * time.Hour); len(evs) != 0 {
		t.Errorf("absent key repeated: %v", evs)
	}
}

func TestStreamTargetNoAbsent(t *testing.T) {
	clk := evclock.NewSim()
	md := exactModel(clk)
	md.KeyResponse = true
	md.Fill()
	md.Blit(&stim.Item{Type: stim.Line, Target: true, Tilt: 45}, md.Geom().Center())
	md.Flip()
	evs := md.Poll(time.Hour)
	if len(evs) != 1 || evs[0].Key != "/" {
		t.Fatalf("got %v, want the present key only", evs)
	}
}

func TestMinRT(t *testing.T) {
	clk := evclock.NewSim()
	md := exactModel(clk)
	md.StreamMs = 50
	md.Fill()
	md.Blit(&stim.Item{Type: stim.Line, Target: true}, md.Geom().Center())
	md.Flip()
	evs := md.Poll(time.Hour)
	if len(evs) != 1 || evs[0].At != 150*time.Millisecond {
		t.Errorf("got %v, want rt clamped to 150ms", evs)
	}
}

// trialSink keeps the records of a session
type trialSink struct {
	trials []*results.TrialRecord
	resps  [][]respond.Response
}

func (ts *trialSink) LogTrial(tr *results.TrialRecord) error {
	rec := *tr
	ts.trials = append(ts.trials, &rec)
	return nil
}

func (ts *trialSink) LogResponses(block, trial int, rs []respond.Response) error {
	ts.resps = append(ts.resps, append([]respond.Response(nil), rs...))
	return nil
}

func runSession(t *testing.T, cfg *expt.Config) *trialSink {
	clk := evclock.NewSim()
	md := exactModel(clk)
	md.KeyResponse = cfg.KeyResponse
	sink := &trialSink{}
	ctl := runctl.New()
	ctl.Start()
	ex, err := expt.New(cfg, md, clk, md, sink, ctl)
	if err != nil {
		t.Fatal(err)
	}
	if err := ex.Run(); err != nil {
		t.Fatal(err)
	}
	return sink
}

func TestSessionSpatial(t *testing.T) {
	cfg := &expt.Config{}
	cfg.Defaults()
	expt.SetParams(cfg, "Base", false)
	cfg.StartSearch = expt.Spatial
	cfg.TrialsPerBlock = 3
	cfg.Seed = 3
	sink := runSession(t, cfg)
	if len(sink.trials) != 3 {
		t.Fatalf("logged %d trials, want 3", len(sink.trials))
	}
	for i, tr := range sink.trials {
		if tr.SpatialResponse != expt.TargetBoundary {
			t.Errorf("trial %d: response %q, want %q", i, tr.SpatialResponse, expt.TargetBoundary)
		}
		if math.Abs(tr.SpatialRTMs-450) > difTol {
			t.Errorf("trial %d: rt %g, want 450", i, tr.SpatialRTMs)
		}
	}
}

func TestSessionTemporal(t *testing.T) {
	cfg := &expt.Config{}
	cfg.Defaults()
	expt.SetParams(cfg, "Base", false)
	cfg.StartSearch = expt.Temporal
	cfg.TrialsPerBlock = 1
	cfg.Seed = 5
	sink := runSession(t, cfg)
	if len(sink.trials) != 1 {
		t.Fatalf("logged %d trials, want 1", len(sink.trials))
	}
	tr := sink.trials[0]
	if tr.TemporalResponse != respond.ClickValue {
		t.Errorf("response %q, want %q", tr.TemporalResponse, respond.ClickValue)
	}
	if len(sink.resps) != 1 || len(sink.resps[0]) != cfg.TargetReps {
		t.Fatalf("responses %v, want one per target", sink.resps)
	}
	for i, rs := range sink.resps[0] {
		on := tr.Onsets[i].OnsetMs
		if math.Abs(rs.RTMs()-on-400) > 1 {
			t.Errorf("response %d at %gms, target onset %gms", i, rs.RTMs(), on)
		}
	}
}

func TestSessionPresentAbsent(t *testing.T) {
	cfg := &expt.Config{}
	cfg.Defaults()
	if err := expt.SetParams(cfg, "PresentAbsent", false); err != nil {
		t.Fatal(err)
	}
	cfg.StartSearch = expt.Temporal
	cfg.TrialsPerBlock = 4
	cfg.Seed = 7
	sink := runSession(t, cfg)
	if len(sink.trials) != 4 {
		t.Fatalf("logged %d trials, want 4", len(sink.trials))
	}
	npres := 0
	for i, tr := range sink.trials {
		if tr.PresentAbsent == "present" {
			npres++
		}
		if tr.TemporalResponse != tr.PresentAbsent {
			t.Errorf("trial %d: response %q on a %s trial", i, tr.TemporalResponse, tr.PresentAbsent)
		}
		if tr.Correct != 1 {
			t.Errorf("trial %d (%s): correct %d, want 1", i, tr.PresentAbsent, tr.Correct)
		}
	}
	if npres != 2 {
		t.Errorf("%d present trials of 4, want 2", npres)
	}
}
