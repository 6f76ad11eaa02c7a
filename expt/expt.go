// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expt

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/emer/vsearch/display"
	"github.com/emer/vsearch/evclock"
	"github.com/emer/vsearch/layout"
	"github.com/emer/vsearch/respond"
	"github.com/emer/vsearch/results"
	"github.com/emer/vsearch/runctl"
	"github.com/emer/vsearch/stim"
	"github.com/emer/vsearch/stream"
	"github.com/goki/mat32"
)

// Timeline ticket labels, in order
const (
	TkTarget   = "present_target"
	TkFixation = "present_fixation"
	TkOnset    = "search_onset"
)

// PreviewMsg is shown above the target during the preview
const PreviewMsg = "This is your target!"

// TargetBoundary is the name of the target hit region
const TargetBoundary = "target"

// Miss is the spatial response recorded when nothing was found in time
const Miss = "miss"

// Expt runs the trials of a session: for each trial it shows the target,
// a fixation cross, and then either a spatial array or a temporal stream
// while collecting responses, and logs the result to the Sink.
type Expt struct {
	Config   Config                 `desc:"session parameters"`
	Display  display.Display        `view:"-" desc:"rendering sink"`
	Clock    evclock.Clock          `view:"-" desc:"session clock"`
	Input    respond.Input          `view:"-" desc:"input event source"`
	Ctl      *runctl.Control        `view:"-" desc:"run control"`
	Sink     results.Sink           `view:"-" desc:"where results go"`
	Env      DesignEnv              `desc:"trial design"`
	Factory  stim.Factory           `desc:"stimulus factory"`
	Rand     *rand.Rand             `view:"-" desc:"random source, nil if Config.Seed is 0"`
	Layout   layout.Generator       `view:"-" desc:"spatial array generator"`
	Fixation display.FixationCross  `desc:"fixation cross"`
	Bounds   display.Outline        `desc:"target boundary outline"`
	Cursor   respond.CursorListener `desc:"pointer listener for spatial search"`
	Buttons  respond.ButtonListener `desc:"button / key listener"`
	Timeline *evclock.Timeline      `view:"-" desc:"deadlines of the current trial"`

	// per-trial state
	Cur      TrialConfig           `desc:"current trial"`
	Set      *stim.Set             `desc:"current stimulus set"`
	Array    *layout.Array         `desc:"current spatial array"`
	Stream   *stream.Stream        `desc:"current temporal stream"`
	Onsets   []results.TargetOnset `desc:"target presentations in the current stream"`
	Record   results.TrialRecord   `desc:"record of the last trial"`
	setKey   string
	queue    *stream.Queue
	streamOn bool
	streamT0 time.Duration
	targetOn float64
}

// New returns an Expt for cfg drawing to disp and reading input from in.
// Ctl may be nil.
func New(cfg *Config, disp display.Display, clk evclock.Clock, in respond.Input, sink results.Sink, ctl *runctl.Control) (*Expt, error) {
	ex := &Expt{Config: *cfg, Display: disp, Clock: clk, Input: in, Sink: sink, Ctl: ctl}
	if err := ex.Init(); err != nil {
		return nil, err
	}
	return ex, nil
}

// Init validates the config and sets up all derived state
func (ex *Expt) Init() error {
	cfg := &ex.Config
	if err := cfg.Validate(); err != nil {
		return err
	}
	if ex.Display == nil || ex.Clock == nil {
		return errors.New("expt.Init: Display and Clock must be set")
	}
	if cfg.Seed != 0 {
		ex.Rand = rand.New(rand.NewSource(cfg.Seed))
	} else {
		ex.Rand = nil
	}
	gm := ex.Display.Geom()
	itemPx := gm.DegToPx(cfg.ItemSizeDeg)
	thickPx := gm.DegToPx(cfg.ItemThickDeg)

	ex.Factory.Defaults()
	ex.Factory.ItemSize = itemPx
	ex.Factory.Thickness = thickPx
	ex.Fixation = display.FixationCross{Size: gm.DegToPx(cfg.FixSizeDeg), Thickness: gm.DegToPx(cfg.FixThickDeg), Color: display.White}
	ex.Bounds = display.Outline{Width: itemPx, Stroke: thickPx, Color: display.White}
	if cfg.GridLayout {
		ex.Layout = &layout.Grid{Center: gm.Center(), Spacing: gm.DegToPx(cfg.GridSpacingDeg), ItemSize: itemPx}
	} else {
		ex.Layout = &layout.Ring{Center: gm.Center(), Radius: gm.DegToPx(cfg.ArrayRadiusDeg), ItemSize: itemPx}
	}

	ex.Cursor = respond.CursorListener{}
	ex.Cursor.Interrupts = true
	ex.Buttons = respond.ButtonListener{}
	if cfg.KeyResponse {
		ex.Buttons.KeyMap = map[string]string{cfg.PresentKey: Present.Label(), cfg.AbsentKey: Absent.Label()}
		ex.Buttons.Interrupts = true
		ex.Buttons.MaxResponses = 1
	} else {
		ex.Buttons.Mouse = true
		ex.Buttons.MaxResponses = 999
	}

	ex.Env.Rand = ex.Rand
	ex.Env.Config(cfg)
	if err := ex.Env.Validate(); err != nil {
		return err
	}
	ex.Env.Init(0)
	ex.setKey = ""
	return nil
}

func (ex *Expt) poll() time.Duration {
	return Msec(ex.Config.PollMs)
}

func (ex *Expt) check() error {
	return ex.Ctl.Check()
}

// Run runs all remaining trials of the session.  It returns
// runctl.ErrQuit if the session was stopped.
func (ex *Expt) Run() error {
	for ex.Env.Step() {
		if _, err := ex.RunTrial(ex.Env.Cur); err != nil {
			return err
		}
		if err := ex.Ctl.StepPoint(runctl.Trial); err != nil {
			return err
		}
		if ex.Env.LastInBlock() {
			if err := ex.Ctl.StepPoint(runctl.Block); err != nil {
				return err
			}
		}
	}
	return nil
}

// RunTrial runs all phases of one trial and logs it
func (ex *Expt) RunTrial(tc TrialConfig) (*results.TrialRecord, error) {
	if err := ex.TrialPrep(tc); err != nil {
		return nil, err
	}
	if err := ex.Timeline.WaitFor(TkFixation, ex.poll(), ex.check); err != nil {
		return nil, err
	}
	ex.PresentFixation()
	if err := ex.Timeline.WaitFor(TkOnset, ex.poll(), ex.check); err != nil {
		return nil, err
	}
	var err error
	if tc.SearchType == Spatial {
		err = ex.SpatialSearch()
	} else {
		err = ex.TemporalSearch()
	}
	if err != nil {
		return nil, err
	}
	if err := ex.TrialCleanUp(); err != nil {
		return nil, err
	}
	return &ex.Record, nil
}

// TrialPrep creates the stimuli for tc if they changed, builds the array
// or stream, registers the trial deadlines, and shows the target preview.
func (ex *Expt) TrialPrep(tc TrialConfig) error {
	if err := tc.Validate(); err != nil {
		return err
	}
	ex.Cur = tc
	if key := fmt.Sprintf("%d_%s", tc.Block, tc.StimKey()); key != ex.setKey || ex.Set == nil {
		set, err := ex.Factory.Create(tc.StimType, tc.TD, tc.DD, ex.Rand)
		if err != nil {
			return err
		}
		ex.Set = set
		ex.setKey = key
	}
	cfg := &ex.Config
	present := tc.Presence == Present
	var err error
	if tc.SearchType == Spatial {
		ex.Array, err = ex.Layout.Generate(tc.CellCount, present, ex.Rand)
		if err != nil {
			return err
		}
		if ex.Array.HasTarget {
			ex.Cursor.AddBoundary(TargetBoundary, ex.Array.Bounds)
		}
	} else {
		if cfg.Windowed {
			ex.Stream, err = stream.BuildWindowed(ex.Set, tc.SetSize, cfg.Pad, present, ex.Rand)
		} else {
			ex.Stream, err = stream.BuildRepeated(ex.Set, cfg.TargetReps, cfg.RunMin, cfg.RunMax, ex.Rand)
		}
		if err != nil {
			return err
		}
		ex.queue = ex.Stream.Queue()
	}

	ex.Timeline = evclock.NewTimeline(ex.Clock)
	evs := []evclock.Ticket{
		{Label: TkTarget, Onset: 0},
		{Label: TkFixation, Onset: Msec(cfg.PreviewMs)},
		{Label: TkOnset, Onset: Msec(cfg.SearchOnsetMs())},
	}
	for _, tk := range evs {
		if err := ex.Timeline.Register(tk.Label, tk.Onset); err != nil {
			return err
		}
	}
	ex.Timeline.Start()
	ex.Display.ShowCursor(false)
	ex.PresentTarget()
	return nil
}

func (ex *Expt) center() mat32.Vec2 {
	return ex.Display.Geom().Center()
}

// PresentTarget shows the preview message with the target at center
func (ex *Expt) PresentTarget() {
	ctr := ex.center()
	msgLoc := mat32.Vec2{X: ctr.X, Y: ctr.Y - ex.Display.Geom().DegToPx(ex.Config.MsgOffsetDeg)}
	ex.Display.Fill()
	ex.Display.Message(PreviewMsg, msgLoc)
	ex.Display.Blit(ex.Set.Target, ctr)
	ex.Display.Flip()
}

// PresentFixation shows the fixation cross
func (ex *Expt) PresentFixation() {
	ex.Display.Fill()
	ex.Display.Blit(&ex.Fixation, ex.center())
	ex.Display.Flip()
}

// PresentArray draws the spatial array: target and its boundary, then
// fixation, then distractors, and shows the pointer at center
func (ex *Expt) PresentArray() {
	ar := ex.Array
	ex.Display.Fill()
	if ar.HasTarget {
		ex.Display.Blit(ex.Set.Target, ar.Target)
		if ex.Config.ShowBoundary {
			ex.Display.Blit(&ex.Bounds, ar.Target)
		}
	}
	ex.Display.Blit(&ex.Fixation, ex.center())
	for _, loc := range ar.Locs {
		ex.Display.Blit(ex.Set.Random(ex.Rand), loc)
	}
	ex.Display.Flip()
	ex.Display.ShowCursor(true)
	ex.Display.WarpCursor(ex.center())
}

func (ex *Expt) listener(searchType SearchTypes) respond.Listener {
	if ex.Config.KeyResponse || searchType == Temporal {
		return &ex.Buttons
	}
	return &ex.Cursor
}

// SpatialSearch shows the array and collects the response
func (ex *Expt) SpatialSearch() error {
	ex.PresentArray()
	rc := &respond.Collector{
		Clock:          ex.Clock,
		Input:          ex.Input,
		Control:        ex.Ctl,
		Listener:       ex.listener(Spatial),
		TerminateAfter: Msec(ex.Config.SpatialTimeoutMs),
		PollInterval:   ex.poll(),
	}
	oc, err := rc.Collect()
	if err != nil {
		return err
	}
	tr := ex.newRecord()
	tr.SpatialResponse = Miss
	tr.SpatialRTMs = -1
	if rs, ok := rc.Listener.Response(); ok && oc.Status == respond.Responded {
		tr.SpatialResponse = rs.Value
		tr.SpatialRTMs = rs.RTMs()
	}
	tr.Correct = ex.score(tr.SpatialResponse)
	return nil
}

// TemporalSearch presents the stream item by item while collecting
// responses, until the stream is exhausted and the post-stream window
// has passed
func (ex *Expt) TemporalSearch() error {
	ex.Onsets = nil
	ex.streamOn = false
	ex.targetOn = -1
	rc := &respond.Collector{
		Clock:           ex.Clock,
		Input:           ex.Input,
		Control:         ex.Ctl,
		Listener:        ex.listener(Temporal),
		TerminateAfter:  Msec(ex.Config.TemporalTimeoutMs),
		PostExhaust:     Msec(ex.Config.PostStreamMs),
		PollInterval:    ex.poll(),
		DisplayCallback: ex.PresentStreamItem,
	}
	oc, err := rc.Collect()
	if err != nil {
		return err
	}
	tr := ex.newRecord()
	tr.SetTemporal(oc.Responses)
	tr.TargetOnsetMs = ex.targetOn
	tr.Onsets = ex.Onsets
	if ex.Config.KeyResponse {
		tr.Correct = ex.score(tr.TemporalResponse)
	}
	return nil
}

// PresentStreamItem shows the next stream item for ItemMs followed by a
// blank for ISIMs.  It returns stream.ErrExhausted when no items remain.
func (ex *Expt) PresentStreamItem() error {
	sl, err := ex.queue.Pop()
	if err != nil {
		return err
	}
	ex.Display.Fill()
	ex.Display.Blit(sl.Item, ex.center())
	ex.Display.Flip()
	now := ex.Clock.Now()
	if !ex.streamOn {
		ex.streamOn = true
		ex.streamT0 = now
	}
	if sl.IsTarget {
		onset := evclock.Msec(now - ex.streamT0)
		if ex.Config.Windowed {
			ex.targetOn = onset
		} else {
			ex.Onsets = append(ex.Onsets, results.TargetOnset{Rep: sl.Rep, OnsetMs: onset, RunLen: sl.RunLen})
		}
	}
	cd := evclock.NewCountDown(ex.Clock, Msec(ex.Config.ItemMs))
	if err := cd.Wait(ex.poll(), ex.check); err != nil {
		return err
	}
	ex.Display.Fill()
	ex.Display.Flip()
	cd.Duration = Msec(ex.Config.ISIMs)
	cd.Reset()
	return cd.Wait(ex.poll(), ex.check)
}

// newRecord resets Record with the factors of the current trial
func (ex *Expt) newRecord() *results.TrialRecord {
	tc := &ex.Cur
	ex.Record = results.TrialRecord{
		Block:                tc.Block,
		Trial:                tc.Trial,
		SearchType:           tc.SearchType.String(),
		StimType:             tc.StimType.String(),
		CellCount:            -1,
		SetSize:              -1,
		TargetDistractor:     tc.TD.Label(),
		DistractorDistractor: tc.DD.Label(),
		PresentAbsent:        tc.Presence.Label(),
		TargetOnsetMs:        -1,
		SpatialRTMs:          -1,
		TemporalRTMs:         -1,
		Correct:              -1,
	}
	if tc.SearchType == Spatial {
		ex.Record.CellCount = tc.CellCount
	} else if ex.Config.Windowed {
		ex.Record.SetSize = tc.SetSize
	}
	return &ex.Record
}

// score returns 1 if resp is the correct response for the current trial,
// 0 otherwise
func (ex *Expt) score(resp string) int {
	if resp == TargetBoundary {
		return 1
	}
	if ex.Config.KeyResponse && resp == ex.Cur.Presence.Label() {
		return 1
	}
	return 0
}

// TrialCleanUp resets the listeners, writes the trial and its temporal
// responses to the Sink, and clears the per-trial state
func (ex *Expt) TrialCleanUp() error {
	var tresps []respond.Response
	if ex.Cur.SearchType == Temporal {
		tresps = append(tresps, ex.Buttons.Responses()...)
	}
	ex.Cursor.Reset()
	ex.Cursor.ClearBoundaries()
	ex.Buttons.Reset()
	if ex.Sink != nil {
		if err := ex.Sink.LogTrial(&ex.Record); err != nil {
			return fmt.Errorf("expt.TrialCleanUp: %w", err)
		}
		if err := ex.Sink.LogResponses(ex.Cur.Block, ex.Cur.Trial, tresps); err != nil {
			return fmt.Errorf("expt.TrialCleanUp: %w", err)
		}
	}
	ex.Array = nil
	ex.Stream = nil
	ex.queue = nil
	ex.Onsets = nil
	ex.Timeline.Reset()
	return nil
}
