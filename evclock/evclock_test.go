// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package evclock

import (
	"errors"
	"testing"
	"time"
)

func TestTimelineRegister(t *testing.T) {
	tl := NewTimeline(NewSim())
	if err := tl.Register("present_target", 0); err != nil {
		t.Fatal(err)
	}
	if err := tl.Register("present_fixation", time.Second); err != nil {
		t.Fatal(err)
	}
	if err := tl.Register("early", 500*time.Millisecond); err == nil {
		t.Error("non-increasing onset should be rejected")
	}
	if err := tl.Register("present_fixation", 3*time.Second); err == nil {
		t.Error("duplicate label should be rejected")
	}
	if err := tl.Register("neg", -time.Second); err == nil {
		t.Error("negative onset should be rejected")
	}
	if len(tl.Tickets) != 2 {
		t.Errorf("got %d tickets, want 2", len(tl.Tickets))
	}
}

func TestTimelineWait(t *testing.T) {
	clk := NewSim()
	clk.Advance(5 * time.Second) // trial start is not clock zero
	tl := NewTimeline(clk)
	tl.Register("present_fixation", time.Second)
	tl.Register("search_onset", 2*time.Second)
	tl.Start()
	if !tl.Before("present_fixation") {
		t.Fatal("deadline should be in the future at trial start")
	}
	npoll := 0
	err := tl.WaitFor("present_fixation", time.Millisecond, func() error {
		npoll++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if tm := tl.TrialTime(); tm != time.Second {
		t.Errorf("trial time after wait %v, want 1s", tm)
	}
	if npoll != 1000 {
		t.Errorf("polled %d times, want 1000", npoll)
	}
	if !tl.After("present_fixation") || !tl.Before("search_onset") {
		t.Error("wrong ordering after first deadline")
	}

	stop := errors.New("stop")
	err = tl.WaitFor("search_onset", time.Millisecond, func() error { return stop })
	if !errors.Is(err, stop) {
		t.Errorf("WaitFor err = %v, want stop", err)
	}
	if tl.TrialTimeMs() != 1000 {
		t.Errorf("check error should end wait immediately, trial time %g", tl.TrialTimeMs())
	}
}

func TestTimelineUnknownLabel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Before on unknown label should panic")
		}
	}()
	tl := NewTimeline(NewSim())
	tl.Start()
	tl.Before("nope")
}

func TestCountDown(t *testing.T) {
	clk := NewSim()
	cd := NewCountDown(clk, 100*time.Millisecond)
	if !cd.Counting() {
		t.Fatal("fresh countdown should be counting")
	}
	clk.Advance(40 * time.Millisecond)
	if r := cd.Remaining(); r != 60*time.Millisecond {
		t.Errorf("remaining %v", r)
	}
	cd.Wait(time.Millisecond, nil)
	if cd.Counting() || cd.Remaining() != 0 {
		t.Error("countdown should be finished after Wait")
	}
	if clk.Now() != 100*time.Millisecond {
		t.Errorf("clock at %v after wait", clk.Now())
	}
	cd.Reset()
	if !cd.Counting() {
		t.Error("Reset should restart counting")
	}
}

func TestSimSleepZero(t *testing.T) {
	clk := &Sim{}
	clk.Sleep(0)
	if clk.Now() != time.Millisecond {
		t.Errorf("Sleep(0) advanced to %v, want default tick", clk.Now())
	}
}
