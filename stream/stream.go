// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package stream builds the item sequences shown one at a time in temporal
(RSVP) search.

Two construction modes are supported: BuildRepeated interleaves a fixed
number of target repetitions with runs of random distractors, and
BuildWindowed pads a window of setSize items on both sides, placing at most
one target inside the window.  A built Stream is consumed in order through
a Queue.
*/
package stream

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/emer/vsearch/stim"
)

// ErrExhausted is returned by Queue.Pop when no slots remain
var ErrExhausted = errors.New("stream: exhausted")

// Slot is one position in a stream
type Slot struct {
	Item     *stim.Item `desc:"item shown in this slot"`
	IsTarget bool       `desc:"whether this slot holds the target"`
	Rep      int        `desc:"repetition index of the target (1-based, repeated mode), 0 otherwise"`
	RunLen   int        `desc:"number of distractors immediately preceding this target (repeated mode)"`
}

// RepInfo records where one target repetition landed
type RepInfo struct {
	Rep    int `desc:"1-based repetition index"`
	RunLen int `desc:"distractor run length preceding the target"`
	Idx    int `desc:"slot index of the target in the stream"`
}

// Stream is an ordered sequence of slots
type Stream struct {
	Slots     []Slot    `desc:"slots in presentation order"`
	TargetIdx int       `desc:"index of the (single) target in windowed mode, first target in repeated mode, -1 if none"`
	Pad       int       `desc:"padding on each side of the window (windowed mode)"`
	SetSize   int       `desc:"window size (windowed mode)"`
	Reps      []RepInfo `desc:"target repetitions in order (repeated mode)"`
}

// Len returns the number of slots
func (sm *Stream) Len() int {
	return len(sm.Slots)
}

// NTargets returns the number of target slots
func (sm *Stream) NTargets() int {
	n := 0
	for i := range sm.Slots {
		if sm.Slots[i].IsTarget {
			n++
		}
	}
	return n
}

// Queue returns a new head-consuming queue over the slots, in build order
func (sm *Stream) Queue() *Queue {
	return &Queue{slots: sm.Slots}
}

// BuildRepeated builds a stream containing reps target presentations, each
// preceded by a run of distractors of length uniform in [runMin, runMax].
func BuildRepeated(set *stim.Set, reps, runMin, runMax int, rnd *rand.Rand) (*Stream, error) {
	if err := checkSet(set); err != nil {
		return nil, err
	}
	if reps < 1 {
		return nil, fmt.Errorf("stream.BuildRepeated: reps %d must be >= 1", reps)
	}
	if runMin < 0 || runMax < runMin {
		return nil, fmt.Errorf("stream.BuildRepeated: invalid run range [%d, %d]", runMin, runMax)
	}
	sm := &Stream{TargetIdx: -1}
	for r := 1; r <= reps; r++ {
		run := runMin + intn(rnd, runMax-runMin+1)
		for i := 0; i < run; i++ {
			sm.Slots = append(sm.Slots, Slot{Item: set.Random(rnd)})
		}
		idx := len(sm.Slots)
		if sm.TargetIdx < 0 {
			sm.TargetIdx = idx
		}
		sm.Slots = append(sm.Slots, Slot{Item: set.Target, IsTarget: true, Rep: r, RunLen: run})
		sm.Reps = append(sm.Reps, RepInfo{Rep: r, RunLen: run, Idx: idx})
	}
	return sm, nil
}

// BuildWindowed builds a stream of setSize + 2*pad random distractors.  When
// present, one index chosen uniformly in [pad, pad+setSize-1] holds the
// target instead.
func BuildWindowed(set *stim.Set, setSize, pad int, present bool, rnd *rand.Rand) (*Stream, error) {
	if err := checkSet(set); err != nil {
		return nil, err
	}
	if setSize < 1 || pad < 0 {
		return nil, fmt.Errorf("stream.BuildWindowed: invalid set size %d / pad %d", setSize, pad)
	}
	n := setSize + 2*pad
	sm := &Stream{TargetIdx: -1, Pad: pad, SetSize: setSize, Slots: make([]Slot, n)}
	for i := range sm.Slots {
		sm.Slots[i] = Slot{Item: set.Random(rnd)}
	}
	if present {
		ti := pad + intn(rnd, setSize)
		sm.Slots[ti] = Slot{Item: set.Target, IsTarget: true, Rep: 1}
		sm.TargetIdx = ti
	}
	return sm, nil
}

func checkSet(set *stim.Set) error {
	if set == nil || set.Target == nil || len(set.Distractors) == 0 {
		return errors.New("stream: stimulus set needs a target and at least one distractor")
	}
	return nil
}

func intn(rnd *rand.Rand, n int) int {
	if rnd != nil {
		return rnd.Intn(n)
	}
	return rand.Intn(n)
}
