// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"fmt"
	"math/rand"
)

// Set is the stimulus set for one block: a single target and the small pool
// of distractors that arrays and streams draw from.
type Set struct {
	Type        StimTypes  `desc:"kind of items in this set"`
	Target      *Item      `desc:"the target item"`
	Distractors []*Item    `desc:"distractor pool: 1 item when distractors are homogeneous, 4 when heterogeneous"`
	RefAngle    float32    `desc:"reference angle (wheel angle or tilt) of the first distractor"`
	Wheel       ColorWheel `desc:"color wheel used for Color sets"`
}

// Random returns a distractor drawn uniformly from the pool.
// rnd may be nil, in which case the global source is used.
func (st *Set) Random(rnd *rand.Rand) *Item {
	n := len(st.Distractors)
	if n == 1 {
		return st.Distractors[0]
	}
	if rnd != nil {
		return st.Distractors[rnd.Intn(n)]
	}
	return st.Distractors[rand.Intn(n)]
}

// Factory builds stimulus sets from the similarity factors.
// The angle parameters are the fixed offsets that define each similarity level.
type Factory struct {
	ItemSize     float32 `desc:"size of an item in pixels (square side for Color, bar length for Line)"`
	Thickness    float32 `desc:"bar thickness for Line items, in pixels"`
	ColorRefHomo float32 `def:"20" desc:"wheel angle of the first distractor when target and distractors are similar"`
	ColorRefHet  float32 `def:"150" desc:"wheel angle of the first distractor when target and distractors are dissimilar"`
	ColorStep    float32 `def:"20" desc:"wheel angle between successive heterogeneous distractors"`
	LineTarget   float32 `def:"45" desc:"tilt of the target line"`
	LineRefHomo  float32 `def:"45" desc:"tilt of the first distractor when target and distractors are similar"`
	LineRefHet   float32 `def:"135" desc:"tilt of the first distractor when target and distractors are dissimilar"`
	LineStep     float32 `def:"5" desc:"tilt between successive heterogeneous distractors"`
	NHetero      int     `def:"4" desc:"number of distractor variants when distractors are dissimilar to each other"`
	Wheel        ColorWheel
}

func (sf *Factory) Defaults() {
	sf.ItemSize = 32
	sf.Thickness = 3
	sf.ColorRefHomo = 20
	sf.ColorRefHet = 150
	sf.ColorStep = 20
	sf.LineTarget = 45
	sf.LineRefHomo = 45
	sf.LineRefHet = 135
	sf.LineStep = 5
	sf.NHetero = 4
	sf.Wheel.Defaults()
}

// NDistractors returns the size of the distractor pool for given
// distractor-distractor similarity
func (sf *Factory) NDistractors(dd Similarity) int {
	if dd == Similar {
		return 1
	}
	return sf.NHetero
}

// Create builds the target and distractor pool for given stimulus type and
// similarity factors.  For Color sets the wheel is given a random rotation,
// so rnd (or the global source if nil) determines the actual hues.
func (sf *Factory) Create(typ StimTypes, td, dd Similarity, rnd *rand.Rand) (*Set, error) {
	if td < 0 || td >= SimilarityN {
		return nil, fmt.Errorf("stim.Factory: invalid target-distractor similarity %d", td)
	}
	if dd < 0 || dd >= SimilarityN {
		return nil, fmt.Errorf("stim.Factory: invalid distractor-distractor similarity %d", dd)
	}
	bound := sf.NDistractors(dd)
	st := &Set{Type: typ}
	switch typ {
	case Color:
		st.Wheel = sf.Wheel
		if rnd != nil {
			st.Wheel.Rotation = float32(rnd.Intn(360))
		} else {
			st.Wheel.Rotation = float32(rand.Intn(360))
		}
		st.Target = sf.colorItem(&st.Wheel, 0, true)
		st.RefAngle = sf.ColorRefHomo
		if td == Dissimilar {
			st.RefAngle = sf.ColorRefHet
		}
		for i := 0; i < bound; i++ {
			st.Distractors = append(st.Distractors, sf.colorItem(&st.Wheel, st.RefAngle+sf.ColorStep*float32(i), false))
		}
	case Line:
		st.Target = sf.lineItem(sf.LineTarget, true)
		st.RefAngle = sf.LineRefHomo
		if td == Dissimilar {
			st.RefAngle = sf.LineRefHet
		}
		for i := 0; i < bound; i++ {
			st.Distractors = append(st.Distractors, sf.lineItem(st.RefAngle+sf.LineStep*float32(i), false))
		}
	default:
		return nil, fmt.Errorf("stim.Factory: invalid stimulus type %d", typ)
	}
	return st, nil
}

func (sf *Factory) colorItem(cw *ColorWheel, angle float32, targ bool) *Item {
	return &Item{Type: Color, Target: targ, Hue: angle, Fill: cw.ColorFromAngle(angle), Width: sf.ItemSize, Height: sf.ItemSize}
}

func (sf *Factory) lineItem(tilt float32, targ bool) *Item {
	return &Item{Type: Line, Target: targ, Tilt: tilt, Fill: Black, Width: sf.ItemSize, Height: sf.Thickness}
}
