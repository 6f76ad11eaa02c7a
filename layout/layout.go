// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package layout computes the screen positions of spatial search arrays.

Ring places N items evenly on a circle around the display center; Grid
places them on a square lattice.  In both, the slot order is randomly
permuted and, when a target is present, the last slot in the permuted order
is reserved for the target and removed from the distractor positions.
*/
package layout

import (
	"fmt"
	"math/rand"

	"github.com/emer/emergent/erand"
	"github.com/emer/etable/etensor"
	"github.com/goki/mat32"
)

// Generator produces arrays of n positions
type Generator interface {
	// Generate returns an array of n slots, with one reserved for the
	// target if present.  rnd may be nil to use the global source.
	Generate(n int, present bool, rnd *rand.Rand) (*Array, error)
}

// Array is one generated search array
type Array struct {
	N          int          `desc:"total number of slots (distractors + target if present)"`
	Locs       []mat32.Vec2 `desc:"distractor positions, in randomized order"`
	Slots      []int        `desc:"slot index (pre-shuffle order, 1-based for Ring) of each distractor position"`
	HasTarget  bool         `desc:"whether a target slot was reserved"`
	Target     mat32.Vec2   `desc:"target position, if HasTarget"`
	TargetSlot int          `desc:"slot index of the target, -1 if none"`
	Bounds     Rect         `desc:"hit-test rectangle around the target, if HasTarget"`
}

// Positions returns all positions, distractors first and then the target
func (ar *Array) Positions() []mat32.Vec2 {
	ps := append([]mat32.Vec2(nil), ar.Locs...)
	if ar.HasTarget {
		ps = append(ps, ar.Target)
	}
	return ps
}

// Tensor returns the positions (distractors then target) as an N x 2 tensor
func (ar *Array) Tensor() *etensor.Float32 {
	ps := ar.Positions()
	tsr := etensor.NewFloat32([]int{len(ps), 2}, nil, []string{"Item", "XY"})
	for i, p := range ps {
		tsr.Set([]int{i, 0}, p.X)
		tsr.Set([]int{i, 1}, p.Y)
	}
	return tsr
}

// Rect is an axis-aligned rectangle
type Rect struct {
	Min mat32.Vec2
	Max mat32.Vec2
}

// RectFromPoints returns the rectangle spanned by two corner points
func RectFromPoints(a, b mat32.Vec2) Rect {
	return Rect{
		Min: mat32.Vec2{X: mat32.Min(a.X, b.X), Y: mat32.Min(a.Y, b.Y)},
		Max: mat32.Vec2{X: mat32.Max(a.X, b.X), Y: mat32.Max(a.Y, b.Y)},
	}
}

// Contains reports whether p is inside r, edges inclusive
func (r Rect) Contains(p mat32.Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Size returns width and height
func (r Rect) Size() mat32.Vec2 {
	return r.Max.Sub(r.Min)
}

// PointPos returns the point at given distance from origin, in the
// direction angle + rotation degrees (0 = rightward, counter-clockwise
// on screen, where y increases downward)
func PointPos(origin mat32.Vec2, amplitude, angle, rotation float32) mat32.Vec2 {
	rad := mat32.DegToRad(angle + rotation)
	return mat32.Vec2{X: origin.X + amplitude*mat32.Cos(rad), Y: origin.Y - amplitude*mat32.Sin(rad)}
}

// TargetBounds returns the hit-test rectangle around a target at loc: the
// box spanned by the points size/2 away along 135 and 315 degrees.
func TargetBounds(loc mat32.Vec2, size float32) Rect {
	return RectFromPoints(PointPos(loc, size/2, 0, 135), PointPos(loc, size/2, 0, 315))
}

// permute shuffles ins, using rnd if non-nil
func permute(ins []int, rnd *rand.Rand) {
	if rnd == nil {
		erand.PermuteInts(ins)
		return
	}
	rnd.Shuffle(len(ins), func(i, j int) { ins[i], ins[j] = ins[j], ins[i] })
}

// assign fills the array from positions indexed by slot, in permuted order,
// popping the last permuted slot as target if present
func assign(ar *Array, pos []mat32.Vec2, slotIdx []int, present bool, size float32, rnd *rand.Rand) {
	n := len(pos)
	ord := make([]int, n)
	for i := range ord {
		ord[i] = i
	}
	permute(ord, rnd)
	ar.N = n
	ar.TargetSlot = -1
	if present {
		ti := ord[n-1]
		ord = ord[:n-1]
		ar.HasTarget = true
		ar.Target = pos[ti]
		ar.TargetSlot = slotIdx[ti]
		ar.Bounds = TargetBounds(ar.Target, size)
	}
	ar.Locs = make([]mat32.Vec2, len(ord))
	ar.Slots = make([]int, len(ord))
	for i, oi := range ord {
		ar.Locs[i] = pos[oi]
		ar.Slots[i] = slotIdx[oi]
	}
}

func checkN(n int) error {
	if n < 1 {
		return fmt.Errorf("layout: array size %d must be >= 1", n)
	}
	return nil
}
