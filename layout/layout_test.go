// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/goki/mat32"
)

// difTol is the tolerance for comparing pixel distances
const difTol = float32(1.0e-3)

func TestRingGeometry(t *testing.T) {
	ctr := mat32.Vec2{X: 960, Y: 540}
	rg := &Ring{Center: ctr, Radius: 180, ItemSize: 40}
	rnd := rand.New(rand.NewSource(5))
	for _, n := range []int{25, 36, 49, 64} {
		for _, present := range []bool{true, false} {
			ar, err := rg.Generate(n, present, rnd)
			if err != nil {
				t.Fatal(err)
			}
			want := n
			if present {
				want = n - 1
			}
			if len(ar.Locs) != want {
				t.Errorf("n=%d present=%v: %d distractor locs, want %d", n, present, len(ar.Locs), want)
			}
			if ar.HasTarget != present {
				t.Errorf("n=%d: HasTarget %v, want %v", n, ar.HasTarget, present)
			}
			all := ar.Positions()
			if len(all) != n {
				t.Errorf("n=%d: %d total positions", n, len(all))
			}
			for i, p := range all {
				if d := p.DistTo(ctr); mat32.Abs(d-rg.Radius) > difTol {
					t.Errorf("n=%d: position %d at distance %g, want %g", n, i, d, rg.Radius)
				}
				for j := i + 1; j < len(all); j++ {
					if p.DistTo(all[j]) < 1 {
						t.Errorf("n=%d: positions %d and %d coincide", n, i, j)
					}
				}
			}
			// slots cover 1..n exactly once
			slots := append([]int(nil), ar.Slots...)
			if present {
				slots = append(slots, ar.TargetSlot)
			} else if ar.TargetSlot != -1 {
				t.Errorf("absent array has target slot %d", ar.TargetSlot)
			}
			sort.Ints(slots)
			for i, s := range slots {
				if s != i+1 {
					t.Fatalf("n=%d: slots not a permutation of 1..n: %v", n, slots)
				}
			}
			// each position sits at its slot's pre-shuffle angle
			theta := rg.Theta(n)
			for i, p := range ar.Locs {
				exp := PointPos(ctr, rg.Radius, 0, theta*float32(ar.Slots[i]))
				if p.DistTo(exp) > difTol {
					t.Errorf("n=%d: loc %d not at slot %d angle", n, i, ar.Slots[i])
				}
			}
		}
	}
}

func TestRingTargetUniform(t *testing.T) {
	rg := &Ring{Radius: 100, ItemSize: 10}
	rnd := rand.New(rand.NewSource(11))
	n := 8
	counts := make([]int, n+1)
	ntr := 8000
	for i := 0; i < ntr; i++ {
		ar, _ := rg.Generate(n, true, rnd)
		counts[ar.TargetSlot]++
	}
	exp := ntr / n
	for s := 1; s <= n; s++ {
		if counts[s] < exp*8/10 || counts[s] > exp*12/10 {
			t.Errorf("slot %d chosen %d times, expected about %d", s, counts[s], exp)
		}
	}
}

func TestTargetBounds(t *testing.T) {
	loc := mat32.Vec2{X: 100, Y: 100}
	r := TargetBounds(loc, 40)
	if !r.Contains(loc) {
		t.Error("bounds do not contain the target center")
	}
	sz := r.Size()
	// corners at 20 px along the diagonals
	want := 2 * 20 * mat32.Cos(mat32.DegToRad(45))
	if mat32.Abs(sz.X-want) > difTol || mat32.Abs(sz.Y-want) > difTol {
		t.Errorf("bounds size %v, want %g square", sz, want)
	}
	if r.Contains(mat32.Vec2{X: 130, Y: 100}) {
		t.Error("point outside the box reported as inside")
	}
}

func TestGrid(t *testing.T) {
	gr := &Grid{Center: mat32.Vec2{X: 500, Y: 500}, Spacing: 50, ItemSize: 30}
	ar, err := gr.Generate(49, true, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatal(err)
	}
	if len(ar.Locs) != 48 || !ar.HasTarget {
		t.Fatalf("got %d locs, target %v", len(ar.Locs), ar.HasTarget)
	}
	var sum mat32.Vec2
	for _, p := range ar.Positions() {
		sum = sum.Add(p)
	}
	mean := sum.DivScalar(49)
	if mean.DistTo(gr.Center) > difTol {
		t.Errorf("grid not centered: mean %v", mean)
	}
	if _, err := gr.Generate(50, false, nil); err == nil {
		t.Error("non-square grid size should be rejected")
	}
}

func TestInvalidSize(t *testing.T) {
	rg := &Ring{Radius: 10}
	if _, err := rg.Generate(0, false, nil); err == nil {
		t.Error("size 0 should be rejected")
	}
}

func TestArrayTensor(t *testing.T) {
	rg := &Ring{Radius: 10}
	ar, _ := rg.Generate(4, true, nil)
	tsr := ar.Tensor()
	if tsr.Dim(0) != 4 || tsr.Dim(1) != 2 {
		t.Fatalf("tensor shape %v", tsr.Shapes())
	}
	if tsr.Value([]int{3, 0}) != ar.Target.X {
		t.Error("last tensor row should be the target")
	}
}
