// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"math/rand"

	"github.com/goki/mat32"
)

// Grid places items on a square lattice of side sqrt(n), centered on
// Center.  Slots are numbered row-major from 0.
type Grid struct {
	Center   mat32.Vec2 `desc:"center of the grid in pixels"`
	Spacing  float32    `desc:"distance between neighboring cell centers in pixels"`
	ItemSize float32    `desc:"item size in pixels, for the target boundary"`
}

// Side returns the number of cells per side for n items, or an error if n
// is not a perfect square
func (gr *Grid) Side(n int) (int, error) {
	sd := int(mat32.Sqrt(float32(n)) + 0.5)
	if sd*sd != n {
		return 0, fmt.Errorf("layout.Grid: array size %d is not a perfect square", n)
	}
	return sd, nil
}

func (gr *Grid) Generate(n int, present bool, rnd *rand.Rand) (*Array, error) {
	if err := checkN(n); err != nil {
		return nil, err
	}
	sd, err := gr.Side(n)
	if err != nil {
		return nil, err
	}
	off := gr.Spacing * float32(sd-1) / 2
	pos := make([]mat32.Vec2, n)
	slots := make([]int, n)
	for y := 0; y < sd; y++ {
		for x := 0; x < sd; x++ {
			i := y*sd + x
			pos[i] = mat32.Vec2{X: gr.Center.X - off + gr.Spacing*float32(x), Y: gr.Center.Y - off + gr.Spacing*float32(y)}
			slots[i] = i
		}
	}
	ar := &Array{}
	assign(ar, pos, slots, present, gr.ItemSize, rnd)
	return ar, nil
}

var _ Generator = (*Grid)(nil)
