// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"math/rand"

	"github.com/goki/mat32"
)

// Ring places items evenly on a circle: slot i (1..n) is at
// 360/n * i degrees from the center.
type Ring struct {
	Center   mat32.Vec2 `desc:"center of the ring in pixels"`
	Radius   float32    `desc:"radius of the ring in pixels"`
	ItemSize float32    `desc:"item size in pixels, for the target boundary"`
}

// Theta returns the angular spacing for n items
func (rg *Ring) Theta(n int) float32 {
	return 360 / float32(n)
}

func (rg *Ring) Generate(n int, present bool, rnd *rand.Rand) (*Array, error) {
	if err := checkN(n); err != nil {
		return nil, err
	}
	theta := rg.Theta(n)
	pos := make([]mat32.Vec2, n)
	slots := make([]int, n)
	for i := 1; i <= n; i++ {
		pos[i-1] = PointPos(rg.Center, rg.Radius, 0, theta*float32(i))
		slots[i-1] = i
	}
	ar := &Array{}
	assign(ar, pos, slots, present, rg.ItemSize, rnd)
	return ar, nil
}

// Compile-time check that implements Generator interface
var _ Generator = (*Ring)(nil)
