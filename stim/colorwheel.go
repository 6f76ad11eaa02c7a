// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"github.com/goki/gi/gist"
	"github.com/goki/mat32"
)

// ColorWheel maps angles onto hues of constant saturation and lightness.
// Rotation offsets the whole wheel so that angle 0 lands on a different
// hue for each block.
type ColorWheel struct {
	Rotation float32 `desc:"rotation of the wheel in degrees, added to every angle"`
	Sat      float32 `def:"0.8" desc:"saturation of all wheel colors"`
	Lum      float32 `def:"0.5" desc:"lightness of all wheel colors"`
}

func (cw *ColorWheel) Defaults() {
	cw.Sat = 0.8
	cw.Lum = 0.5
}

// Hue returns the hue in [0,360) for given wheel angle
func (cw *ColorWheel) Hue(angle float32) float32 {
	h := mat32.Mod(cw.Rotation+angle, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// ColorFromAngle returns the wheel color at given angle
func (cw *ColorWheel) ColorFromAngle(angle float32) gist.Color {
	var c gist.Color
	c.SetHSLA(cw.Hue(angle), cw.Sat, cw.Lum, 1)
	return c
}
