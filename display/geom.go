// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"fmt"

	"github.com/goki/mat32"
)

// Geom describes the physical display, for converting visual angle to pixels
type Geom struct {
	WidthPx    int     `def:"1920" desc:"screen width in pixels"`
	HeightPx   int     `def:"1080" desc:"screen height in pixels"`
	WidthCm    float32 `def:"53" desc:"physical width of the visible screen area in cm"`
	ViewDistCm float32 `def:"57" desc:"viewing distance in cm"`
}

func (gm *Geom) Defaults() {
	gm.WidthPx = 1920
	gm.HeightPx = 1080
	gm.WidthCm = 53
	gm.ViewDistCm = 57
}

func (gm *Geom) Validate() error {
	if gm.WidthPx <= 0 || gm.HeightPx <= 0 {
		return fmt.Errorf("display.Geom: screen size %dx%d must be positive", gm.WidthPx, gm.HeightPx)
	}
	if gm.WidthCm <= 0 || gm.ViewDistCm <= 0 {
		return fmt.Errorf("display.Geom: width %g cm and viewing distance %g cm must be positive", gm.WidthCm, gm.ViewDistCm)
	}
	return nil
}

// Center returns the screen center in pixels
func (gm *Geom) Center() mat32.Vec2 {
	return mat32.Vec2{X: float32(gm.WidthPx) / 2, Y: float32(gm.HeightPx) / 2}
}

// PxPerCm returns the horizontal pixel density
func (gm *Geom) PxPerCm() float32 {
	return float32(gm.WidthPx) / gm.WidthCm
}

// DegToPx returns the size in pixels subtended by deg degrees of visual
// angle, centered on the line of sight
func (gm *Geom) DegToPx(deg float32) float32 {
	cm := 2 * gm.ViewDistCm * mat32.Tan(mat32.DegToRad(deg)/2)
	return cm * gm.PxPerCm()
}
