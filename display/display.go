// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package display defines the rendering sink that the experiment draws into,
the non-stimulus drawables (fixation cross, target boundary outline), the
screen geometry used to convert degrees of visual angle into pixels, and a
Recorder implementation that keeps the sequence of draw operations.

A frame is built with Fill, any number of Blit / Message calls, and made
visible with Flip.
*/
package display

import (
	"github.com/goki/gi/gist"
	"github.com/goki/mat32"
)

// Drawable is anything that can be blitted onto the display
type Drawable interface {
	// Label is a short name for the drawable, e.g., "target", "fixation"
	Label() string
}

// Display is the rendering sink
type Display interface {
	// Geom returns the screen geometry
	Geom() *Geom

	// Fill clears the back buffer to the background color
	Fill()

	// Blit draws given item centered at loc
	Blit(d Drawable, loc mat32.Vec2)

	// Message draws text centered at loc
	Message(msg string, loc mat32.Vec2)

	// Flip presents the back buffer
	Flip()

	// ShowCursor shows or hides the pointer
	ShowCursor(show bool)

	// WarpCursor moves the pointer to pos
	WarpCursor(pos mat32.Vec2)
}

// White is the default foreground for fixation and outlines
var White = gist.Color{R: 255, G: 255, B: 255, A: 255}

// FixationCross is a plus-shaped fixation marker
type FixationCross struct {
	Size      float32    `desc:"length of each arm in pixels"`
	Thickness float32    `desc:"stroke thickness in pixels"`
	Color     gist.Color `desc:"stroke color"`
}

func (fc *FixationCross) Label() string { return "fixation" }

// Outline is an unfilled square drawn around an item, used to mark the
// target boundary in pointer-response arrays
type Outline struct {
	Width  float32    `desc:"side length in pixels"`
	Stroke float32    `desc:"stroke thickness in pixels, drawn inside the square"`
	Color  gist.Color `desc:"stroke color"`
}

func (ol *Outline) Label() string { return "boundary" }
