// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"fmt"

	"github.com/goki/gi/gist"
)

// Black is the fill used for line items
var Black = gist.Color{A: 255}

// Item is one visual primitive in a search display: a filled rectangle
// whose feature is either a fill color or a rotation.
type Item struct {
	Type   StimTypes  `desc:"which feature carries the item identity"`
	Target bool       `desc:"is this the target item for the trial"`
	Hue    float32    `desc:"for Color items, angle on the color wheel (relative to wheel rotation) that the fill was drawn from"`
	Fill   gist.Color `desc:"fill color of the rectangle"`
	Tilt   float32    `desc:"for Line items, rotation in degrees"`
	Width  float32    `desc:"width in pixels"`
	Height float32    `desc:"height in pixels"`
}

// Label satisfies display.Drawable
func (it *Item) Label() string {
	if it.Target {
		return "target"
	}
	return "distractor"
}

// String returns a compact description of the feature value
func (it *Item) String() string {
	switch it.Type {
	case Color:
		return fmt.Sprintf("%s:color:%g", it.Label(), it.Hue)
	case Line:
		return fmt.Sprintf("%s:line:%g", it.Label(), it.Tilt)
	}
	return it.Label()
}

// Feature returns the feature value that varies across items:
// the wheel angle for Color items and the tilt for Line items.
func (it *Item) Feature() float32 {
	if it.Type == Color {
		return it.Hue
	}
	return it.Tilt
}
