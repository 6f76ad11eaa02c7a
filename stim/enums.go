// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stim

import (
	"fmt"
	"strings"

	"github.com/goki/ki/kit"
)

// StimTypes are the kinds of visual primitive used for search items
type StimTypes int32

//go:generate stringer -type=StimTypes

var KiT_StimTypes = kit.Enums.AddEnum(StimTypesN, kit.NotBitFlag, nil)

func (ev StimTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *StimTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Color items are filled squares whose hue is taken from a color wheel
	Color StimTypes = iota

	// Line items are thin bars whose orientation carries the feature
	Line

	StimTypesN
)

// FromString sets the value from its name, case-insensitive
func (ev *StimTypes) FromString(s string) error {
	for i := StimTypes(0); i < StimTypesN; i++ {
		if strings.EqualFold(i.String(), s) {
			*ev = i
			return nil
		}
	}
	return fmt.Errorf("stim.StimTypes: %q is not a valid value", s)
}

// Similarity is one level of a similarity factor: how alike the target is
// to the distractors, or the distractors are to each other.
type Similarity int32

//go:generate stringer -type=Similarity

var KiT_Similarity = kit.Enums.AddEnum(SimilarityN, kit.NotBitFlag, nil)

func (ev Similarity) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Similarity) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Similar is the homogeneous level (logged as "homo")
	Similar Similarity = iota

	// Dissimilar is the heterogeneous level (logged as "hetero")
	Dissimilar

	SimilarityN
)

// Label returns the name used for this level in data files
func (ev Similarity) Label() string {
	switch ev {
	case Similar:
		return "homo"
	case Dissimilar:
		return "hetero"
	}
	return ev.String()
}

// FromString accepts either the enum name or the data-file label
func (ev *Similarity) FromString(s string) error {
	for i := Similarity(0); i < SimilarityN; i++ {
		if strings.EqualFold(i.String(), s) || strings.EqualFold(i.Label(), s) {
			*ev = i
			return nil
		}
	}
	return fmt.Errorf("stim.Similarity: %q is not a valid value", s)
}
