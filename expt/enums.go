// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expt

import (
	"fmt"
	"strings"

	"github.com/goki/ki/kit"
)

// SearchTypes are the two ways of presenting the search items
type SearchTypes int32

//go:generate stringer -type=SearchTypes

var KiT_SearchTypes = kit.Enums.AddEnum(SearchTypesN, kit.NotBitFlag, nil)

func (ev SearchTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *SearchTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Spatial shows all items at once in an array
	Spatial SearchTypes = iota

	// Temporal shows items one at a time at fixation
	Temporal

	SearchTypesN
)

// Other returns the other search type
func (ev SearchTypes) Other() SearchTypes {
	if ev == Spatial {
		return Temporal
	}
	return Spatial
}

// FromString sets the value from its name, case-insensitive
func (ev *SearchTypes) FromString(s string) error {
	for i := SearchTypes(0); i < SearchTypesN; i++ {
		if strings.EqualFold(i.String(), s) {
			*ev = i
			return nil
		}
	}
	return fmt.Errorf("expt.SearchTypes: %q is not a valid value", s)
}

// Presence is whether the target appears on a trial
type Presence int32

//go:generate stringer -type=Presence

var KiT_Presence = kit.Enums.AddEnum(PresenceN, kit.NotBitFlag, nil)

func (ev Presence) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Presence) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	Present Presence = iota
	Absent
	PresenceN
)

// Label returns the name used in data files
func (ev Presence) Label() string {
	return strings.ToLower(ev.String())
}

// FromString sets the value from its name, case-insensitive
func (ev *Presence) FromString(s string) error {
	for i := Presence(0); i < PresenceN; i++ {
		if strings.EqualFold(i.String(), s) {
			*ev = i
			return nil
		}
	}
	return fmt.Errorf("expt.Presence: %q is not a valid value", s)
}
