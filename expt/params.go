// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expt

import (
	"fmt"
	"sort"

	"github.com/emer/emergent/params"
)

// ParamSets are the experiment variants.  Base is always applied, and
// others can be optionally selected to apply on top of that.
var ParamSets = params.Sets{
	"Base": {Desc: "single block, line / temporal, 64 items, hetero / hetero, repeated targets, pointer response", Sheets: params.Sheets{
		"Config": &params.Sheet{
			{Sel: "Config", Desc: "base design",
				Params: params.Params{
					"Config.CellCount":        "64",
					"Config.TargetReps":       "15",
					"Config.RunMin":           "5",
					"Config.RunMax":           "10",
					"Config.SpatialTimeoutMs": "10000",
				}},
		},
	}},
	"PresentAbsent": {Desc: "windowed streams with a target present / absent factor and key responses", Sheets: params.Sheets{
		"Config": &params.Sheet{
			{Sel: "Config", Desc: "presence factor needs a decision response",
				Params: params.Params{
					"Config.Windowed":         "true",
					"Config.PresentAbsent":    "true",
					"Config.KeyResponse":      "true",
					"Config.SetSize":          "20",
					"Config.Pad":              "3",
					"Config.SpatialTimeoutMs": "60000",
				}},
		},
	}},
	"Factorial": {Desc: "search type x cell count x similarity factors crossed within each block", Sheets: params.Sheets{
		"Config": &params.Sheet{
			{Sel: "Config", Desc: "2 x 4 x 2 x 2 = 32 conditions, each twice per block",
				Params: params.Params{
					"Config.Factorial":      "true",
					"Config.TrialsPerBlock": "64",
				}},
		},
	}},
	"Alternate": {Desc: "toggle search and stimulus type at each block boundary", Sheets: params.Sheets{
		"Config": &params.Sheet{
			{Sel: "Config", Desc: "two cycles of the toggle",
				Params: params.Params{
					"Config.Alternate": "true",
					"Config.NBlocks":   "4",
				}},
		},
	}},
	"Grid": {Desc: "spatial arrays on a square grid", Sheets: params.Sheets{
		"Config": &params.Sheet{
			{Sel: "Config", Desc: "grid spacing wide enough for 1 deg items",
				Params: params.Params{
					"Config.GridLayout":     "true",
					"Config.GridSpacingDeg": "1.5",
				}},
		},
	}},
}

// SetParams applies the Base params set and then setNm, if not empty or
// Base, to cfg.  If setMsg is true a message is printed for each param set.
func SetParams(cfg *Config, setNm string, setMsg bool) error {
	if err := SetParamsSet(cfg, "Base", setMsg); err != nil {
		return err
	}
	if setNm != "" && setNm != "Base" {
		return SetParamsSet(cfg, setNm, setMsg)
	}
	return nil
}

// SetParamsSet applies the Config sheet of the named set to cfg
func SetParamsSet(cfg *Config, setNm string, setMsg bool) error {
	pset, err := ParamSets.SetByNameTry(setNm)
	if err != nil {
		return fmt.Errorf("expt.SetParamsSet: %w", err)
	}
	if cfgp, ok := pset.Sheets["Config"]; ok {
		cfgp.Apply(cfg, setMsg)
	}
	return nil
}

// ParamsNames returns the sorted names of the available sets
func ParamsNames() []string {
	nms := make([]string, 0, len(ParamSets))
	for nm := range ParamSets {
		nms = append(nms, nm)
	}
	sort.Strings(nms)
	return nms
}
