// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expt

import (
	"fmt"

	"github.com/emer/vsearch/stim"
)

// TrialConfig is the complete, immutable description of one trial.
// It is passed by value into each trial phase.
type TrialConfig struct {
	Block      int             `desc:"block number, 1-based"`
	Trial      int             `desc:"trial number within the block, 1-based"`
	SearchType SearchTypes     `desc:"spatial array or temporal stream"`
	StimType   stim.StimTypes  `desc:"color or line items"`
	TD         stim.Similarity `desc:"target-distractor similarity"`
	DD         stim.Similarity `desc:"distractor-distractor similarity"`
	CellCount  int             `desc:"number of spatial array positions"`
	SetSize    int             `desc:"window size of windowed streams"`
	Presence   Presence        `desc:"whether the target is shown"`
}

// Validate rejects out-of-range factor values
func (tc TrialConfig) Validate() error {
	switch {
	case tc.SearchType < 0 || tc.SearchType >= SearchTypesN:
		return fmt.Errorf("expt.TrialConfig: invalid search type %v", tc.SearchType)
	case tc.StimType < 0 || tc.StimType >= stim.StimTypesN:
		return fmt.Errorf("expt.TrialConfig: invalid stimulus type %v", tc.StimType)
	case tc.TD < 0 || tc.TD >= stim.SimilarityN:
		return fmt.Errorf("expt.TrialConfig: invalid target-distractor similarity %v", tc.TD)
	case tc.DD < 0 || tc.DD >= stim.SimilarityN:
		return fmt.Errorf("expt.TrialConfig: invalid distractor-distractor similarity %v", tc.DD)
	case tc.Presence < 0 || tc.Presence >= PresenceN:
		return fmt.Errorf("expt.TrialConfig: invalid presence %v", tc.Presence)
	case tc.SearchType == Spatial && tc.CellCount < 1:
		return fmt.Errorf("expt.TrialConfig: cell count %d must be >= 1", tc.CellCount)
	}
	return nil
}

// StimKey identifies the stimulus set a trial needs
func (tc TrialConfig) StimKey() string {
	return fmt.Sprintf("%v_%v_%v", tc.StimType, tc.TD.Label(), tc.DD.Label())
}

// String returns a compact name for the trial condition
func (tc TrialConfig) String() string {
	nm := fmt.Sprintf("%v_%s", tc.SearchType, tc.StimKey())
	if tc.SearchType == Spatial {
		nm += fmt.Sprintf("_%d", tc.CellCount)
	}
	return nm + "_" + tc.Presence.Label()
}

// FirstBlock returns the template for block 1 from the config
func FirstBlock(cfg *Config) TrialConfig {
	return TrialConfig{
		Block:      1,
		SearchType: cfg.StartSearch,
		StimType:   cfg.StartStim,
		TD:         cfg.TDSim,
		DD:         cfg.DDSim,
		CellCount:  cfg.CellCount,
		SetSize:    cfg.SetSize,
		Presence:   Present,
	}
}

// NextBlock returns the template for the following block.  With alternate,
// both the search type and the stimulus type are toggled.
func (tc TrialConfig) NextBlock(alternate bool) TrialConfig {
	nb := tc
	nb.Block++
	nb.Trial = 0
	if alternate {
		nb.SearchType = tc.SearchType.Other()
		nb.StimType = (tc.StimType + 1) % stim.StimTypesN
	}
	return nb
}
