// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expt

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"

	"github.com/emer/emergent/env"
	"github.com/emer/emergent/erand"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/emer/vsearch/stim"
)

// DesignEnv steps through the trials of a session.  The conditions varied
// within a block are rows of the Factors table, shown in a freshly
// permuted order each block.  Factors held constant within a block come
// from the block template, which NextBlock advances at each block boundary.
type DesignEnv struct {

	// name of this environment
	Nm string `desc:"name of this environment"`

	// description of this environment
	Dsc string `desc:"description of this environment"`

	// one row per condition crossed within a block
	Factors *etable.Table `desc:"one row per condition crossed within a block"`

	// toggle search and stimulus type at block boundaries
	Alternate bool `desc:"toggle search and stimulus type at block boundaries"`

	// random source for ordering, nil = global
	Rand *rand.Rand `view:"-" desc:"random source for ordering, nil = global"`

	// template for block 1
	First TrialConfig `desc:"template for block 1"`

	// template for the current block
	Template TrialConfig `desc:"template for the current block"`

	// current trial
	Cur TrialConfig `desc:"current trial"`

	// current condition as names: search, stim, td, dd, cell count, presence
	CurState etensor.String `desc:"current condition as names: search, stim, td, dd, cell count, presence"`

	// Factors row index of each trial in the current block
	Order []int `desc:"Factors row index of each trial in the current block"`

	// [view: inline] current run, as provided during Init
	Run env.Ctr `view:"inline" desc:"current run, as provided during Init"`

	// [view: inline] block counter, Max = number of blocks
	Block env.Ctr `view:"inline" desc:"block counter, Max = number of blocks"`

	// [view: inline] trial within block, Max = trials per block
	Trial env.Ctr `view:"inline" desc:"trial within block, Max = trials per block"`

	done bool
}

func (ev *DesignEnv) Name() string { return ev.Nm }
func (ev *DesignEnv) Desc() string { return ev.Dsc }

// Config builds the Factors table and counters from cfg
func (ev *DesignEnv) Config(cfg *Config) {
	if ev.Nm == "" {
		ev.Nm = "Design"
		ev.Dsc = "trial conditions of a visual search session"
	}
	ev.Alternate = cfg.Alternate
	ev.First = FirstBlock(cfg)
	ev.Block.Max = cfg.NBlocks
	ev.Trial.Max = cfg.TrialsPerBlock
	ev.CurState.SetShape([]int{6}, nil, []string{"Factor"})

	searches := []string{""}
	counts := []int{cfg.CellCount}
	tds := []stim.Similarity{cfg.TDSim}
	dds := []stim.Similarity{cfg.DDSim}
	pres := []Presence{Present}
	if cfg.Factorial {
		searches = []string{Spatial.String(), Temporal.String()}
		counts = cfg.CellCounts
		tds = []stim.Similarity{stim.Similar, stim.Dissimilar}
		dds = tds
	}
	if cfg.PresentAbsent {
		pres = []Presence{Present, Absent}
	}

	dt := &etable.Table{}
	dt.SetMetaData("name", "Factors")
	dt.SetMetaData("desc", "conditions crossed within each block")
	sch := etable.Schema{
		{"search_type", etensor.STRING, nil, nil},
		{"cell_count", etensor.INT64, nil, nil},
		{"target_distractor", etensor.STRING, nil, nil},
		{"distractor_distractor", etensor.STRING, nil, nil},
		{"present_absent", etensor.STRING, nil, nil},
	}
	dt.SetFromSchema(sch, len(searches)*len(counts)*len(tds)*len(dds)*len(pres))
	row := 0
	for _, sr := range searches {
		for _, cc := range counts {
			for _, td := range tds {
				for _, dd := range dds {
					for _, pr := range pres {
						dt.SetCellString("search_type", row, sr)
						dt.SetCellFloat("cell_count", row, float64(cc))
						dt.SetCellString("target_distractor", row, td.Label())
						dt.SetCellString("distractor_distractor", row, dd.Label())
						dt.SetCellString("present_absent", row, pr.Label())
						row++
					}
				}
			}
		}
	}
	ev.Factors = dt
}

func (ev *DesignEnv) Validate() error {
	if ev.Factors == nil || ev.Factors.Rows == 0 {
		return fmt.Errorf("DesignEnv: %v has no Factors -- need to Config", ev.Nm)
	}
	if ev.Block.Max < 1 || ev.Trial.Max < 1 {
		return fmt.Errorf("DesignEnv: %v needs at least one block and trial", ev.Nm)
	}
	for row := 0; row < ev.Factors.Rows; row++ {
		tc, err := ev.trialFromRow(ev.First, row)
		if err != nil {
			return fmt.Errorf("DesignEnv: row %d: %w", row, err)
		}
		if err := tc.Validate(); err != nil {
			return fmt.Errorf("DesignEnv: row %d: %w", row, err)
		}
	}
	return nil
}

// Init is called to restart environment
func (ev *DesignEnv) Init(run int) {
	ev.Run.Scale = env.Run
	ev.Block.Scale = env.Block
	ev.Trial.Scale = env.Trial
	ev.Run.Init()
	ev.Block.Init()
	ev.Trial.Init()
	ev.Run.Cur = run
	ev.Trial.Cur = -1 // init state -- key so that first Step() = 0
	ev.Template = ev.First
	ev.done = false
	ev.NewOrder()
}

// NewOrder fills Order with Trial.Max rows, cycling through successive
// random permutations of the Factors rows so each condition appears
// equally often
func (ev *DesignEnv) NewOrder() {
	nr := ev.Factors.Rows
	ev.Order = ev.Order[:0]
	perm := make([]int, nr)
	for len(ev.Order) < ev.Trial.Max {
		for i := range perm {
			perm[i] = i
		}
		if ev.Rand != nil {
			ev.Rand.Shuffle(nr, func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		} else {
			erand.PermuteInts(perm)
		}
		ev.Order = append(ev.Order, perm...)
	}
	ev.Order = ev.Order[:ev.Trial.Max]
}

// Step advances to the next trial, returning false when all blocks are done
func (ev *DesignEnv) Step() bool {
	if ev.done {
		return false
	}
	ev.Block.Same() // good idea to just reset all non-inner-most counters at start
	if ev.Trial.Incr() { // true if wraps around Max back to 0
		if ev.Block.Incr() {
			ev.done = true
			return false
		}
		ev.Template = ev.Template.NextBlock(ev.Alternate)
		ev.NewOrder()
	}
	tc, err := ev.trialFromRow(ev.Template, ev.Order[ev.Trial.Cur])
	if err != nil {
		log.Printf("expt.DesignEnv: factor row %d: %v\n", ev.Order[ev.Trial.Cur], err)
		ev.done = true
		return false
	}
	tc.Block = ev.Block.Cur + 1
	tc.Trial = ev.Trial.Cur + 1
	ev.Cur = tc
	ev.setState()
	return true
}

// LastInBlock is true when the current trial is the last of its block
func (ev *DesignEnv) LastInBlock() bool {
	return ev.Trial.Cur == ev.Trial.Max-1
}

// NTrials returns the total number of trials in the session
func (ev *DesignEnv) NTrials() int {
	return ev.Block.Max * ev.Trial.Max
}

func (ev *DesignEnv) trialFromRow(tmpl TrialConfig, row int) (TrialConfig, error) {
	tc := tmpl
	dt := ev.Factors
	if s := dt.CellString("search_type", row); s != "" {
		if err := tc.SearchType.FromString(s); err != nil {
			return tc, err
		}
	}
	tc.CellCount = int(dt.CellFloat("cell_count", row))
	if err := tc.TD.FromString(dt.CellString("target_distractor", row)); err != nil {
		return tc, err
	}
	if err := tc.DD.FromString(dt.CellString("distractor_distractor", row)); err != nil {
		return tc, err
	}
	if err := tc.Presence.FromString(dt.CellString("present_absent", row)); err != nil {
		return tc, err
	}
	return tc, nil
}

func (ev *DesignEnv) setState() {
	tc := &ev.Cur
	vals := []string{tc.SearchType.String(), tc.StimType.String(), tc.TD.Label(), tc.DD.Label(), strconv.Itoa(tc.CellCount), tc.Presence.Label()}
	for i, v := range vals {
		ev.CurState.SetString1D(i, v)
	}
}

func (ev *DesignEnv) State(element string) etensor.Tensor {
	switch element {
	case "Condition":
		return &ev.CurState
	}
	return nil
}

// String returns the current condition name
func (ev *DesignEnv) String() string {
	return ev.Cur.String()
}

func (ev *DesignEnv) Action(element string, input etensor.Tensor) {
	// nop
}

func (ev *DesignEnv) Counter(scale env.TimeScales) (cur, prv int, chg bool) {
	switch scale {
	case env.Run:
		return ev.Run.Query()
	case env.Block:
		return ev.Block.Query()
	case env.Trial:
		return ev.Trial.Query()
	}
	return -1, -1, false
}

// Compile-time check that implements Env interface
var _ env.Env = (*DesignEnv)(nil)
