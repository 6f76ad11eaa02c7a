// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package results records trial outcomes: one row per trial in a trials log
and one row per temporal response in a responses log.  Logs are
etable.Tables, optionally streamed to delimited files as rows are added,
and can be summarized per condition.
*/
package results

import (
	"fmt"
	"math"
	"strconv"

	"github.com/emer/vsearch/respond"
)

// TargetOnset is one target presentation in a temporal stream
type TargetOnset struct {
	Rep     int     `desc:"1-based repetition index"`
	OnsetMs float64 `desc:"onset in msec from stream onset"`
	RunLen  int     `desc:"distractors shown since the previous target"`
}

// TrialRecord is the union of all values logged for one trial.  Numeric
// fields that do not apply are negative and are written as NA.
type TrialRecord struct {
	Block                int           `desc:"block number, 1-based"`
	Trial                int           `desc:"trial number within the block, 1-based"`
	SearchType           string        `desc:"Spatial or Temporal"`
	StimType             string        `desc:"Color or Line"`
	CellCount            int           `desc:"spatial array size, -1 if temporal"`
	SetSize              int           `desc:"temporal window size, -1 if not windowed"`
	TargetDistractor     string        `desc:"homo or hetero"`
	DistractorDistractor string        `desc:"homo or hetero"`
	PresentAbsent        string        `desc:"present or absent"`
	TargetOnsetMs        float64       `desc:"windowed-stream target onset in msec from stream onset, -1 if none"`
	SpatialResponse      string        `desc:"boundary clicked, or miss; empty if temporal"`
	SpatialRTMs          float64       `desc:"spatial response time in msec, -1 if none"`
	TemporalResponse     string        `desc:"first temporal response, or None; empty if spatial"`
	TemporalRTMs         float64       `desc:"first temporal response time in msec, -1 if none"`
	Correct              int           `desc:"1 correct, 0 incorrect, -1 not scored"`
	Onsets               []TargetOnset `desc:"target presentations in repeated streams"`
}

// Field is one named value of a record
type Field struct {
	Name  string
	Value string
}

// RTMs returns the response time of the trial's response, NaN if none
func (tr *TrialRecord) RTMs() float64 {
	rt := tr.SpatialRTMs
	if tr.SearchType != "Spatial" {
		rt = tr.TemporalRTMs
	}
	if rt < 0 {
		return math.NaN()
	}
	return rt
}

// Hit returns Correct as a float, NaN if not scored
func (tr *TrialRecord) Hit() float64 {
	if tr.Correct < 0 {
		return math.NaN()
	}
	return float64(tr.Correct)
}

// SetTemporal fills the temporal response fields from collected responses
func (tr *TrialRecord) SetTemporal(rs []respond.Response) {
	if len(rs) == 0 {
		tr.TemporalResponse = "None"
		tr.TemporalRTMs = -1
		return
	}
	tr.TemporalResponse = rs[0].Value
	tr.TemporalRTMs = rs[0].RTMs()
}

// Fields returns the values in column order, with nreps onset / run
// length pairs (NA beyond the recorded onsets)
func (tr *TrialRecord) Fields(nreps int) []Field {
	fs := []Field{
		{"block_num", strconv.Itoa(tr.Block)},
		{"trial_num", strconv.Itoa(tr.Trial)},
		{"search_type", tr.SearchType},
		{"stim_type", tr.StimType},
		{"cell_count", intNA(tr.CellCount)},
		{"set_size", intNA(tr.SetSize)},
		{"target_distractor", tr.TargetDistractor},
		{"distractor_distractor", tr.DistractorDistractor},
		{"present_absent", tr.PresentAbsent},
		{"target_onset", msNA(tr.TargetOnsetMs)},
		{"spatial_response", strNA(tr.SpatialResponse)},
		{"spatial_rt", msNA(tr.SpatialRTMs)},
		{"temporal_response", strNA(tr.TemporalResponse)},
		{"temporal_rt", msNA(tr.TemporalRTMs)},
		{"correct", intNA(tr.Correct)},
	}
	for i := 0; i < nreps; i++ {
		on, dc := respond.NA, respond.NA
		if i < len(tr.Onsets) {
			on = msNA(tr.Onsets[i].OnsetMs)
			dc = strconv.Itoa(tr.Onsets[i].RunLen)
		}
		fs = append(fs, Field{OnsetCol(i), on}, Field{DistCountCol(i), dc})
	}
	return fs
}

// OnsetCol returns the name of the onset column for 0-based rep i
func OnsetCol(i int) string {
	return fmt.Sprintf("t%d_onset", i+1)
}

// DistCountCol returns the name of the distractor count column for 0-based rep i
func DistCountCol(i int) string {
	return fmt.Sprintf("t%d_distractor_count", i+1)
}

func intNA(v int) string {
	if v < 0 {
		return respond.NA
	}
	return strconv.Itoa(v)
}

func msNA(v float64) string {
	if v < 0 || math.IsNaN(v) {
		return respond.NA
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}

func strNA(s string) string {
	if s == "" {
		return respond.NA
	}
	return s
}
