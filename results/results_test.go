// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/emer/vsearch/respond"
)

// difTol is the tolerance for comparing summary means
const difTol = 1.0e-6

func spatialRec(trial int, resp string, rt float64, correct int) *TrialRecord {
	return &TrialRecord{Block: 1, Trial: trial, SearchType: "Spatial", StimType: "Line",
		CellCount: 64, SetSize: -1, TargetDistractor: "hetero", DistractorDistractor: "hetero",
		PresentAbsent: "present", TargetOnsetMs: -1, SpatialResponse: resp, SpatialRTMs: rt,
		TemporalRTMs: -1, Correct: correct}
}

func TestFieldsNA(t *testing.T) {
	tr := spatialRec(1, "miss", -1, 0)
	fs := tr.Fields(2)
	vals := map[string]string{}
	for _, f := range fs {
		vals[f.Name] = f.Value
	}
	want := map[string]string{
		"cell_count":          "64",
		"set_size":            "NA",
		"spatial_response":    "miss",
		"spatial_rt":          "NA",
		"temporal_response":   "NA",
		"t1_onset":            "NA",
		"t2_distractor_count": "NA",
	}
	for k, v := range want {
		if vals[k] != v {
			t.Errorf("%s: got %q, want %q", k, vals[k], v)
		}
	}
	if len(fs) != 15+4 {
		t.Errorf("got %d fields, want 19", len(fs))
	}
	if fs[0].Name != "block_num" || fs[len(fs)-1].Name != "t2_distractor_count" {
		t.Errorf("unexpected column order: %v ... %v", fs[0], fs[len(fs)-1])
	}
}

func TestSetTemporal(t *testing.T) {
	tr := &TrialRecord{SearchType: "Temporal"}
	tr.SetTemporal(nil)
	if tr.TemporalResponse != "None" || !math.IsNaN(tr.RTMs()) {
		t.Errorf("no responses: got %q %g", tr.TemporalResponse, tr.RTMs())
	}
	tr.SetTemporal([]respond.Response{{Value: "click", RT: 420 * time.Millisecond}, {Value: "click", RT: 900 * time.Millisecond}})
	if tr.TemporalResponse != "click" || tr.RTMs() != 420 {
		t.Errorf("got %q %g, want click 420", tr.TemporalResponse, tr.RTMs())
	}
}

func TestLogsAndFiles(t *testing.T) {
	dir := t.TempDir()
	lg := NewLogs(0)
	if err := lg.OpenFiles(dir, "sub1"); err != nil {
		t.Fatal(err)
	}
	lg.LogTrial(spatialRec(1, "target", 800, 1))
	lg.LogTrial(spatialRec(2, "miss", -1, 0))
	lg.LogTrial(spatialRec(3, "target", 600, 1))
	lg.LogResponses(1, 4, []respond.Response{{Value: "click", RT: 300 * time.Millisecond}, {Value: "click", RT: 1200 * time.Millisecond}})
	if err := lg.Close(); err != nil {
		t.Fatal(err)
	}

	if lg.Trials.Rows != 3 || lg.Responses.Rows != 2 {
		t.Fatalf("got %d trial rows, %d response rows", lg.Trials.Rows, lg.Responses.Rows)
	}
	if v := lg.Trials.CellString("spatial_rt", 1); v != "NA" {
		t.Errorf("miss rt logged as %q", v)
	}
	if v := lg.Responses.CellString("target_loc", 0); v != "NA" {
		t.Errorf("target_loc logged as %q", v)
	}
	if v := lg.Responses.CellFloat("rt", 1); v != 1200 {
		t.Errorf("response rt %g, want 1200", v)
	}

	b, err := os.ReadFile(filepath.Join(dir, "sub1_trials.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 4 {
		t.Errorf("trial file has %d lines, want header + 3", len(lines))
	}
	if !strings.Contains(lines[2], "miss") {
		t.Errorf("second trial line missing response: %s", lines[2])
	}
	sz := FileSizes(FileName(dir, "sub1", "trials"), FileName(dir, "sub1", "responses"))
	if !strings.Contains(sz, "sub1_responses.csv") {
		t.Errorf("size report: %s", sz)
	}

	rt, hit := lg.Overall("Spatial")
	if math.Abs(rt-700) > difTol || math.Abs(hit-2.0/3.0) > difTol {
		t.Errorf("overall rt %g hit %g, want 700 and .667", rt, hit)
	}
	if rt, _ := lg.Overall("Temporal"); !math.IsNaN(rt) {
		t.Errorf("no temporal trials should give NaN, got %g", rt)
	}
}

func TestSummary(t *testing.T) {
	lg := NewLogs(0)
	lg.LogTrial(spatialRec(1, "target", 500, 1))
	lg.LogTrial(spatialRec(2, "target", 700, 1))
	tr := spatialRec(3, "miss", -1, 0)
	tr.TargetDistractor = "homo"
	lg.LogTrial(tr)
	tr = spatialRec(4, "target", 400, 1)
	tr.CellCount = 25
	lg.LogTrial(tr)
	for i := 0; i < 3; i++ {
		lg.LogTrial(&TrialRecord{Block: 1, Trial: 5 + i, SearchType: "Temporal", StimType: "Line",
			CellCount: -1, SetSize: 20, TargetDistractor: "hetero", DistractorDistractor: "hetero",
			PresentAbsent: "absent", TargetOnsetMs: -1, TemporalResponse: "None", SpatialRTMs: -1,
			TemporalRTMs: -1, Correct: -1})
	}

	sm := lg.Summary()
	if sm.Rows != 4 {
		t.Fatalf("summary has %d rows, want 4", sm.Rows)
	}
	nseen := 0
	for r := 0; r < sm.Rows; r++ {
		rt, hit := sm.CellFloat("rt_ms", r), sm.CellFloat("hit", r)
		cond := sm.CellString("search_type", r) + " " + sm.CellString("cell_count", r) + " " + sm.CellString("target_distractor", r)
		switch cond {
		case "Spatial 64 hetero":
			nseen++
			if math.Abs(rt-600) > difTol || hit != 1 {
				t.Errorf("%s: rt %g hit %g", cond, rt, hit)
			}
		case "Spatial 64 homo":
			nseen++
			if !math.IsNaN(rt) || hit != 0 {
				t.Errorf("%s: rt %g hit %g, want NaN and 0", cond, rt, hit)
			}
		case "Spatial 25 hetero":
			nseen++
			if math.Abs(rt-400) > difTol || hit != 1 {
				t.Errorf("%s: rt %g hit %g", cond, rt, hit)
			}
		case "Temporal NA hetero":
			nseen++
			if !math.IsNaN(rt) || !math.IsNaN(hit) {
				t.Errorf("%s: rt %g hit %g, want NaN for a condition without responses", cond, rt, hit)
			}
		default:
			t.Errorf("unexpected condition %q", cond)
		}
	}
	if nseen != 4 {
		t.Errorf("saw %d of 4 conditions", nseen)
	}
	if rt, hit := lg.Overall("Temporal"); !math.IsNaN(rt) || !math.IsNaN(hit) {
		t.Errorf("temporal overall rt %g hit %g, want NaN", rt, hit)
	}
}
