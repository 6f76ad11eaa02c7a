// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package results

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/agg"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/emer/etable/split"
	"github.com/emer/vsearch/respond"
	"github.com/goki/gi/gi"
)

// Sink receives trial results
type Sink interface {
	// LogTrial records one completed trial
	LogTrial(tr *TrialRecord) error

	// LogResponses records each temporal response of a trial
	LogResponses(block, trial int, rs []respond.Response) error
}

// LogPrec is the precision for saving float values in logs
const LogPrec = 4

// CondCols are the columns that define a condition for Summary
var CondCols = []string{"search_type", "stim_type", "cell_count", "target_distractor", "distractor_distractor", "present_absent"}

// Logs holds the trial and response tables, and the files they are
// streamed to if open
type Logs struct {
	NReps     int           `desc:"number of target onset column pairs in the trial log"`
	Delim     etable.Delims `desc:"delimiter for files"`
	Trials    *etable.Table `view:"no-inline" desc:"one row per trial"`
	Responses *etable.Table `view:"no-inline" desc:"one row per temporal response"`
	TrialFile *os.File      `view:"-" desc:"trial log file"`
	RespFile  *os.File      `view:"-" desc:"response log file"`
	trialHdrs bool
	respHdrs  bool
}

// NewLogs returns configured, empty logs with nreps onset column pairs
func NewLogs(nreps int) *Logs {
	lg := &Logs{NReps: nreps, Delim: etable.Comma}
	lg.Trials = &etable.Table{}
	lg.Responses = &etable.Table{}
	lg.ConfigTrialLog(lg.Trials)
	lg.ConfigRespLog(lg.Responses)
	return lg
}

// ConfigTrialLog configures the trial log: the record fields as string
// columns, followed by numeric rt_ms and hit columns for summaries
func (lg *Logs) ConfigTrialLog(dt *etable.Table) {
	dt.SetMetaData("name", "Trials")
	dt.SetMetaData("desc", "Record of each search trial")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{"block_num", etensor.INT64, nil, nil},
		{"trial_num", etensor.INT64, nil, nil},
	}
	var tr TrialRecord
	for _, f := range tr.Fields(lg.NReps)[2:] {
		sch = append(sch, etable.Column{Name: f.Name, Type: etensor.STRING})
	}
	sch = append(sch,
		etable.Column{Name: "rt_ms", Type: etensor.FLOAT64},
		etable.Column{Name: "hit", Type: etensor.FLOAT64},
	)
	dt.SetFromSchema(sch, 0)
}

// ConfigRespLog configures the responses log
func (lg *Logs) ConfigRespLog(dt *etable.Table) {
	dt.SetMetaData("name", "Responses")
	dt.SetMetaData("desc", "Record of each temporal response")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{"block_num", etensor.INT64, nil, nil},
		{"trial_num", etensor.INT64, nil, nil},
		{"rt", etensor.FLOAT64, nil, nil},
		{"target_loc", etensor.STRING, nil, nil},
	}
	dt.SetFromSchema(sch, 0)
}

// FileName returns the file name for given log: name_lognm.csv in dir
func FileName(dir, name, lognm string) string {
	return filepath.Join(dir, name+"_"+lognm+".csv")
}

// OpenFiles creates the trial and response files in dir, which rows are
// then streamed to as they are logged
func (lg *Logs) OpenFiles(dir, name string) error {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("results.OpenFiles: %w", err)
		}
	}
	var err error
	lg.TrialFile, err = os.Create(FileName(dir, name, "trials"))
	if err != nil {
		return fmt.Errorf("results.OpenFiles: %w", err)
	}
	lg.RespFile, err = os.Create(FileName(dir, name, "responses"))
	if err != nil {
		lg.TrialFile.Close()
		lg.TrialFile = nil
		return fmt.Errorf("results.OpenFiles: %w", err)
	}
	lg.trialHdrs = false
	lg.respHdrs = false
	return nil
}

// Close closes any open files
func (lg *Logs) Close() error {
	var errs []error
	if lg.TrialFile != nil {
		errs = append(errs, lg.TrialFile.Close())
		lg.TrialFile = nil
	}
	if lg.RespFile != nil {
		errs = append(errs, lg.RespFile.Close())
		lg.RespFile = nil
	}
	return errors.Join(errs...)
}

// LogTrial adds a row for tr to the Trials table and streams it
func (lg *Logs) LogTrial(tr *TrialRecord) error {
	dt := lg.Trials
	row := dt.Rows
	dt.SetNumRows(row + 1)
	dt.SetCellFloat("block_num", row, float64(tr.Block))
	dt.SetCellFloat("trial_num", row, float64(tr.Trial))
	for _, f := range tr.Fields(lg.NReps)[2:] {
		dt.SetCellString(f.Name, row, f.Value)
	}
	dt.SetCellFloat("rt_ms", row, tr.RTMs())
	dt.SetCellFloat("hit", row, tr.Hit())

	if lg.TrialFile == nil {
		return nil
	}
	if !lg.trialHdrs {
		if _, err := dt.WriteCSVHeaders(lg.TrialFile, lg.Delim); err != nil {
			return fmt.Errorf("results.LogTrial: %w", err)
		}
		lg.trialHdrs = true
	}
	if err := dt.WriteCSVRow(lg.TrialFile, row, lg.Delim); err != nil {
		return fmt.Errorf("results.LogTrial: %w", err)
	}
	return nil
}

// LogResponses adds one row per response to the Responses table and streams them
func (lg *Logs) LogResponses(block, trial int, rs []respond.Response) error {
	dt := lg.Responses
	for _, r := range rs {
		row := dt.Rows
		dt.SetNumRows(row + 1)
		dt.SetCellFloat("block_num", row, float64(block))
		dt.SetCellFloat("trial_num", row, float64(trial))
		dt.SetCellFloat("rt", row, r.RTMs())
		dt.SetCellString("target_loc", row, respond.NA)

		if lg.RespFile == nil {
			continue
		}
		if !lg.respHdrs {
			if _, err := dt.WriteCSVHeaders(lg.RespFile, lg.Delim); err != nil {
				return fmt.Errorf("results.LogResponses: %w", err)
			}
			lg.respHdrs = true
		}
		if err := dt.WriteCSVRow(lg.RespFile, row, lg.Delim); err != nil {
			return fmt.Errorf("results.LogResponses: %w", err)
		}
	}
	return nil
}

// SaveCSV saves both complete tables to dir
func (lg *Logs) SaveCSV(dir, name string) error {
	if err := lg.Trials.SaveCSV(gi.FileName(FileName(dir, name, "trials")), lg.Delim, etable.Headers); err != nil {
		return err
	}
	return lg.Responses.SaveCSV(gi.FileName(FileName(dir, name, "responses")), lg.Delim, etable.Headers)
}

// Summary returns mean rt_ms and hit per condition (CondCols).  Means
// are over the trials with a value, NaN for a condition with none.
func (lg *Logs) Summary() *etable.Table {
	ix := etable.NewIdxView(lg.Trials)
	spl := split.GroupBy(ix, CondCols)
	split.Agg(spl, "rt_ms", agg.AggMean)
	split.Agg(spl, "hit", agg.AggMean)
	dt := spl.AggsToTable(etable.ColNameOnly)
	for i, sp := range spl.Splits {
		dt.SetCellFloat("rt_ms", i, ValidMean(sp, "rt_ms"))
		dt.SetCellFloat("hit", i, ValidMean(sp, "hit"))
	}
	return dt
}

// ValidMean returns the mean of col over the rows of ix where it is not
// NaN, or NaN if there are none
func ValidMean(ix *etable.IdxView, col string) float64 {
	vx := &etable.IdxView{Table: ix.Table, Idxs: append([]int(nil), ix.Idxs...)}
	vx.Filter(func(et *etable.Table, row int) bool {
		return !math.IsNaN(et.CellFloat(col, row))
	})
	if vx.Len() == 0 {
		return math.NaN()
	}
	return agg.Mean(vx, col)[0]
}

// Overall returns the mean RT (over trials with a response) and hit rate
// (over scored trials) of given search type, NaN where there are none
func (lg *Logs) Overall(searchType string) (rt, hit float64) {
	ix := etable.NewIdxView(lg.Trials)
	ix.Filter(func(et *etable.Table, row int) bool {
		return et.CellString("search_type", row) == searchType
	})
	return ValidMean(ix, "rt_ms"), ValidMean(ix, "hit")
}

// FileSizes reports the current sizes of the named log files
func FileSizes(fnms ...string) string {
	s := ""
	for _, fnm := range fnms {
		fi, err := os.Stat(fnm)
		if err != nil {
			log.Println(err)
			continue
		}
		s += fmt.Sprintf("%s: %s\n", fnm, datasize.ByteSize(fi.Size()).HumanReadable())
	}
	return s
}

var _ Sink = (*Logs)(nil)
