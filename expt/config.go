// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expt

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/emer/vsearch/display"
	"github.com/emer/vsearch/layout"
	"github.com/emer/vsearch/stim"
	"github.com/goki/gi/gi"
	"github.com/invopop/jsonschema"
)

// Config has all the parameters of a session.  Experiment variants are
// params.Sets that modify a Defaults() Config.
type Config struct {
	Geom display.Geom `view:"inline" desc:"physical display geometry"`

	// design
	NBlocks        int             `def:"1" desc:"number of blocks in the session"`
	TrialsPerBlock int             `def:"20" desc:"number of trials in each block"`
	StartSearch    SearchTypes     `desc:"search type of the first block"`
	StartStim      stim.StimTypes  `desc:"stimulus type of the first block"`
	TDSim          stim.Similarity `desc:"target-distractor similarity when not crossed"`
	DDSim          stim.Similarity `desc:"distractor-distractor similarity when not crossed"`
	CellCount      int             `def:"64" desc:"number of spatial array positions when not crossed"`
	CellCounts     []int           `desc:"spatial array sizes crossed in the Factorial design"`
	Factorial      bool            `desc:"cross search type, cell count and both similarity factors within each block"`
	Alternate      bool            `desc:"toggle search and stimulus type at each block boundary"`
	PresentAbsent  bool            `desc:"add a target present / absent factor (requires KeyResponse and Windowed)"`
	KeyResponse    bool            `desc:"respond with keys (PresentKey / AbsentKey) instead of the pointer"`
	PresentKey     string          `def:"/" desc:"key reporting target present"`
	AbsentKey      string          `def:"z" desc:"key reporting target absent"`
	Seed           int64           `desc:"random seed, 0 = use the global source"`

	// spatial
	GridLayout     bool    `desc:"place spatial items on a square grid instead of a ring"`
	ArrayRadiusDeg float32 `def:"4.5" desc:"ring radius in degrees of visual angle"`
	GridSpacingDeg float32 `def:"1.5" desc:"grid cell spacing in degrees of visual angle"`
	ShowBoundary   bool    `def:"true" desc:"draw the outline of the target hit region"`

	// temporal
	Windowed   bool `desc:"windowed stream (SetSize items plus Pad on each side) instead of repeated targets"`
	SetSize    int  `def:"20" desc:"window size of windowed streams"`
	Pad        int  `def:"3" desc:"distractors on each side of the window"`
	TargetReps int  `def:"15" desc:"number of target repetitions in repeated streams"`
	RunMin     int  `def:"5" desc:"minimum distractor run before each repeated target"`
	RunMax     int  `def:"10" desc:"maximum distractor run before each repeated target"`

	// sizes
	ItemSizeDeg  float32 `def:"1" desc:"item size in degrees"`
	ItemThickDeg float32 `def:"0.1" desc:"line item thickness and boundary stroke in degrees"`
	FixSizeDeg   float32 `def:"0.6" desc:"fixation cross size in degrees"`
	FixThickDeg  float32 `def:"0.1" desc:"fixation cross stroke in degrees"`
	MsgOffsetDeg float32 `def:"2" desc:"preview message offset above center in degrees"`

	// timing, all msec
	PreviewMs         float32 `def:"1000" desc:"target preview duration"`
	FixationMs        float32 `def:"1000" desc:"fixation duration"`
	ItemMs            float32 `def:"100" desc:"stream item duration"`
	ISIMs             float32 `def:"50" desc:"blank between stream items"`
	SpatialTimeoutMs  float32 `def:"10000" desc:"spatial response time limit"`
	TemporalTimeoutMs float32 `def:"99999000" desc:"temporal response time limit"`
	PostStreamMs      float32 `def:"1000" desc:"time to keep listening after the stream ends"`
	PollMs            float32 `def:"1" desc:"polling interval"`
}

func (cfg *Config) Defaults() {
	cfg.Geom.Defaults()
	cfg.NBlocks = 1
	cfg.TrialsPerBlock = 20
	cfg.StartSearch = Temporal
	cfg.StartStim = stim.Line
	cfg.TDSim = stim.Dissimilar
	cfg.DDSim = stim.Dissimilar
	cfg.CellCount = 64
	cfg.CellCounts = []int{25, 36, 49, 64}
	cfg.PresentKey = "/"
	cfg.AbsentKey = "z"
	cfg.ArrayRadiusDeg = 4.5
	cfg.GridSpacingDeg = 1.5
	cfg.ShowBoundary = true
	cfg.SetSize = 20
	cfg.Pad = 3
	cfg.TargetReps = 15
	cfg.RunMin = 5
	cfg.RunMax = 10
	cfg.ItemSizeDeg = 1
	cfg.ItemThickDeg = 0.1
	cfg.FixSizeDeg = 0.6
	cfg.FixThickDeg = 0.1
	cfg.MsgOffsetDeg = 2
	cfg.PreviewMs = 1000
	cfg.FixationMs = 1000
	cfg.ItemMs = 100
	cfg.ISIMs = 50
	cfg.SpatialTimeoutMs = 10000
	cfg.TemporalTimeoutMs = 99999000
	cfg.PostStreamMs = 1000
	cfg.PollMs = 1
}

// Validate returns an error describing the first invalid setting
func (cfg *Config) Validate() error {
	if err := cfg.Geom.Validate(); err != nil {
		return err
	}
	if cfg.NBlocks < 1 || cfg.TrialsPerBlock < 1 {
		return fmt.Errorf("expt.Config: need at least one block (%d) and trial per block (%d)", cfg.NBlocks, cfg.TrialsPerBlock)
	}
	if cfg.StartSearch < 0 || cfg.StartSearch >= SearchTypesN {
		return fmt.Errorf("expt.Config: invalid StartSearch %v", cfg.StartSearch)
	}
	if cfg.StartStim < 0 || cfg.StartStim >= stim.StimTypesN {
		return fmt.Errorf("expt.Config: invalid StartStim %v", cfg.StartStim)
	}
	if cfg.TDSim < 0 || cfg.TDSim >= stim.SimilarityN || cfg.DDSim < 0 || cfg.DDSim >= stim.SimilarityN {
		return fmt.Errorf("expt.Config: invalid similarity %v / %v", cfg.TDSim, cfg.DDSim)
	}
	counts := []int{cfg.CellCount}
	if cfg.Factorial {
		if len(cfg.CellCounts) == 0 {
			return errors.New("expt.Config: Factorial design needs CellCounts")
		}
		counts = cfg.CellCounts
	}
	for _, n := range counts {
		if n < 1 {
			return fmt.Errorf("expt.Config: cell count %d must be >= 1", n)
		}
		if cfg.GridLayout {
			gr := layout.Grid{}
			if _, err := gr.Side(n); err != nil {
				return fmt.Errorf("expt.Config: %w", err)
			}
		}
	}
	if cfg.PresentAbsent && !cfg.KeyResponse {
		return errors.New("expt.Config: PresentAbsent requires KeyResponse")
	}
	if cfg.PresentAbsent && !cfg.Windowed {
		return errors.New("expt.Config: PresentAbsent requires Windowed streams")
	}
	if cfg.KeyResponse && (cfg.PresentKey == "" || cfg.AbsentKey == "" || cfg.PresentKey == cfg.AbsentKey) {
		return fmt.Errorf("expt.Config: present / absent keys %q / %q must be distinct and non-empty", cfg.PresentKey, cfg.AbsentKey)
	}
	if cfg.SetSize < 1 || cfg.Pad < 0 {
		return fmt.Errorf("expt.Config: invalid set size %d / pad %d", cfg.SetSize, cfg.Pad)
	}
	if cfg.TargetReps < 1 || cfg.RunMin < 0 || cfg.RunMax < cfg.RunMin {
		return fmt.Errorf("expt.Config: invalid reps %d / run range [%d, %d]", cfg.TargetReps, cfg.RunMin, cfg.RunMax)
	}
	if cfg.PreviewMs <= 0 || cfg.FixationMs <= 0 || cfg.ItemMs <= 0 {
		return errors.New("expt.Config: preview, fixation and item durations must be positive")
	}
	if cfg.ISIMs < 0 || cfg.PollMs < 0 || cfg.PostStreamMs < 0 {
		return errors.New("expt.Config: ISI, poll and post-stream durations must not be negative")
	}
	if cfg.SpatialTimeoutMs <= 0 || cfg.TemporalTimeoutMs <= 0 {
		return errors.New("expt.Config: response time limits must be positive")
	}
	return nil
}

// Msec converts msec to a Duration
func Msec(ms float32) time.Duration {
	return time.Duration(float64(ms) * float64(time.Millisecond))
}

// SearchOnsetMs returns the search onset deadline from trial start
func (cfg *Config) SearchOnsetMs() float32 {
	return cfg.PreviewMs + cfg.FixationMs
}

// NReps returns the number of onset column pairs needed in the trial log
func (cfg *Config) NReps() int {
	if cfg.Windowed {
		return 0
	}
	return cfg.TargetReps
}

// OpenJSON loads the config from a JSON file, on top of current values
func (cfg *Config) OpenJSON(filename gi.FileName) error {
	b, err := os.ReadFile(string(filename))
	if err != nil {
		return fmt.Errorf("expt.Config.OpenJSON: %w", err)
	}
	if err := json.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("expt.Config.OpenJSON: %s: %w", filename, err)
	}
	return nil
}

// SaveJSON saves the config to a JSON file
func (cfg *Config) SaveJSON(filename gi.FileName) error {
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(string(filename), b, 0644)
}

type enumer interface {
	~int32
	String() string
}

func enumNames[T enumer](n T) []any {
	var vs []any
	for i := T(0); i < n; i++ {
		vs = append(vs, i.String())
	}
	return vs
}

// enumValues are the names of the enum types used in Config, which are
// written to JSON as strings
var enumValues = map[reflect.Type][]any{
	reflect.TypeOf(Spatial):      enumNames(SearchTypesN),
	reflect.TypeOf(Present):      enumNames(PresenceN),
	reflect.TypeOf(stim.Color):   enumNames(stim.StimTypesN),
	reflect.TypeOf(stim.Similar): enumNames(stim.SimilarityN),
}

func enumSchema(typ reflect.Type) *jsonschema.Schema {
	vs, ok := enumValues[typ]
	if !ok {
		return nil
	}
	return &jsonschema.Schema{Type: "string", Enum: vs}
}

// Schema returns the JSON Schema for Config files, with field
// descriptions taken from desc tags
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Mapper:                    enumSchema,
	}
	sc := reflector.Reflect(&Config{})
	describe(sc, reflect.TypeOf(Config{}))
	return sc
}

func describe(sc *jsonschema.Schema, typ reflect.Type) {
	if sc == nil || sc.Properties == nil {
		return
	}
	for i := 0; i < typ.NumField(); i++ {
		fld := typ.Field(i)
		ps, ok := sc.Properties.Get(fld.Name)
		if !ok {
			continue
		}
		if d := fld.Tag.Get("desc"); d != "" && ps.Description == "" {
			ps.Description = d
		}
		if fld.Type.Kind() == reflect.Struct {
			describe(ps, fld.Type)
		}
	}
}
