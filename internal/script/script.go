// Copyright 2026 The srcell Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Package script loads and runs YAML waveform stimulus scripts against a
// configured memory cell.
//
// A script names a cell configuration and a sequence of steps, one logical
// instant each. Every step drives raw levels onto any of the set, clear and
// rst lines; omitted lines hold their previous level. Running a script
// produces a Trace: the applied levels plus the observed Q, instant by
// instant.
package script

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tmaze/srcell"
)

// Config mirrors srcell.Config with YAML field names.
type Config struct {
	ResetActiveHigh bool `yaml:"reset_active_high"`
	ResetLowOutput  bool `yaml:"reset_low_output"`
	SetEdgeRising   bool `yaml:"set_edge_rising"`
	ClearEdgeRising bool `yaml:"clear_edge_rising"`
	FastSet         bool `yaml:"fast_set"`
}

// Cell returns the srcell configuration described by c.
func (c Config) Cell() srcell.Config {
	return srcell.Config{
		ResetActiveHigh: c.ResetActiveHigh,
		ResetLowOutput:  c.ResetLowOutput,
		SetEdgeRising:   c.SetEdgeRising,
		ClearEdgeRising: c.ClearEdgeRising,
		FastSet:         c.FastSet,
	}
}

// A Step drives raw line levels for one logical instant. Nil fields hold the
// line at its previous level.
type Step struct {
	Set   *bool `yaml:"set,omitempty"`
	Clear *bool `yaml:"clear,omitempty"`
	Rst   *bool `yaml:"rst,omitempty"`
}

// A Script is a complete stimulus description for one cell.
type Script struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Config      Config `yaml:"config"`
	Steps       []Step `yaml:"steps"`
}

// Parse decodes a script from YAML. Unknown fields are rejected.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decode script")
	}
	if s.Name == "" {
		return nil, errors.New("script has no name")
	}
	if len(s.Steps) == 0 {
		return nil, errors.New("script " + s.Name + " has no steps")
	}
	return &s, nil
}

// Load reads and parses the script file at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	s, err := Parse(data)
	return s, errors.Wrapf(err, "script %s", path)
}

// A Sample records one instant of a trace: the raw levels applied and the Q
// value observed after the cell settled.
type Sample struct {
	Instant int  `json:"instant"`
	Set     bool `json:"set"`
	Clear   bool `json:"clear"`
	Rst     bool `json:"rst"`
	Q       bool `json:"q"`
}

// A Trace is the result of running a script.
type Trace struct {
	Name    string   `json:"name"`
	Samples []Sample `json:"samples"`
}

// Run executes the script against a fresh cell and returns the trace.
// Execution is total: every step settles in bounded work.
func (s *Script) Run() *Trace {
	d := srcell.NewDriver(srcell.New(s.Config.Cell()))
	tr := &Trace{Name: s.Name, Samples: make([]Sample, 0, len(s.Steps))}
	for i, st := range s.Steps {
		set, clear, rst := d.StepLines(srcell.Lines{Set: st.Set, Clear: st.Clear, Rst: st.Rst})
		tr.Samples = append(tr.Samples, Sample{
			Instant: i,
			Set:     set,
			Clear:   clear,
			Rst:     rst,
			Q:       d.Cell().Output(),
		})
	}
	return tr
}
