// Copyright 2026 The srcell Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package script

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no name", "config: {}\nsteps: [{set: true}]\n"},
		{"no steps", "name: x\nconfig: {}\n"},
		{"unknown field", "name: x\nglitch: true\nsteps: [{set: true}]\n"},
		{"unknown step field", "name: x\nsteps: [{sel: true}]\n"},
		{"bad level", "name: x\nsteps: [{set: maybe}]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.in))
			assert.Error(t, err)
		})
	}
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRun_scenario(t *testing.T) {
	s, err := Load("testdata/scenario.yaml")
	require.NoError(t, err)
	require.Equal(t, "scenario", s.Name)
	require.Len(t, s.Steps, 12)

	tr := s.Run()
	require.Len(t, tr.Samples, 12)

	var got []bool
	for _, smp := range tr.Samples {
		got = append(got, smp.Q)
	}
	want := []bool{false, false, true, false, false, false, false, true, false, false, false, true}
	assert.Equal(t, want, got)
}

func TestTrace_golden(t *testing.T) {
	s, err := Load("testdata/scenario.yaml")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "scenario", []byte(s.Run().Text()))
}

func TestTrace_wave(t *testing.T) {
	s := &Script{
		Name: "mini",
		Config: Config{
			ResetActiveHigh: true,
			ResetLowOutput:  true,
			SetEdgeRising:   true,
			ClearEdgeRising: true,
			FastSet:         true,
		},
		Steps: []Step{
			{},
			{Set: lvl(true)},
			{Clear: lvl(true)},
			{Clear: lvl(false)},
		},
	}
	want := "set _/^^\n" +
		"clr __/\\\n" +
		"rst ____\n" +
		"q   _/\\_\n"
	assert.Equal(t, want, s.Run().Wave())
}

func lvl(b bool) *bool { return &b }
