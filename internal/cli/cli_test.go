// Copyright 2026 The srcell Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScript = `name: smoke
config:
  reset_low_output: true
  set_edge_rising: true
  clear_edge_rising: true
  fast_set: true
steps:
  - {rst: false}
  - {rst: true}
  - {set: true}
  - {clear: true}
`

func writeScript(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smoke.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testScript), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRun_text(t *testing.T) {
	out, err := execute(t, "run", writeScript(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "trace smoke\n"), "got %q", out)
	assert.Equal(t, 6, strings.Count(out, "\n"), "header + 4 samples")
}

func TestRun_wave(t *testing.T) {
	out, err := execute(t, "run", "--wave", writeScript(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "set "), "got %q", out)
	assert.Equal(t, 4, strings.Count(out, "\n"))
}

func TestRun_json(t *testing.T) {
	out, err := execute(t, "run", "--format", "json", writeScript(t))
	require.NoError(t, err)

	var tr struct {
		Name    string `json:"name"`
		Samples []struct {
			Q bool `json:"q"`
		} `json:"samples"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &tr))
	assert.Equal(t, "smoke", tr.Name)
	require.Len(t, tr.Samples, 4)
	assert.True(t, tr.Samples[2].Q)
	assert.False(t, tr.Samples[3].Q)
}

func TestRun_missingScript(t *testing.T) {
	_, err := execute(t, "run", "no-such-file.yaml")
	assert.Error(t, err)
}

func TestRun_badFormat(t *testing.T) {
	_, err := execute(t, "run", "--format", "xml", writeScript(t))
	assert.Error(t, err)
}

func TestSweep_text(t *testing.T) {
	out, err := execute(t, "sweep")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 33, "header + 32 configs")

	// every row ends with the same trace shape: reset value then 1 0 0 1 1
	for _, l := range lines[1:] {
		i := strings.Index(l, "| ")
		require.NotEqual(t, -1, i)
		q := l[i+2:]
		ok := strings.HasSuffix(q, "1 0 0 1 1") && (q[0] == '0' || q[0] == '1')
		assert.True(t, ok, "row %q", l)
	}
}

func TestSweep_json(t *testing.T) {
	out, err := execute(t, "sweep", "--format", "json")
	require.NoError(t, err)

	var rows []struct {
		Q []bool `json:"q"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 32)
	for _, r := range rows {
		require.Len(t, r.Q, 6)
		assert.Equal(t, []bool{true, false, false, true, true}, r.Q[1:])
	}
}
