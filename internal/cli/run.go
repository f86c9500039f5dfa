// Copyright 2026 The srcell Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package cli

import (
	"encoding/json"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tmaze/srcell/internal/script"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Wave bool
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "run a stimulus script and print the output trace",
		Long: `Run loads a YAML stimulus script, drives a cell configured by the script
through it one logical instant per step, and prints the resulting trace.

Example:
  srcell run scripts/scenario.yaml
  srcell run --wave scripts/scenario.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.Wave, "wave", false, "render the trace as waveforms (text format only)")

	return cmd
}

func runScript(cmd *cobra.Command, opts *RunOptions, path string) error {
	s, err := script.Load(path)
	if err != nil {
		return err
	}
	slog.Debug("script loaded", "name", s.Name, "steps", len(s.Steps))

	tr := s.Run()
	slog.Debug("script ran", "samples", len(tr.Samples))

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(tr), "encode trace")
	}
	if opts.Wave {
		_, err = out.Write([]byte(tr.Wave()))
		return err
	}
	_, err = out.Write([]byte(tr.Text()))
	return err
}
