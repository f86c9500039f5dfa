// Copyright 2026 The srcell Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

// Command srcell runs waveform stimulus scripts against the memory cell
// model. See srcell --help.
package main

import (
	"os"

	"github.com/tmaze/srcell/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
