// Copyright 2026 The srcell Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package celltest_test

import (
	"fmt"
	"testing"

	"github.com/tmaze/srcell"
	"github.com/tmaze/srcell/celltest"
)

// The cell must agree with the truth model over random stimulus for every
// configuration.
func TestCompare_cellAgainstReference(t *testing.T) {
	for mask := 0; mask < 32; mask++ {
		cfg := srcell.Config{
			ResetActiveHigh: mask&1 != 0,
			ResetLowOutput:  mask&2 != 0,
			SetEdgeRising:   mask&4 != 0,
			ClearEdgeRising: mask&8 != 0,
			FastSet:         mask&16 != 0,
		}
		t.Run(fmt.Sprintf("cfg%05b", mask), func(t *testing.T) {
			celltest.Compare(t, cfg, srcell.New(cfg), celltest.Reference(cfg), 2000, int64(mask))
		})
	}
}

func TestCheckConfigurations_cell(t *testing.T) {
	celltest.CheckConfigurations(t, func(cfg srcell.Config) celltest.Model {
		return srcell.New(cfg)
	})
}

func TestCheckConfigurations_reference(t *testing.T) {
	celltest.CheckConfigurations(t, celltest.Reference)
}
