// Copyright 2026 The srcell Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package srcell

// A Config selects one of the 32 behavioral variants of the cell. All five
// flags are fixed at construction and never change during the cell's
// lifetime.
type Config struct {
	// ResetActiveHigh selects the active level of the RST line: when true,
	// reset is asserted while RST is high, otherwise while RST is low.
	ResetActiveHigh bool

	// ResetLowOutput selects the output value forced by an active reset:
	// when true, reset drives Q low, otherwise high.
	ResetLowOutput bool

	// SetEdgeRising selects the qualifying transition of the raw SET line:
	// rising when true, falling otherwise. Only the Driver looks at this;
	// Cell.SignalSetEdge already means "a qualifying transition occurred".
	SetEdgeRising bool

	// ClearEdgeRising is SetEdgeRising for the raw CLEAR line.
	ClearEdgeRising bool

	// FastSet selects which transition direction is the fast one. When true,
	// a SET edge settles in a single register update and a CLEAR edge takes
	// the multi-step recovery cascade; when false the roles are swapped and
	// the cell's output is inverted to compensate.
	FastSet bool
}

// resetTargetA returns the A register value of the canonical reset target
// state. The B register is always 0 in the target. The value is derived so
// that Q under reset equals the configured reset value after the adapter's
// output inversion is applied.
func (cfg Config) resetTargetA() bool {
	return cfg.ResetLowOutput != cfg.FastSet
}
