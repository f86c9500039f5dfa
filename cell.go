// Copyright 2026 The srcell Authors.
// Licensed under the MIT license. See license text in the LICENSE file.

package srcell

// A Cell is one edge-triggered set/reset memory cell. It owns its state
// exclusively and is meant to be driven by a single caller (a simulation
// scheduler or test bench) one logical instant at a time; it does no locking
// and no I/O, and every operation completes in a small bounded number of
// internal passes.
//
// The Cell is the polarity adapter over the canonical transition engine: it
// maps the user-facing SET, CLEAR and RST signals onto the engine's A/B
// roles according to its Config, and maps the canonical output back to Q.
type Cell struct {
	cfg    Config
	eng    engine
	invert bool // Q is the inverse of the engine output
}

// New returns a Cell configured with cfg. The cell starts with reset
// deasserted and its state preloaded to the configured reset target, so Q
// initially reads the configured reset value.
//
// Construction is total: every combination of the five flags is a valid
// variant.
func New(cfg Config) *Cell {
	c := &Cell{
		cfg:    cfg,
		invert: !cfg.FastSet,
	}
	c.eng.targetA = cfg.resetTargetA()
	c.eng.a = c.eng.targetA
	return c
}

// Config returns the cell's configuration.
func (c *Cell) Config() Config { return c.cfg }

// SetResetLevel presents a new raw level of the RST line and re-evaluates
// the cell. While the level matches the configured active polarity the
// state is forced to the reset target and edges are ignored; deasserting
// leaves the target state in place until the next edge.
func (c *Cell) SetResetLevel(level bool) {
	c.eng.resetActive = level == c.cfg.ResetActiveHigh
	c.eng.eval(false, false)
}

// SignalSetEdge notifies the cell that the raw SET input saw a qualifying
// transition at the current instant. From the cleared state the cell settles
// on the fast path in a single register update when FastSet is true, or
// through the recovery cascade when it is false; repeating the edge in the
// set-settled state is absorbing.
func (c *Cell) SignalSetEdge() {
	c.eng.eval(c.cfg.FastSet, !c.cfg.FastSet)
}

// SignalClearEdge notifies the cell that the raw CLEAR input saw a
// qualifying transition at the current instant.
func (c *Cell) SignalClearEdge() {
	c.eng.eval(!c.cfg.FastSet, c.cfg.FastSet)
}

// Output returns Q, the cell's user-facing output at the current instant.
func (c *Cell) Output() bool {
	out := c.eng.output()
	if c.invert {
		return !out
	}
	return out
}
